package admin_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"messhall/internal/config"
	"messhall/internal/repositories"
	"messhall/internal/services"
	"messhall/pkg/utils"
)

var Module = fx.Provide(provideAdminService)

func provideAdminService(
	accounts services.AccountServiceInterface,
	subscriptions services.SubscriptionServiceInterface,
	accountRepo repositories.AccountRepository,
	gate *services.MealLockGate,
	tokens *utils.TokenIssuer,
	cfg *config.Config,
	logger *zap.Logger,
) services.AdminServiceInterface {
	return services.NewAdminService(accounts, subscriptions, accountRepo, gate, tokens, cfg.Auth.AdminPassword, logger)
}
