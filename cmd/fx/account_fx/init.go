package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"messhall/internal/config"
	"messhall/internal/repositories"
	"messhall/internal/services"
	"messhall/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideAuthenticator, provideTokenIssuer)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAuthenticator(cfg *config.Config) (services.Authenticator, error) {
	return services.NewAuthenticator(cfg.Auth.PasswordScheme)
}

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func provideAccountService(accountRepo repositories.AccountRepository, auth services.Authenticator, tokens *utils.TokenIssuer, logger *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, auth, tokens, logger)
}
