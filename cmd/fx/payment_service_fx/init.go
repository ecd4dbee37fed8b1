package payment_service_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"messhall/internal/config"
	"messhall/internal/repositories"
	"messhall/internal/services"
)

var Module = fx.Provide(
	providePaymentRepo, provideTopUpService,
)

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func provideTopUpService(accountRepo repositories.AccountRepository, paymentRepo repositories.PaymentRepository, cfg *config.Config, logger *zap.Logger) services.TopUpServiceInterface {
	return services.NewTopUpService(accountRepo, paymentRepo, cfg.TopUp.Minimum, logger)
}
