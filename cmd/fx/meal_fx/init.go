package meal_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"messhall/internal/config"
	"messhall/internal/repositories"
	"messhall/internal/services"
)

var Module = fx.Provide(
	provideMealLockGate, provideFeeSchedule, provideTransactionRepo,
	provideRedemptionService, provideSubscriptionService,
)

func provideMealLockGate(cfg *config.Config, logger *zap.Logger) *services.MealLockGate {
	return services.NewMealLockGate(cfg.Meals.Locked, logger)
}

func provideFeeSchedule(cfg *config.Config) *services.FeeSchedule {
	return services.NewFeeSchedule(cfg.Meals.Rates)
}

func provideTransactionRepo(db *gorm.DB) repositories.TransactionRepository {
	return repositories.NewTransactionRepository(db)
}

func provideRedemptionService(accountRepo repositories.AccountRepository, transactionRepo repositories.TransactionRepository, logger *zap.Logger) services.RedemptionServiceInterface {
	return services.NewRedemptionService(accountRepo, transactionRepo, logger)
}

func provideSubscriptionService(accountRepo repositories.AccountRepository, gate *services.MealLockGate, logger *zap.Logger) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(accountRepo, gate, logger)
}
