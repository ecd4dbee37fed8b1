package dashboard

import (
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"messhall/internal/repositories"
	"messhall/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService,
)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(dashboardRepo repositories.DashboardRepository, transactionRepo repositories.TransactionRepository, gate *services.MealLockGate, loc *time.Location) services.DashboardService {
	return services.NewDashboardService(dashboardRepo, transactionRepo, gate, loc)
}
