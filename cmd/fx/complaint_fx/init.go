package complaint_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"messhall/internal/config"
	"messhall/internal/repositories"
	"messhall/internal/services"
)

var Module = fx.Provide(
	provideComplaintRepo, provideComplaintService,
)

func provideComplaintRepo(db *gorm.DB) repositories.ComplaintRepositoryInterface {
	return repositories.NewComplaintRepository(db)
}

func provideComplaintService(complaintRepo repositories.ComplaintRepositoryInterface, accountRepo repositories.AccountRepository, cfg *config.Config, logger *zap.Logger) services.ComplaintServiceInterface {
	policy := services.ComplaintPolicy{AllowPostResolutionEdits: cfg.Complaints.AllowPostResolutionEdits}
	return services.NewComplaintService(complaintRepo, accountRepo, policy, logger)
}
