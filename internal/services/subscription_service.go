package services

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"messhall/internal/models/db_models"
	"messhall/internal/repositories"
)

type SubscriptionServiceInterface interface {
	// SetSubscription turns one meal on or off for the student. It fails with
	// utils.ErrMealsLocked while the meal lock is engaged, for every caller.
	SetSubscription(ctx context.Context, studentID string, meal db_models.MealType, enabled bool) (*db_models.Account, error)
}

type SubscriptionService struct {
	accountRepo repositories.AccountRepository
	gate        *MealLockGate
	logger      *zap.Logger
}

func NewSubscriptionService(accountRepo repositories.AccountRepository, gate *MealLockGate, logger *zap.Logger) SubscriptionServiceInterface {
	return &SubscriptionService{
		accountRepo: accountRepo,
		gate:        gate,
		logger:      logger,
	}
}

func (s *SubscriptionService) SetSubscription(ctx context.Context, studentID string, meal db_models.MealType, enabled bool) (*db_models.Account, error) {
	if !meal.Valid() {
		return nil, invalidMeal()
	}

	var account *db_models.Account
	err := s.gate.WhileUnlocked(func() error {
		var err error
		account, err = s.accountRepo.WithLock(ctx, studentID, func(_ *gorm.DB, a *db_models.Account) error {
			a.SetSubscribed(meal, enabled)
			return nil
		})
		return err
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	s.logger.Info("subscription updated",
		zap.String("student_id", account.ID),
		zap.String("meal_type", string(meal)),
		zap.Bool("enabled", enabled))
	return account, nil
}
