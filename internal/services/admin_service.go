package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"messhall/internal/models/db_models"
	"messhall/internal/repositories"
	"messhall/pkg/utils"
)

const adminSubject = "admin"

type AdminServiceInterface interface {
	Login(password string) (string, error)
	AddAccount(ctx context.Context, name, email, password string) (*db_models.Account, error)
	RemoveAccount(ctx context.Context, studentID string) error
	SetRoom(ctx context.Context, studentID, room string) (*db_models.Account, error)
	// AdjustTokens adds delta to the balance, clamping the result at zero.
	AdjustTokens(ctx context.Context, studentID string, delta int) (*db_models.Account, error)
	ToggleMealLock() bool
	SetSubscription(ctx context.Context, studentID string, meal db_models.MealType, enabled bool) (*db_models.Account, error)
}

type AdminService struct {
	accounts      AccountServiceInterface
	subscriptions SubscriptionServiceInterface
	accountRepo   repositories.AccountRepository
	gate          *MealLockGate
	tokens        *utils.TokenIssuer
	adminPassword string
	logger        *zap.Logger
}

func NewAdminService(
	accounts AccountServiceInterface,
	subscriptions SubscriptionServiceInterface,
	accountRepo repositories.AccountRepository,
	gate *MealLockGate,
	tokens *utils.TokenIssuer,
	adminPassword string,
	logger *zap.Logger,
) AdminServiceInterface {
	return &AdminService{
		accounts:      accounts,
		subscriptions: subscriptions,
		accountRepo:   accountRepo,
		gate:          gate,
		tokens:        tokens,
		adminPassword: adminPassword,
		logger:        logger,
	}
}

func (s *AdminService) Login(password string) (string, error) {
	if s.adminPassword == "" || subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		return "", utils.ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(adminSubject, utils.RoleAdmin)
	if err != nil {
		return "", asServiceError(err)
	}
	return token, nil
}

func (s *AdminService) AddAccount(ctx context.Context, name, email, password string) (*db_models.Account, error) {
	return s.accounts.Register(ctx, name, email, password)
}

func (s *AdminService) RemoveAccount(ctx context.Context, studentID string) error {
	removed, err := s.accountRepo.Delete(ctx, studentID)
	if err != nil {
		return asServiceError(err)
	}
	if !removed {
		return utils.ErrAccountNotFound
	}

	s.logger.Info("account removed", zap.String("student_id", studentID))
	return nil
}

func (s *AdminService) SetRoom(ctx context.Context, studentID, room string) (*db_models.Account, error) {
	room = strings.TrimSpace(room)
	if room == "" {
		return nil, utils.NewValidationError("room", "is required")
	}

	account, err := s.accountRepo.WithLock(ctx, studentID, func(_ *gorm.DB, a *db_models.Account) error {
		a.Room = room
		return nil
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	s.logger.Info("room assigned", zap.String("student_id", studentID), zap.String("room", room))
	return account, nil
}

func (s *AdminService) AdjustTokens(ctx context.Context, studentID string, delta int) (*db_models.Account, error) {
	var before int
	account, err := s.accountRepo.WithLock(ctx, studentID, func(_ *gorm.DB, a *db_models.Account) error {
		before = a.TokenBalance
		if !creditFits(a.TokenBalance, delta) {
			return utils.NewValidationError("delta", fmt.Sprintf("balance would exceed %d tokens", MaxTokenBalance))
		}
		a.TokenBalance = max(0, a.TokenBalance+delta)
		return nil
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	s.logger.Info("tokens adjusted",
		zap.String("student_id", studentID),
		zap.Int("delta", delta),
		zap.Int("before", before),
		zap.Int("after", account.TokenBalance))
	return account, nil
}

func (s *AdminService) ToggleMealLock() bool {
	return s.gate.Toggle()
}

func (s *AdminService) SetSubscription(ctx context.Context, studentID string, meal db_models.MealType, enabled bool) (*db_models.Account, error) {
	return s.subscriptions.SetSubscription(ctx, studentID, meal, enabled)
}
