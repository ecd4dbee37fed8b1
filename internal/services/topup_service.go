package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"messhall/internal/models/db_models"
	"messhall/internal/repositories"
	"messhall/pkg/utils"
)

type TopUpResult struct {
	Payment    db_models.Payment `json:"payment"`
	Balance    int               `json:"token_balance"`
	TotalSpent int64             `json:"total_spent"`
}

type TopUpServiceInterface interface {
	// TopUp credits the grant for amount to the student's balance, adds amount
	// to total spent and records the payment, all in one transaction.
	TopUp(ctx context.Context, studentID string, amount int64, method db_models.PaymentMethod) (*TopUpResult, error)
	ListPayments(ctx context.Context, studentID string) ([]db_models.Payment, error)
}

type TopUpService struct {
	accountRepo repositories.AccountRepository
	paymentRepo repositories.PaymentRepository
	minimum     int64
	logger      *zap.Logger
}

func NewTopUpService(accountRepo repositories.AccountRepository, paymentRepo repositories.PaymentRepository, minimum int64, logger *zap.Logger) TopUpServiceInterface {
	return &TopUpService{
		accountRepo: accountRepo,
		paymentRepo: paymentRepo,
		minimum:     minimum,
		logger:      logger,
	}
}

func (s *TopUpService) TopUp(ctx context.Context, studentID string, amount int64, method db_models.PaymentMethod) (*TopUpResult, error) {
	if amount < s.minimum {
		return nil, fmt.Errorf("%w: minimum is %d", utils.ErrAmountTooLow, s.minimum)
	}
	if amount > MaxTopUpAmount {
		return nil, utils.NewValidationError("amount", fmt.Sprintf("must not exceed %d", MaxTopUpAmount))
	}
	if !method.Valid() {
		return nil, utils.NewValidationError("method", "must be one of upi, card, netbanking, wallet")
	}

	grant := GrantFor(amount)
	var payment db_models.Payment

	account, err := s.accountRepo.WithLock(ctx, studentID, func(tx *gorm.DB, account *db_models.Account) error {
		if !creditFits(account.TokenBalance, grant.Tokens) {
			return utils.NewValidationError("amount", fmt.Sprintf("balance would exceed %d tokens", MaxTokenBalance))
		}
		account.TokenBalance += grant.Tokens
		account.TotalSpent += amount

		payment = db_models.Payment{
			AccountID:     account.ID,
			Amount:        amount,
			TokensGranted: grant.Tokens,
			BonusTokens:   grant.Bonus,
			Method:        method,
			Description:   fmt.Sprintf("Purchase of %d tokens", grant.Tokens),
			Status:        db_models.PaymentStatusCompleted,
		}
		return s.paymentRepo.CreateTx(tx, &payment)
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	s.logger.Info("top-up credited",
		zap.String("student_id", account.ID),
		zap.Int64("amount", amount),
		zap.Int("tokens", grant.Tokens),
		zap.Int("bonus", grant.Bonus),
		zap.String("method", string(method)))

	return &TopUpResult{
		Payment:    payment,
		Balance:    account.TokenBalance,
		TotalSpent: account.TotalSpent,
	}, nil
}

func (s *TopUpService) ListPayments(ctx context.Context, studentID string) ([]db_models.Payment, error) {
	account, err := s.accountRepo.FindById(ctx, studentID)
	if err != nil {
		return nil, asServiceError(err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	payments, err := s.paymentRepo.ListByAccount(ctx, studentID)
	if err != nil {
		return nil, asServiceError(err)
	}
	return payments, nil
}
