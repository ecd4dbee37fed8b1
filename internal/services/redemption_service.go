package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"messhall/internal/models/db_models"
	"messhall/internal/repositories"
	"messhall/pkg/utils"
)

type RedemptionResult struct {
	Entry   db_models.MealTransaction `json:"transaction"`
	Balance int                       `json:"remaining_tokens"`
}

type RedemptionServiceInterface interface {
	// Redeem exchanges one token for one meal. Every call that succeeds
	// consumes a token; repeated scans are not collapsed here.
	Redeem(ctx context.Context, studentID string, meal db_models.MealType) (*RedemptionResult, error)
	// RedeemScan parses a scanner payload and redeems for the id inside it.
	RedeemScan(ctx context.Context, code string, meal db_models.MealType) (*RedemptionResult, error)
}

type RedemptionService struct {
	accountRepo     repositories.AccountRepository
	transactionRepo repositories.TransactionRepository
	now             func() time.Time
	logger          *zap.Logger
}

func NewRedemptionService(accountRepo repositories.AccountRepository, transactionRepo repositories.TransactionRepository, logger *zap.Logger) RedemptionServiceInterface {
	return &RedemptionService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		now:             time.Now,
		logger:          logger,
	}
}

func invalidMeal() error {
	return utils.NewValidationError("meal_type", "must be one of breakfast, lunch, dinner")
}

func (s *RedemptionService) Redeem(ctx context.Context, studentID string, meal db_models.MealType) (*RedemptionResult, error) {
	if !meal.Valid() {
		return nil, invalidMeal()
	}

	var entry db_models.MealTransaction
	account, err := s.accountRepo.WithLock(ctx, studentID, func(tx *gorm.DB, account *db_models.Account) error {
		if account.TokenBalance <= 0 {
			return utils.ErrInsufficientTokens
		}
		if !account.Subscribed(meal) {
			return utils.ErrNotSubscribed
		}

		account.TokenBalance--
		entry = db_models.MealTransaction{
			StudentID:       account.ID,
			StudentName:     account.Name,
			MealType:        meal,
			TokensUsed:      1,
			RemainingTokens: account.TokenBalance,
			Timestamp:       s.now().UTC(),
		}
		return s.transactionRepo.AppendTx(tx, &entry)
	})
	if err != nil {
		s.logger.Info("redemption rejected",
			zap.String("student_id", studentID),
			zap.String("meal_type", string(meal)),
			zap.Error(err))
		return nil, asServiceError(err)
	}

	s.logger.Info("meal redeemed",
		zap.String("student_id", account.ID),
		zap.String("meal_type", string(meal)),
		zap.Int("remaining_tokens", account.TokenBalance))

	return &RedemptionResult{Entry: entry, Balance: account.TokenBalance}, nil
}

func (s *RedemptionService) RedeemScan(ctx context.Context, code string, meal db_models.MealType) (*RedemptionResult, error) {
	studentID, err := ParseScanCode(code)
	if err != nil {
		return nil, err
	}
	return s.Redeem(ctx, studentID, meal)
}

type scanPayload struct {
	StudentID string `json:"studentId"`
}

// ParseScanCode extracts a student id from a scanned code: either a JSON
// object {"studentId": "STU001"} or the bare id. The id is trimmed and
// upper-cased.
func ParseScanCode(code string) (string, error) {
	raw := strings.TrimSpace(code)
	if strings.HasPrefix(raw, "{") {
		var payload scanPayload
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return "", utils.NewValidationError("code", "unreadable scan payload")
		}
		raw = payload.StudentID
	}

	id := strings.ToUpper(strings.TrimSpace(raw))
	if id == "" {
		return "", utils.NewValidationError("code", "no student id in scan")
	}
	return id, nil
}
