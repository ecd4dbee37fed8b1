package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"messhall/internal/config"
	"messhall/internal/infra"
	"messhall/internal/models/db_models"
	"messhall/internal/repositories"
	"messhall/pkg/utils"
)

var testIST = time.FixedZone("IST", 5*3600+1800)

func testDSN(t *testing.T) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, t.Name())
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := infra.OpenDatabase(config.DatabaseConfig{Driver: "sqlite", DSN: testDSN(t)}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { infra.CloseDatabase(db, zap.NewNop()) })
	return db
}

type fixture struct {
	db              *gorm.DB
	accountRepo     repositories.AccountRepository
	transactionRepo repositories.TransactionRepository
	paymentRepo     repositories.PaymentRepository
	gate            *MealLockGate

	accounts      AccountServiceInterface
	redemption    RedemptionServiceInterface
	subscriptions SubscriptionServiceInterface
	topups        TopUpServiceInterface
	complaints    ComplaintServiceInterface
	admin         AdminServiceInterface
	dashboard     DashboardService
}

func newFixture(t *testing.T, policy ComplaintPolicy) *fixture {
	t.Helper()

	logger := zap.NewNop()
	db := newTestDB(t)

	f := &fixture{
		db:              db,
		accountRepo:     repositories.NewAccountRepository(db),
		transactionRepo: repositories.NewTransactionRepository(db),
		paymentRepo:     repositories.NewPaymentRepository(db),
		gate:            NewMealLockGate(false, logger),
	}

	auth, err := NewAuthenticator(PasswordSchemePlain)
	require.NoError(t, err)
	issuer := utils.NewTokenIssuer("test-secret", time.Hour)

	f.accounts = NewAccountService(f.accountRepo, auth, issuer, logger)
	f.redemption = NewRedemptionService(f.accountRepo, f.transactionRepo, logger)
	f.subscriptions = NewSubscriptionService(f.accountRepo, f.gate, logger)
	f.topups = NewTopUpService(f.accountRepo, f.paymentRepo, 100, logger)
	f.complaints = NewComplaintService(repositories.NewComplaintRepository(db), f.accountRepo, policy, logger)
	f.admin = NewAdminService(f.accounts, f.subscriptions, f.accountRepo, f.gate, issuer, "admin123", logger)
	f.dashboard = NewDashboardService(repositories.NewDashboardRepository(db), f.transactionRepo, f.gate, testIST)
	return f
}

// student registers an account and forces its balance and meal flags.
func (f *fixture) student(t *testing.T, name string, balance int, meals ...db_models.MealType) *db_models.Account {
	t.Helper()
	ctx := context.Background()

	email := strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@college.com"
	account, err := f.accounts.Register(ctx, name, email, "1234")
	require.NoError(t, err)

	account, err = f.accountRepo.WithLock(ctx, account.ID, func(_ *gorm.DB, a *db_models.Account) error {
		a.TokenBalance = balance
		for _, meal := range meals {
			a.SetSubscribed(meal, true)
		}
		return nil
	})
	require.NoError(t, err)
	return account
}

func (f *fixture) reload(t *testing.T, id string) *db_models.Account {
	t.Helper()
	account, err := f.accountRepo.FindById(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, account)
	return account
}

func (f *fixture) logCount(t *testing.T, studentID string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&db_models.MealTransaction{}).Where("student_id = ?", studentID).Count(&n).Error)
	return n
}
