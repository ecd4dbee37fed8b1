package infra

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"messhall/internal/models/db_models"
)

var demoAccounts = []db_models.Account{
	{
		ID: "STU001", Name: "Rajesh Kumar", Email: "rajesh@college.com", Room: "A-101",
		Breakfast: true, Lunch: true, TokenBalance: 45, TotalSpent: 5400,
	},
	{
		ID: "STU002", Name: "Priya Singh", Email: "priya@college.com", Room: "B-205",
		Breakfast: true, Lunch: true, Dinner: true, TokenBalance: 72, TotalSpent: 8640,
	},
}

// demoPurchases are the top-ups behind each demo account's total spent.
var demoPurchases = map[string][]db_models.Payment{
	"STU001": {
		{Amount: 5000, TokensGranted: 650, BonusTokens: 150, Method: db_models.MethodCard},
		{Amount: 400, TokensGranted: 40, Method: db_models.MethodUPI},
	},
	"STU002": {
		{Amount: 5000, TokensGranted: 650, BonusTokens: 150, Method: db_models.MethodUPI},
		{Amount: 2000, TokensGranted: 240, BonusTokens: 40, Method: db_models.MethodCard},
		{Amount: 1000, TokensGranted: 110, BonusTokens: 10, Method: db_models.MethodWallet},
		{Amount: 640, TokensGranted: 64, Method: db_models.MethodUPI},
	},
}

const demoPassword = "1234"

// SeedDemoAccounts inserts the demo roster into a fresh database (no account
// id has ever been issued) and starts the id sequence after the seeded ids.
func SeedDemoAccounts(ctx context.Context, db *gorm.DB, hash func(string) (string, error), logger *zap.Logger) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seq db_models.IDSequence
		if err := tx.Where("name = ?", db_models.AccountSequence).
			FirstOrCreate(&seq, db_models.IDSequence{Name: db_models.AccountSequence, Value: 0}).Error; err != nil {
			return err
		}
		if seq.Value > 0 {
			return nil
		}

		password, err := hash(demoPassword)
		if err != nil {
			return fmt.Errorf("hash demo password: %w", err)
		}

		for _, a := range demoAccounts {
			account := a
			account.Password = password
			if err := tx.Create(&account).Error; err != nil {
				return fmt.Errorf("seed %s: %w", account.ID, err)
			}

			var spent int64
			for _, p := range demoPurchases[account.ID] {
				payment := p
				payment.AccountID = account.ID
				payment.Description = fmt.Sprintf("Purchase of %d tokens", payment.TokensGranted)
				payment.Status = db_models.PaymentStatusCompleted
				if err := tx.Create(&payment).Error; err != nil {
					return fmt.Errorf("seed payment for %s: %w", account.ID, err)
				}
				spent += payment.Amount
			}
			if spent != account.TotalSpent {
				return fmt.Errorf("seed %s: payments sum to %d, total spent is %d", account.ID, spent, account.TotalSpent)
			}
		}

		if err := tx.Model(&db_models.IDSequence{}).
			Where("name = ?", db_models.AccountSequence).
			Update("value", int64(len(demoAccounts))).Error; err != nil {
			return err
		}

		logger.Info("seeded demo accounts", zap.Int("count", len(demoAccounts)))
		return nil
	})
}
