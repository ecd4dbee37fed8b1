package repositories

import (
	"context"

	"gorm.io/gorm"

	"messhall/internal/models/db_models"
)

type PaymentRepository interface {
	CreateTx(tx *gorm.DB, payment *db_models.Payment) error
	// ListByAccount returns payments oldest first.
	ListByAccount(ctx context.Context, accountID string) ([]db_models.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreateTx(tx *gorm.DB, payment *db_models.Payment) error {
	return tx.Create(payment).Error
}

func (r *paymentRepository) ListByAccount(ctx context.Context, accountID string) ([]db_models.Payment, error) {
	var payments []db_models.Payment
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&payments).Error
	return payments, err
}
