package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"messhall/internal/models/db_models"
)

// TransactionRepository is the append-only redemption log. It has no update
// or delete operations.
type TransactionRepository interface {
	AppendTx(tx *gorm.DB, entry *db_models.MealTransaction) error
	// ListBetween returns entries with from <= timestamp < to, newest first.
	ListBetween(ctx context.Context, from, to time.Time) ([]db_models.MealTransaction, error)
	ListByStudent(ctx context.Context, studentID string, limit int) ([]db_models.MealTransaction, error)
	// CountByMealBetween aggregates redemptions per meal type in [from, to).
	CountByMealBetween(ctx context.Context, from, to time.Time) ([]MealCountRow, error)
}

type MealCountRow struct {
	MealType   db_models.MealType `gorm:"column:meal_type"`
	Count      int64              `gorm:"column:count"`
	TokensUsed int64              `gorm:"column:tokens_used"`
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) AppendTx(tx *gorm.DB, entry *db_models.MealTransaction) error {
	return tx.Create(entry).Error
}

func (r *transactionRepository) ListBetween(ctx context.Context, from, to time.Time) ([]db_models.MealTransaction, error) {
	var entries []db_models.MealTransaction
	err := r.db.WithContext(ctx).
		Where("redeemed_at >= ? AND redeemed_at < ?", from.UTC(), to.UTC()).
		Order("redeemed_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *transactionRepository) ListByStudent(ctx context.Context, studentID string, limit int) ([]db_models.MealTransaction, error) {
	var entries []db_models.MealTransaction

	query := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("redeemed_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&entries).Error
	return entries, err
}

func (r *transactionRepository) CountByMealBetween(ctx context.Context, from, to time.Time) ([]MealCountRow, error) {
	var rows []MealCountRow
	err := r.db.WithContext(ctx).
		Model(&db_models.MealTransaction{}).
		Select("meal_type, COUNT(*) AS count, COALESCE(SUM(tokens_used), 0) AS tokens_used").
		Where("redeemed_at >= ? AND redeemed_at < ?", from.UTC(), to.UTC()).
		Group("meal_type").
		Order("meal_type").
		Scan(&rows).Error
	return rows, err
}
