package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "messhall/internal/models/db_models"
)

type DashboardRepository interface {
	CountTotalAccounts(ctx context.Context) (int64, error)
	// SumTotalSpent is the revenue collected through top-ups across the roster.
	SumTotalSpent(ctx context.Context) (int64, error)
	// CountActiveSubscriptions counts accounts with at least one meal on.
	CountActiveSubscriptions(ctx context.Context) (int64, error)
	CountSubscribers(ctx context.Context, meal dbm.MealType) (int64, error)
	SumTokenBalances(ctx context.Context) (int64, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountTotalAccounts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Account{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) SumTotalSpent(ctx context.Context) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Account{}).
		Select("COALESCE(SUM(total_spent), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *dashboardRepository) CountActiveSubscriptions(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Account{}).
		Where("breakfast = ? OR lunch = ? OR dinner = ?", true, true, true).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountSubscribers(ctx context.Context, meal dbm.MealType) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Account{}).
		Where(meal.Column()+" = ?", true).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) SumTokenBalances(ctx context.Context) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Account{}).
		Select("COALESCE(SUM(token_balance), 0)").
		Scan(&sum).Error
	return sum, err
}
