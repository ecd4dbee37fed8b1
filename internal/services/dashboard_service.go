package services

import (
	"context"
	"time"

	dbm "messhall/internal/models/db_models"
	resp "messhall/internal/models/response_models"
	"messhall/internal/repositories"
	"messhall/pkg/utils"
)

type DashboardService interface {
	Stats(ctx context.Context) (*resp.StatsResponse, error)
	// DailyReport aggregates the redemptions of one calendar day (YYYY-MM-DD,
	// empty for today) in the service timezone.
	DailyReport(ctx context.Context, date string) (*resp.DailyReport, error)
	// ListTransactions returns the log entries of one calendar day, newest first.
	ListTransactions(ctx context.Context, date string) ([]dbm.MealTransaction, error)
}

type dashboardService struct {
	repo            repositories.DashboardRepository
	transactionRepo repositories.TransactionRepository
	gate            *MealLockGate
	loc             *time.Location
}

func NewDashboardService(repo repositories.DashboardRepository, transactionRepo repositories.TransactionRepository, gate *MealLockGate, loc *time.Location) DashboardService {
	return &dashboardService{
		repo:            repo,
		transactionRepo: transactionRepo,
		gate:            gate,
		loc:             loc,
	}
}

func (s *dashboardService) dayRange(date string) (string, time.Time, time.Time, error) {
	if date == "" {
		date = utils.Today(s.loc)
	}
	start, end, err := utils.DayBounds(date, s.loc)
	if err != nil {
		return "", time.Time{}, time.Time{}, utils.NewValidationError("date", "expected YYYY-MM-DD")
	}
	return date, start, end, nil
}

func (s *dashboardService) Stats(ctx context.Context) (*resp.StatsResponse, error) {
	totalStudents, err := s.repo.CountTotalAccounts(ctx)
	if err != nil {
		return nil, asServiceError(err)
	}

	revenue, err := s.repo.SumTotalSpent(ctx)
	if err != nil {
		return nil, asServiceError(err)
	}

	active, err := s.repo.CountActiveSubscriptions(ctx)
	if err != nil {
		return nil, asServiceError(err)
	}

	outstanding, err := s.repo.SumTokenBalances(ctx)
	if err != nil {
		return nil, asServiceError(err)
	}

	counts := make(map[dbm.MealType]int64, len(dbm.MealTypes))
	for _, meal := range dbm.MealTypes {
		n, err := s.repo.CountSubscribers(ctx, meal)
		if err != nil {
			return nil, asServiceError(err)
		}
		counts[meal] = n
	}

	return &resp.StatsResponse{
		TotalStudents:       totalStudents,
		TotalRevenue:        revenue,
		ActiveSubscriptions: active,
		OutstandingTokens:   outstanding,
		Subscribers: resp.MealSubscribers{
			Breakfast: counts[dbm.MealBreakfast],
			Lunch:     counts[dbm.MealLunch],
			Dinner:    counts[dbm.MealDinner],
		},
		MealsLocked: s.gate.Locked(),
	}, nil
}

func (s *dashboardService) DailyReport(ctx context.Context, date string) (*resp.DailyReport, error) {
	date, start, end, err := s.dayRange(date)
	if err != nil {
		return nil, err
	}

	rows, err := s.transactionRepo.CountByMealBetween(ctx, start, end)
	if err != nil {
		return nil, asServiceError(err)
	}

	byMeal := make(map[dbm.MealType]repositories.MealCountRow, len(rows))
	for _, r := range rows {
		byMeal[r.MealType] = r
	}

	report := &resp.DailyReport{Date: date, Meals: make([]resp.MealUsage, 0, len(dbm.MealTypes))}
	for _, meal := range dbm.MealTypes {
		r := byMeal[meal]
		report.Meals = append(report.Meals, resp.MealUsage{
			MealType:   string(meal),
			Count:      r.Count,
			TokensUsed: r.TokensUsed,
		})
		report.TotalMeals += r.Count
		report.TotalTokens += r.TokensUsed
	}
	return report, nil
}

func (s *dashboardService) ListTransactions(ctx context.Context, date string) ([]dbm.MealTransaction, error) {
	_, start, end, err := s.dayRange(date)
	if err != nil {
		return nil, err
	}

	entries, err := s.transactionRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, asServiceError(err)
	}
	return entries, nil
}
