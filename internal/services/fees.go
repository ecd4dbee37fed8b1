package services

import (
	"messhall/internal/config"
	"messhall/internal/models/db_models"
)

const DaysPerMonth = 30

// FeeSchedule prices meal subscriptions. Fees are informational; nothing
// deducts them from a balance.
type FeeSchedule struct {
	rates map[db_models.MealType]int
}

func NewFeeSchedule(rates config.MealRates) *FeeSchedule {
	return &FeeSchedule{rates: map[db_models.MealType]int{
		db_models.MealBreakfast: rates.Breakfast,
		db_models.MealLunch:     rates.Lunch,
		db_models.MealDinner:    rates.Dinner,
	}}
}

func (f *FeeSchedule) Rate(meal db_models.MealType) int {
	return f.rates[meal]
}

// Rates returns a copy of the per-meal rate table.
func (f *FeeSchedule) Rates() map[db_models.MealType]int {
	out := make(map[db_models.MealType]int, len(f.rates))
	for meal, rate := range f.rates {
		out[meal] = rate
	}
	return out
}

func (f *FeeSchedule) DailyFee(breakfast, lunch, dinner bool) int {
	fee := 0
	if breakfast {
		fee += f.rates[db_models.MealBreakfast]
	}
	if lunch {
		fee += f.rates[db_models.MealLunch]
	}
	if dinner {
		fee += f.rates[db_models.MealDinner]
	}
	return fee
}

func (f *FeeSchedule) MonthlyFee(breakfast, lunch, dinner bool) int {
	return f.DailyFee(breakfast, lunch, dinner) * DaysPerMonth
}

// AccountFees is DailyFee and MonthlyFee for the account's current flags.
func (f *FeeSchedule) AccountFees(account *db_models.Account) (daily, monthly int) {
	daily = f.DailyFee(account.Breakfast, account.Lunch, account.Dinner)
	return daily, daily * DaysPerMonth
}
