package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"messhall/internal/config"
	"messhall/internal/models/db_models"
)

func TestGrantFor(t *testing.T) {
	tests := []struct {
		amount int64
		want   TokenGrant
	}{
		{100, TokenGrant{Tokens: 10}},
		{500, TokenGrant{Tokens: 50}},
		{750, TokenGrant{Tokens: 75}},
		{999, TokenGrant{Tokens: 99}},
		{1000, TokenGrant{Tokens: 110, Bonus: 10}},
		{1001, TokenGrant{Tokens: 120, Bonus: 20}},
		{1500, TokenGrant{Tokens: 180, Bonus: 30}},
		{2000, TokenGrant{Tokens: 240, Bonus: 40}},
		{3000, TokenGrant{Tokens: 360, Bonus: 60}},
		{5000, TokenGrant{Tokens: 650, Bonus: 150}},
		{5005, TokenGrant{Tokens: 600, Bonus: 100}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GrantFor(tt.amount), "amount %d", tt.amount)
	}
}

func TestFeeSchedule(t *testing.T) {
	fees := NewFeeSchedule(config.MealRates{Breakfast: 30, Lunch: 60, Dinner: 40})

	tests := []struct {
		name                     string
		breakfast, lunch, dinner bool
		daily                    int
	}{
		{"none", false, false, false, 0},
		{"breakfast", true, false, false, 30},
		{"lunch", false, true, false, 60},
		{"dinner", false, false, true, 40},
		{"breakfast and lunch", true, true, false, 90},
		{"all", true, true, true, 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.daily, fees.DailyFee(tt.breakfast, tt.lunch, tt.dinner))
			assert.Equal(t, tt.daily*30, fees.MonthlyFee(tt.breakfast, tt.lunch, tt.dinner))
		})
	}
}

func TestFeeScheduleOverriddenRates(t *testing.T) {
	fees := NewFeeSchedule(config.MealRates{Breakfast: 25, Lunch: 70, Dinner: 55})

	daily, monthly := fees.AccountFees(&db_models.Account{Lunch: true, Dinner: true})
	assert.Equal(t, 125, daily)
	assert.Equal(t, 3750, monthly)
	assert.Equal(t, 70, fees.Rate(db_models.MealLunch))

	rates := fees.Rates()
	rates[db_models.MealLunch] = 1
	assert.Equal(t, 70, fees.Rate(db_models.MealLunch))
}
