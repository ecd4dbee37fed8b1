package response_models

import (
	"time"

	"messhall/internal/models/db_models"
)

type AccountLoginResponse struct {
	Token   string           `json:"token"`
	Account *AccountResponse `json:"account,omitempty"`
}

type AccountResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Room         string    `json:"room"`
	Breakfast    bool      `json:"breakfast"`
	Lunch        bool      `json:"lunch"`
	Dinner       bool      `json:"dinner"`
	TokenBalance int       `json:"token_balance"`
	TotalSpent   int64     `json:"total_spent"`
	DailyFee     int       `json:"daily_fee"`
	MonthlyFee   int       `json:"monthly_fee"`
	CreatedAt    time.Time `json:"created_at"`
}

// AccountSummary is the roster row shown to admins.
type AccountSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Room         string `json:"room"`
	Breakfast    bool   `json:"breakfast"`
	Lunch        bool   `json:"lunch"`
	Dinner       bool   `json:"dinner"`
	TokenBalance int    `json:"token_balance"`
	TotalSpent   int64  `json:"total_spent"`
}

func NewAccountSummary(a *db_models.Account) AccountSummary {
	return AccountSummary{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Room:         a.Room,
		Breakfast:    a.Breakfast,
		Lunch:        a.Lunch,
		Dinner:       a.Dinner,
		TokenBalance: a.TokenBalance,
		TotalSpent:   a.TotalSpent,
	}
}

// NewAccountResponse renders a with the given fees.
func NewAccountResponse(a *db_models.Account, dailyFee, monthlyFee int) *AccountResponse {
	return &AccountResponse{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Room:         a.Room,
		Breakfast:    a.Breakfast,
		Lunch:        a.Lunch,
		Dinner:       a.Dinner,
		TokenBalance: a.TokenBalance,
		TotalSpent:   a.TotalSpent,
		DailyFee:     dailyFee,
		MonthlyFee:   monthlyFee,
		CreatedAt:    a.CreatedAt,
	}
}
