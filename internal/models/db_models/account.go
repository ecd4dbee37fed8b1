package db_models

import "time"

// Account is a student's mess membership. TokenBalance never goes below zero.
type Account struct {
	ID       string `gorm:"primaryKey;size:16" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Room     string `gorm:"size:32" json:"room"`

	Breakfast bool `gorm:"not null;default:false" json:"breakfast"`
	Lunch     bool `gorm:"not null;default:false" json:"lunch"`
	Dinner    bool `gorm:"not null;default:false" json:"dinner"`

	TokenBalance int   `gorm:"not null;default:0;check:chk_accounts_token_balance,token_balance >= 0" json:"token_balance"`
	TotalSpent   int64 `gorm:"not null;default:0" json:"total_spent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Complaints []Complaint `gorm:"foreignKey:AccountID" json:"complaints,omitempty"`
	Payments   []Payment   `gorm:"foreignKey:AccountID" json:"payments,omitempty"`
}

func (a *Account) Subscribed(meal MealType) bool {
	switch meal {
	case MealBreakfast:
		return a.Breakfast
	case MealLunch:
		return a.Lunch
	case MealDinner:
		return a.Dinner
	}
	return false
}

func (a *Account) SetSubscribed(meal MealType, enabled bool) {
	switch meal {
	case MealBreakfast:
		a.Breakfast = enabled
	case MealLunch:
		a.Lunch = enabled
	case MealDinner:
		a.Dinner = enabled
	}
}

// HasSubscription reports whether any meal is on.
func (a *Account) HasSubscription() bool {
	return a.Breakfast || a.Lunch || a.Dinner
}
