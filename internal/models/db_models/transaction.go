package db_models

import "time"

// MealTransaction is one entry of the redemption log. StudentName and
// RemainingTokens are snapshots taken at redemption time; rows are never
// updated or deleted.
type MealTransaction struct {
	BaseModel
	StudentID       string    `gorm:"size:16;not null;index" json:"student_id"`
	StudentName     string    `gorm:"not null" json:"student_name"`
	MealType        MealType  `gorm:"size:16;not null" json:"meal_type"`
	TokensUsed      int       `gorm:"not null" json:"tokens_used"`
	RemainingTokens int       `gorm:"not null" json:"remaining_tokens"`
	Timestamp       time.Time `gorm:"column:redeemed_at;not null;index" json:"timestamp"`
}

func (MealTransaction) TableName() string {
	return "meal_transactions"
}
