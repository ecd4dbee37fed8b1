package db_models

// IDSequence is a named monotonically increasing counter.
type IDSequence struct {
	Name  string `gorm:"primaryKey;size:32"`
	Value int64  `gorm:"not null"`
}

func (IDSequence) TableName() string {
	return "id_sequences"
}

const AccountSequence = "account"

// All lists every table the service migrates.
func All() []interface{} {
	return []interface{}{
		&IDSequence{},
		&Account{},
		&Complaint{},
		&Payment{},
		&MealTransaction{},
	}
}
