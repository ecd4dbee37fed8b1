package db_models

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner}

func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	}
	return false
}

// Column is the accounts column holding the subscription flag for m.
func (m MealType) Column() string {
	return string(m)
}
