package response_models

type MealSubscribers struct {
	Breakfast int64 `json:"breakfast"`
	Lunch     int64 `json:"lunch"`
	Dinner    int64 `json:"dinner"`
}

type StatsResponse struct {
	TotalStudents       int64           `json:"total_students"`
	TotalRevenue        int64           `json:"total_revenue"`
	ActiveSubscriptions int64           `json:"active_subscriptions"`
	OutstandingTokens   int64           `json:"outstanding_tokens"`
	Subscribers         MealSubscribers `json:"subscribers"`
	MealsLocked         bool            `json:"meals_locked"`
}

type MealUsage struct {
	MealType   string `json:"meal_type"`
	Count      int64  `json:"count"`
	TokensUsed int64  `json:"tokens_used"`
}

type DailyReport struct {
	Date        string      `json:"date"`
	Meals       []MealUsage `json:"meals"`
	TotalMeals  int64       `json:"total_meals"`
	TotalTokens int64       `json:"total_tokens"`
}
