package request_models

type SetSubscriptionRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type RedeemRequest struct {
	// Code is the scanned payload: a student id or {"studentId": "..."}.
	Code     string `json:"code" binding:"required"`
	MealType string `json:"meal_type" binding:"required"`
	// ScanID identifies one physical scan; repeats within the dedupe window
	// replay the first outcome.
	ScanID string `json:"scan_id"`
}
