package request_models

type TopUpRequest struct {
	Amount int64  `json:"amount" binding:"max=1000000"`
	Method string `json:"method" binding:"required"`
}
