package request_models

type FileComplaintRequest struct {
	Category    string `json:"category" binding:"required"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

type ReplyComplaintRequest struct {
	Text string `json:"text"`
}
