package db_models

import (
	"time"
)

type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintInProgress ComplaintStatus = "in-progress"
	ComplaintResolved   ComplaintStatus = "resolved"
)

type ComplaintCategory string

const (
	CategoryFoodQuality   ComplaintCategory = "food-quality"
	CategoryHygiene       ComplaintCategory = "hygiene"
	CategoryService       ComplaintCategory = "service"
	CategoryBilling       ComplaintCategory = "billing"
	CategoryRoomLight     ComplaintCategory = "room-light"
	CategoryRoomWater     ComplaintCategory = "room-water"
	CategoryRoomFan       ComplaintCategory = "room-fan"
	CategoryRoomCleaning  ComplaintCategory = "room-cleaning"
	CategoryRoomFurniture ComplaintCategory = "room-furniture"
	CategoryRoomBathroom  ComplaintCategory = "room-bathroom"
	CategoryRoomOther     ComplaintCategory = "room-other"
	CategorySuggestion    ComplaintCategory = "suggestion"
	CategoryOther         ComplaintCategory = "other"
)

var complaintCategories = map[ComplaintCategory]struct{}{
	CategoryFoodQuality: {}, CategoryHygiene: {}, CategoryService: {}, CategoryBilling: {},
	CategoryRoomLight: {}, CategoryRoomWater: {}, CategoryRoomFan: {}, CategoryRoomCleaning: {},
	CategoryRoomFurniture: {}, CategoryRoomBathroom: {}, CategoryRoomOther: {},
	CategorySuggestion: {}, CategoryOther: {},
}

func (c ComplaintCategory) Valid() bool {
	_, ok := complaintCategories[c]
	return ok
}

// Complaint is a ticket owned by one account. Insertion order is display order.
type Complaint struct {
	BaseModel
	AccountID   string            `gorm:"size:16;not null;index" json:"account_id"`
	Category    ComplaintCategory `gorm:"size:32;not null" json:"category"`
	Subject     string            `gorm:"not null" json:"subject"`
	Description string            `gorm:"type:text;not null" json:"description"`
	Status      ComplaintStatus   `gorm:"size:16;not null;index" json:"status"`
	AdminReply  *string           `gorm:"type:text" json:"admin_reply,omitempty"`
	RepliedAt   *time.Time        `json:"replied_at,omitempty"`
	ResolvedAt  *time.Time        `json:"resolved_at,omitempty"`
}
