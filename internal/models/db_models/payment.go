package db_models

type PaymentMethod string

const (
	MethodUPI        PaymentMethod = "upi"
	MethodCard       PaymentMethod = "card"
	MethodNetBanking PaymentMethod = "netbanking"
	MethodWallet     PaymentMethod = "wallet"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodUPI, MethodCard, MethodNetBanking, MethodWallet:
		return true
	}
	return false
}

const PaymentStatusCompleted = "completed"

// Payment records one top-up. Created once, never updated.
type Payment struct {
	BaseModel
	AccountID     string        `gorm:"size:16;not null;index" json:"account_id"`
	Amount        int64         `gorm:"not null" json:"amount"`
	TokensGranted int           `gorm:"not null" json:"tokens_granted"`
	BonusTokens   int           `gorm:"not null;default:0" json:"bonus_tokens"`
	Method        PaymentMethod `gorm:"size:16;not null" json:"method"`
	Description   string        `gorm:"not null" json:"description"`
	Status        string        `gorm:"size:16;not null" json:"status"`
}
