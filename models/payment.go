package models

// PaymentStatus tracks a single gateway payment attempt
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// CurrencyINR is the only currency the gateway account accepts
const CurrencyINR = "INR"

// Payment is one attempt to pay for a Registration. Amount is in paise.
type Payment struct {
	Base
	RegistrationID    string        `gorm:"type:varchar(36);not null;index" json:"registrationId"`
	Amount            int64         `gorm:"not null" json:"amount"`
	Currency          string        `gorm:"type:varchar(3);not null;default:INR" json:"currency"`
	Receipt           string        `gorm:"type:varchar(40)" json:"receipt"`
	RazorpayOrderID   string        `gorm:"type:varchar(100);not null;uniqueIndex" json:"razorpayOrderId"`
	RazorpayPaymentID *string       `gorm:"type:varchar(100)" json:"razorpayPaymentId"`
	RazorpaySignature *string       `gorm:"type:varchar(255)" json:"razorpaySignature"`
	Status            PaymentStatus `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`

	Registration *Registration `gorm:"foreignKey:RegistrationID;constraint:OnDelete:RESTRICT" json:"registration,omitempty"`
}

// IsActive reports whether the attempt still blocks a new one for the same registration
func (p *Payment) IsActive() bool {
	return p.Status != PaymentFailed
}
