package billing

import (
	"time"
)

// BillingRecord is the financial settlement record for an appointment. It
// references one performed service for historical linkage only; the amounts
// cover the whole appointment.
type BillingRecord struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// One billing record per appointment, backed by a unique index.
	AppointmentID      uint `gorm:"not null;uniqueIndex:idx_billing_records_appointment" json:"appointment_id"`
	PerformedServiceID uint `gorm:"not null;index" json:"performed_service_id"`

	TotalAmount   float64       `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	PaidAmount    float64       `gorm:"type:decimal(10,2);default:0" json:"paid_amount"`
	PaymentMethod string        `gorm:"type:varchar(50)" json:"payment_method,omitempty"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(50);not null;default:'pending'" json:"payment_status"`
	Notes         string        `gorm:"type:text" json:"notes,omitempty"`

	CreatedBy string    `gorm:"type:varchar(255);not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// PaymentStatus tracks settlement progress of a billing record.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusPartial   PaymentStatus = "partial"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCompleted PaymentStatus = "completed"
)

func (ps PaymentStatus) String() string {
	return string(ps)
}

func (ps PaymentStatus) IsValid() bool {
	switch ps {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusPartial, PaymentStatusFailed, PaymentStatusCompleted:
		return true
	default:
		return false
	}
}
