package appointment

import (
	"time"
)

// PerformedService records one service actually carried out (or scheduled to
// be) within an appointment. Price is a snapshot of the catalog price at
// assignment time and stays editable afterwards.
//
// Invariant: a row may only hold StatusCompleted while StaffID is non-null.
// The fulfillment service enforces this on every create and update against
// the resulting values.
type PerformedService struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	AppointmentID uint `gorm:"not null;index" json:"appointment_id"`
	ServiceID     uint `gorm:"not null;index" json:"service_id"`

	// Nullable on purpose: a service can be planned before anyone is assigned.
	StaffID *uint `gorm:"index" json:"staff_id,omitempty"`

	Status Status   `gorm:"type:varchar(50);not null" json:"status"`
	Price  *float64 `gorm:"type:decimal(10,2)" json:"price,omitempty"`
	Notes  string   `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the PerformedService model
func (PerformedService) TableName() string {
	return "performed_services"
}
