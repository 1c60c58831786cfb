package appointment

import (
	"time"
)

// StatusEvent is an audit row written whenever an appointment's status changes.
type StatusEvent struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	AppointmentID uint        `gorm:"not null;index" json:"appointment_id"`
	Appointment   Appointment `gorm:"foreignKey:AppointmentID" json:"appointment"`

	Status    Status    `gorm:"type:varchar(50);not null" json:"status"`
	CreatedBy string    `gorm:"type:varchar(255);not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the StatusEvent model
func (StatusEvent) TableName() string {
	return "appointment_status_events"
}
