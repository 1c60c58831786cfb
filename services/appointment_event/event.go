package appointment_event

import (
	appointmentModel "salon-booking/models/appointment"

	"gorm.io/gorm"
)

// SnapshotStatus writes an audit row for the appointment's current status.
// Called inside the same transaction as the status change.
func SnapshotStatus(tx *gorm.DB, a *appointmentModel.Appointment, createdBy string) error {
	ev := appointmentModel.StatusEvent{
		AppointmentID: a.ID,
		Status:        a.Status,
		CreatedBy:     createdBy,
	}
	return tx.Create(&ev).Error
}
