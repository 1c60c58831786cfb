package appointment

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"salon-booking/models/customer"
)

// Appointment represents a scheduled salon visit. The planned service and
// staff id lists are denormalized snapshots taken at booking time; the actual
// record of work lives in the owned PerformedService rows.
type Appointment struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Uuid string `gorm:"type:varchar(255);not null;unique" json:"uuid"`

	CustomerID     uint              `gorm:"not null;index" json:"customer_id"`
	Customer       customer.Customer `gorm:"foreignKey:CustomerID" json:"customer"`
	FamilyMemberID *uint             `gorm:"index" json:"family_member_id,omitempty"`

	Status         Status    `gorm:"type:varchar(50);not null" json:"status"`
	ScheduledStart time.Time `gorm:"not null;index" json:"scheduled_start"`
	ScheduledEnd   time.Time `gorm:"not null" json:"scheduled_end"`

	PlannedServiceIDs UintSlice `gorm:"type:json" json:"planned_service_ids"`
	PlannedStaffIDs   UintSlice `gorm:"type:json" json:"planned_staff_ids"`

	Notes string `gorm:"type:text" json:"notes,omitempty"`

	PerformedServices []PerformedService `gorm:"foreignKey:AppointmentID" json:"performed_services,omitempty"`

	CreatedBy string    `gorm:"type:varchar(255);not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedBy string    `gorm:"type:varchar(255)" json:"updated_by,omitempty"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// UintSlice stores a slice of ids in a JSON column.
type UintSlice []uint

// Scan implements the Scanner interface for database deserialization
func (us *UintSlice) Scan(value interface{}) error {
	if value == nil {
		*us = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, us)
}

// Value implements the driver Valuer interface for database serialization
func (us UintSlice) Value() (driver.Value, error) {
	if us == nil {
		return nil, nil
	}
	return json.Marshal(us)
}
