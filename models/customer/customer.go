package customer

import (
	"time"
)

// Customer is a salon client. Appointments may be booked for the customer
// directly or for one of their family members.
type Customer struct {
	ID    uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Uuid  string  `gorm:"type:varchar(255);not null;unique" json:"uuid"`
	Name  string  `gorm:"type:varchar(255);not null" json:"name"`
	Phone string  `gorm:"type:varchar(20);not null" json:"phone"`
	Email *string `gorm:"type:varchar(255)" json:"email,omitempty"`
	Notes string  `gorm:"type:text" json:"notes,omitempty"`

	FamilyMembers []FamilyMember `gorm:"foreignKey:CustomerID" json:"family_members,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// FamilyMember is a person attached to a customer account.
type FamilyMember struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID uint   `gorm:"not null;index" json:"customer_id"`
	Name       string `gorm:"type:varchar(255);not null" json:"name"`
	Relation   string `gorm:"type:varchar(50)" json:"relation,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
