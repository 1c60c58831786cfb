package user

import (
	"time"
)

// User is a salon account: admin, receptionist, staff member or customer login.
type User struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Uuid         string  `gorm:"type:varchar(255);not null;unique" json:"uuid"`
	Name         string  `gorm:"type:varchar(255);not null" json:"name"`
	Phone        string  `gorm:"type:varchar(20);not null;unique" json:"phone"`
	Email        *string `gorm:"type:varchar(255);unique" json:"email,omitempty"`
	PasswordHash string  `gorm:"type:varchar(255);not null" json:"-"`
	Role         string  `gorm:"type:varchar(50);not null;default:'customer'" json:"role"`
	IsActive     bool    `gorm:"type:bool;default:true" json:"is_active"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
