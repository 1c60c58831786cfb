package service

import (
	"time"
)

// Service is a catalog entry. Prices are snapshotted onto performed services
// at assignment time, so editing the catalog never rewrites history.
type Service struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Description string  `gorm:"type:text" json:"description,omitempty"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	TaxRate     float64 `gorm:"type:decimal(5,2);default:0" json:"tax_rate"`
	Duration    int     `json:"duration"` // in minutes
	Category    string  `gorm:"type:varchar(100);default:'General'" json:"category"`
	IsActive    bool    `gorm:"type:bool;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
