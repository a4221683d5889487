package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	Name         string    `gorm:"not null" json:"name"`
	Category     string    `gorm:"default:'General'" json:"category"`
	Brand        string    `json:"brand"`
	Price        float64   `gorm:"type:decimal(12,2);not null" json:"price"`
	MRP          float64   `gorm:"type:decimal(12,2)" json:"mrp"`
	Description  string    `json:"description"`
	IsNewArrival bool      `gorm:"default:true" json:"isNewArrival"`
	AddedDate    time.Time `json:"addedDate"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`

	gorm.Model
}
