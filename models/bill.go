package models

import (
	"time"

	"gorm.io/gorm"
)

// Bill is created once per recorded purchase and never mutated afterwards.
type Bill struct {
	BillID        string    `gorm:"uniqueIndex;not null" json:"billId"`
	CustomerPhone string    `gorm:"index;not null" json:"customerPhone"`
	CustomerName  string    `json:"customerName"`
	Amount        float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	Items         string    `json:"items"`
	BilledAt      time.Time `json:"billedAt"`
	IsPaid        bool      `gorm:"default:true" json:"isPaid"`
	PaymentMode   string    `gorm:"default:'Cash'" json:"paymentMode"`

	gorm.Model
}
