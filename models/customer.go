package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer categories, in the order used to break ties in stats.
var CustomerCategories = []string{"General", "Regular", "VIP", "Electrician", "Contractor", "Builder"}

// Customer is keyed by its canonical E.164 phone number. CustomerID is a
// human-facing sequential code (CUST-0001) that is never reused.
type Customer struct {
	CustomerID string `gorm:"uniqueIndex;not null" json:"customerId"`
	Name       string `gorm:"not null" json:"name"`
	Phone      string `gorm:"uniqueIndex;not null" json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`

	Birthday    *time.Time `json:"birthday"`
	Anniversary *time.Time `json:"anniversary"`

	Category string `gorm:"default:'General'" json:"category"`
	Tags     string `json:"tags"`
	Notes    string `json:"notes"`

	TotalPurchases     int        `gorm:"default:0" json:"totalPurchases"`
	TotalSpent         float64    `gorm:"type:decimal(12,2);default:0.0" json:"totalSpent"`
	LastPurchaseDate   *time.Time `json:"lastPurchaseDate"`
	LastPurchaseAmount float64    `gorm:"type:decimal(12,2);default:0.0" json:"lastPurchaseAmount"`
	VisitCount         int        `gorm:"default:0" json:"visitCount"`

	AddedDate time.Time `json:"addedDate"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`

	gorm.Model
}

func IsValidCategory(category string) bool {
	for _, c := range CustomerCategories {
		if c == category {
			return true
		}
	}
	return false
}
