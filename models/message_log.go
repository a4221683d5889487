package models

import (
	"time"

	"gorm.io/gorm"
)

// MessageLog is append-only. Rows are written by the dispatcher for every
// delivery attempt and are only ever read back for history and statistics.
type MessageLog struct {
	Phone        string    `gorm:"index" json:"phone"`
	Preview      string    `json:"preview"`
	Status       string    `gorm:"type:varchar(20);index" json:"status"` // sent, failed
	ErrorMessage string    `json:"errorMessage,omitempty"`
	Kind         string    `gorm:"type:varchar(20)" json:"kind"` // single, bulk, personalized
	SentAt       time.Time `gorm:"index" json:"sentAt"`

	gorm.Model
}
