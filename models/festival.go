package models

import (
	"time"

	"gorm.io/gorm"
)

// FestivalEvent is identified by its (date, name) pair. The table holds a
// seeded default calendar plus any user-added events.
type FestivalEvent struct {
	Date  time.Time `gorm:"uniqueIndex:idx_festival_date_name,priority:1;not null" json:"date"`
	Name  string    `gorm:"uniqueIndex:idx_festival_date_name,priority:2;not null" json:"name"`
	Type  string    `gorm:"default:'festival'" json:"type"`
	Emoji string    `json:"emoji"`

	gorm.Model
}
