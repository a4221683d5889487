// services/festival.go
package services

import (
	"time"

	"gorm.io/gorm"

	"shopconnect-backend/models"
	"shopconnect-backend/utils"
)

// FestivalCalendar is a date-indexed view over the festival table: the seeded
// default events plus any custom ones added by staff.
type FestivalCalendar struct {
	db  *gorm.DB
	now func() time.Time
}

func NewFestivalCalendar(db *gorm.DB) *FestivalCalendar {
	return &FestivalCalendar{db: db, now: time.Now}
}

// Today returns the events whose date matches the current day exactly.
func (f *FestivalCalendar) Today() ([]models.FestivalEvent, error) {
	day := utils.BeginningOfDay(f.now())
	var events []models.FestivalEvent
	err := f.db.Where("date >= ? AND date < ?", day, day.AddDate(0, 0, 1)).
		Order("date ASC, name ASC").Find(&events).Error
	return events, err
}

// UpcomingFestival annotates an event with the number of days until it.
type UpcomingFestival struct {
	models.FestivalEvent
	DaysUntil int `json:"daysUntil"`
}

// Upcoming returns the events within the next `days` days, inclusive of today
// and of the boundary day, sorted ascending by date.
func (f *FestivalCalendar) Upcoming(days int) ([]UpcomingFestival, error) {
	start := utils.BeginningOfDay(f.now())
	end := start.AddDate(0, 0, days+1)

	var events []models.FestivalEvent
	if err := f.db.Where("date >= ? AND date < ?", start, end).
		Order("date ASC, name ASC").Find(&events).Error; err != nil {
		return nil, err
	}

	upcoming := make([]UpcomingFestival, 0, len(events))
	for _, e := range events {
		upcoming = append(upcoming, UpcomingFestival{
			FestivalEvent: e,
			DaysUntil:     utils.DaysBetween(start, e.Date),
		})
	}
	return upcoming, nil
}

// Add inserts a custom event. The date must be in YYYY-MM-DD form.
func (f *FestivalCalendar) Add(dateStr, name, eventType, emoji string) (*models.FestivalEvent, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if eventType == "" {
		eventType = "festival"
	}
	if emoji == "" {
		emoji = "🎉"
	}

	event := models.FestivalEvent{
		Date:  date,
		Name:  name,
		Type:  eventType,
		Emoji: emoji,
	}
	if err := f.db.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// Seed installs the default calendar on an empty table.
func (f *FestivalCalendar) Seed() error {
	var count int64
	if err := f.db.Model(&models.FestivalEvent{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []struct {
		date, name, eventType, emoji string
	}{
		{"2026-01-14", "Makar Sankranti", "festival", "🪁"},
		{"2026-01-26", "Republic Day", "national", "🇮🇳"},
		{"2026-03-10", "Maha Shivratri", "festival", "🙏"},
		{"2026-03-17", "Holi", "festival", "🎨"},
		{"2026-04-02", "Ram Navami", "festival", "🙏"},
		{"2026-04-14", "Baisakhi", "festival", "🌾"},
		{"2026-05-10", "Mother's Day", "special_day", "❤️"},
		{"2026-06-21", "Father's Day", "special_day", "👨‍👧"},
		{"2026-08-04", "Raksha Bandhan", "festival", "🎀"},
		{"2026-08-11", "Janmashtami", "festival", "🦚"},
		{"2026-08-15", "Independence Day", "national", "🇮🇳"},
		{"2026-08-27", "Ganesh Chaturthi", "festival", "🐘"},
		{"2026-10-02", "Gandhi Jayanti", "national", "🕊️"},
		{"2026-10-02", "Navratri Begins", "festival", "🪔"},
		{"2026-10-11", "Dussehra", "festival", "🏹"},
		{"2026-10-29", "Dhanteras", "festival", "💰"},
		{"2026-10-31", "Diwali", "festival", "🪔"},
		{"2026-11-02", "Bhai Dooj", "festival", "👫"},
		{"2026-11-24", "Guru Nanak Jayanti", "festival", "🙏"},
		{"2026-12-25", "Christmas", "festival", "🎄"},
		{"2026-12-31", "New Year's Eve", "special_day", "🎉"},
		{"2026-01-15", "Winter Sale Season", "sale", "❄️"},
		{"2026-04-01", "Summer Season Sale", "sale", "☀️"},
		{"2026-06-15", "Monsoon Season Sale", "sale", "🌧️"},
		{"2026-10-25", "Diwali Mega Sale", "sale", "🛒"},
	}

	events := make([]models.FestivalEvent, 0, len(defaults))
	for _, d := range defaults {
		date, err := time.Parse("2006-01-02", d.date)
		if err != nil {
			return err
		}
		events = append(events, models.FestivalEvent{
			Date:  date,
			Name:  d.name,
			Type:  d.eventType,
			Emoji: d.emoji,
		})
	}
	return f.db.Create(&events).Error
}
