// services/dispatch.go
package services

import (
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	"shopconnect-backend/models"
	"shopconnect-backend/utils"
)

// Deliverer is the one-shot external delivery capability. It performs no
// retries of its own; all pacing policy lives in the Dispatcher.
type Deliverer interface {
	Deliver(recipient, message string) error
}

// DispatchItem is one (recipient, message) pair of a batch.
type DispatchItem struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ItemOutcome is the per-item result captured during a batch.
type ItemOutcome struct {
	Phone  string `json:"phone"`
	Status string `json:"status"` // sent, failed
	Error  string `json:"error,omitempty"`
}

// DispatchResult summarizes one batch.
type DispatchResult struct {
	Total   int           `json:"total"`
	Sent    int           `json:"sent"`
	Failed  int           `json:"failed"`
	Details []ItemOutcome `json:"details"`
}

// Dispatcher drives batches through the delivery capability one item at a
// time, in order, with a pause between sends. The external channel rejects
// concurrent sends from one sender identity, so all dispatch is serialized
// behind a single mutex.
type Dispatcher struct {
	db        *gorm.DB
	deliverer Deliverer
	delay     time.Duration
	sleep     func(time.Duration)
	now       func() time.Time

	mu sync.Mutex
}

func NewDispatcher(db *gorm.DB, deliverer Deliverer, delay time.Duration) *Dispatcher {
	return &Dispatcher{
		db:        db,
		deliverer: deliverer,
		delay:     delay,
		sleep:     time.Sleep,
		now:       time.Now,
	}
}

// SendBatch attempts every item exactly once, in order. A failure on one item
// is logged and counted but never blocks the items after it. The delay is a
// throttle against the channel's spam detection, so it is skipped after the
// last (or only) item; an empty batch returns a zero result without touching
// the channel.
func (d *Dispatcher) SendBatch(items []DispatchItem, kind string) DispatchResult {
	d.mu.Lock()
	defer d.mu.Unlock()

	result := DispatchResult{
		Total:   len(items),
		Details: make([]ItemOutcome, 0, len(items)),
	}

	for i, item := range items {
		log.Printf("Sending %d/%d to %s", i+1, len(items), item.Phone)

		outcome := ItemOutcome{Phone: item.Phone, Status: "sent"}
		err := d.deliverer.Deliver(item.Phone, item.Message)
		if err != nil {
			outcome.Status = "failed"
			outcome.Error = err.Error()
			result.Failed++
			log.Printf("Failed to send to %s: %v", item.Phone, err)
		} else {
			result.Sent++
		}

		d.logAttempt(item, outcome, kind)
		result.Details = append(result.Details, outcome)

		if i < len(items)-1 && d.delay > 0 {
			d.sleep(d.delay)
		}
	}

	return result
}

// SendOne is the single-recipient path: a one-element batch, no delay.
func (d *Dispatcher) SendOne(phone, message string) ItemOutcome {
	result := d.SendBatch([]DispatchItem{{Phone: phone, Message: message}}, "single")
	return result.Details[0]
}

func (d *Dispatcher) logAttempt(item DispatchItem, outcome ItemOutcome, kind string) {
	entry := models.MessageLog{
		Phone:        item.Phone,
		Preview:      preview(item.Message),
		Status:       outcome.Status,
		ErrorMessage: outcome.Error,
		Kind:         kind,
		SentAt:       d.now(),
	}
	if err := d.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to log message for %s: %v", item.Phone, err)
	}
}

func preview(message string) string {
	runes := []rune(message)
	if len(runes) <= 100 {
		return message
	}
	return string(runes[:100]) + "..."
}

// MessageStats aggregates over the whole message history.
type MessageStats struct {
	TotalMessages int `json:"totalMessages"`
	Sent          int `json:"sent"`
	Failed        int `json:"failed"`
	Today         int `json:"today"`
}

// Stats scans the log; "today" counts entries whose timestamp falls on the
// current date.
func (d *Dispatcher) Stats() (MessageStats, error) {
	var stats MessageStats

	var total, sent, failed, today int64
	if err := d.db.Model(&models.MessageLog{}).Count(&total).Error; err != nil {
		return stats, err
	}
	if err := d.db.Model(&models.MessageLog{}).Where("status = ?", "sent").Count(&sent).Error; err != nil {
		return stats, err
	}
	if err := d.db.Model(&models.MessageLog{}).Where("status = ?", "failed").Count(&failed).Error; err != nil {
		return stats, err
	}

	day := utils.BeginningOfDay(d.now())
	if err := d.db.Model(&models.MessageLog{}).
		Where("sent_at >= ? AND sent_at < ?", day, day.AddDate(0, 0, 1)).
		Count(&today).Error; err != nil {
		return stats, err
	}

	stats.TotalMessages = int(total)
	stats.Sent = int(sent)
	stats.Failed = int(failed)
	stats.Today = int(today)
	return stats, nil
}

// History returns the most recent log entries, newest first.
func (d *Dispatcher) History(limit int) ([]models.MessageLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []models.MessageLog
	err := d.db.Order("id DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
