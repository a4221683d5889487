package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"shopconnect-backend/models"
)

type fakeDeliverer struct {
	calls  []string
	failOn map[string]bool
}

func (f *fakeDeliverer) Deliver(recipient, message string) error {
	f.calls = append(f.calls, recipient)
	if f.failOn[recipient] {
		return errors.New("channel rejected message")
	}
	return nil
}

func newTestDispatcher(t *testing.T, deliverer Deliverer, delay time.Duration) (*Dispatcher, *gorm.DB, *[]time.Duration) {
	t.Helper()
	db := newTestDB(t)
	d := NewDispatcher(db, deliverer, delay)

	sleeps := &[]time.Duration{}
	d.sleep = func(pause time.Duration) { *sleeps = append(*sleeps, pause) }
	return d, db, sleeps
}

func TestSendBatchEmpty(t *testing.T) {
	deliverer := &fakeDeliverer{}
	d, db, sleeps := newTestDispatcher(t, deliverer, 10*time.Second)

	result := d.SendBatch(nil, "bulk")

	if result.Total != 0 || result.Sent != 0 || result.Failed != 0 {
		t.Errorf("result = %+v, want all zero", result)
	}
	if len(deliverer.calls) != 0 {
		t.Errorf("delivery called %d times on empty batch", len(deliverer.calls))
	}
	if len(*sleeps) != 0 {
		t.Errorf("slept %d times on empty batch", len(*sleeps))
	}

	var count int64
	db.Model(&models.MessageLog{}).Count(&count)
	if count != 0 {
		t.Errorf("wrote %d log rows on empty batch", count)
	}
}

func TestSendBatchAttemptsEveryItemInOrder(t *testing.T) {
	deliverer := &fakeDeliverer{failOn: map[string]bool{"+919876543211": true}}
	d, db, _ := newTestDispatcher(t, deliverer, 0)

	items := []DispatchItem{
		{Phone: "+919876543210", Message: "one"},
		{Phone: "+919876543211", Message: "two"},
		{Phone: "+919876543212", Message: "three"},
	}
	result := d.SendBatch(items, "bulk")

	if result.Total != 3 || result.Sent != 2 || result.Failed != 1 {
		t.Errorf("result = %+v, want total 3, sent 2, failed 1", result)
	}
	if len(deliverer.calls) != 3 {
		t.Fatalf("delivery called %d times, want 3 (failure must not abort the batch)", len(deliverer.calls))
	}
	for i, item := range items {
		if deliverer.calls[i] != item.Phone {
			t.Errorf("call %d went to %s, want %s", i, deliverer.calls[i], item.Phone)
		}
	}

	if result.Details[1].Status != "failed" || result.Details[1].Error == "" {
		t.Errorf("failed item outcome = %+v", result.Details[1])
	}
	if result.Details[0].Status != "sent" || result.Details[2].Status != "sent" {
		t.Errorf("sent item outcomes = %+v", result.Details)
	}

	var logs []models.MessageLog
	if err := db.Order("id ASC").Find(&logs).Error; err != nil {
		t.Fatal(err)
	}
	if len(logs) != 3 {
		t.Fatalf("log has %d rows, want 3", len(logs))
	}
	if logs[1].Status != "failed" || logs[1].ErrorMessage == "" {
		t.Errorf("failed log row = %+v", logs[1])
	}
	if logs[0].Kind != "bulk" {
		t.Errorf("log kind = %q, want bulk", logs[0].Kind)
	}
}

func TestSendBatchDelaysBetweenItemsOnly(t *testing.T) {
	deliverer := &fakeDeliverer{}
	d, _, sleeps := newTestDispatcher(t, deliverer, 10*time.Second)

	d.SendBatch([]DispatchItem{
		{Phone: "+919876543210", Message: "one"},
		{Phone: "+919876543211", Message: "two"},
		{Phone: "+919876543212", Message: "three"},
	}, "bulk")

	if len(*sleeps) != 2 {
		t.Fatalf("slept %d times, want 2 (no delay after the last item)", len(*sleeps))
	}
	for _, pause := range *sleeps {
		if pause != 10*time.Second {
			t.Errorf("pause = %v, want 10s", pause)
		}
	}
}

func TestSendBatchSingleItemNeverSleeps(t *testing.T) {
	deliverer := &fakeDeliverer{}
	d, _, sleeps := newTestDispatcher(t, deliverer, 10*time.Second)

	d.SendBatch([]DispatchItem{{Phone: "+919876543210", Message: "hello"}}, "bulk")

	if len(*sleeps) != 0 {
		t.Errorf("slept %d times for a single item, want 0", len(*sleeps))
	}
}

func TestSendBatchZeroDelayConfigurable(t *testing.T) {
	deliverer := &fakeDeliverer{}
	d, _, sleeps := newTestDispatcher(t, deliverer, 0)

	d.SendBatch([]DispatchItem{
		{Phone: "+919876543210", Message: "one"},
		{Phone: "+919876543211", Message: "two"},
	}, "bulk")

	if len(*sleeps) != 0 {
		t.Errorf("slept %d times with zero delay, want 0", len(*sleeps))
	}
}

func TestSendOneLogsAsSingle(t *testing.T) {
	deliverer := &fakeDeliverer{}
	d, db, _ := newTestDispatcher(t, deliverer, 10*time.Second)

	outcome := d.SendOne("+919876543210", "hello")
	if outcome.Status != "sent" {
		t.Errorf("outcome = %+v", outcome)
	}

	var entry models.MessageLog
	if err := db.First(&entry).Error; err != nil {
		t.Fatal(err)
	}
	if entry.Kind != "single" || entry.Phone != "+919876543210" {
		t.Errorf("log entry = %+v", entry)
	}
}

func TestLogPreviewTruncatesLongMessages(t *testing.T) {
	deliverer := &fakeDeliverer{}
	d, db, _ := newTestDispatcher(t, deliverer, 0)

	long := strings.Repeat("x", 150)
	d.SendOne("+919876543210", long)

	var entry models.MessageLog
	if err := db.First(&entry).Error; err != nil {
		t.Fatal(err)
	}
	if want := strings.Repeat("x", 100) + "..."; entry.Preview != want {
		t.Errorf("preview length = %d, want 103", len(entry.Preview))
	}
}

func TestStatsCountsTodayByDate(t *testing.T) {
	deliverer := &fakeDeliverer{failOn: map[string]bool{"+919876543211": true}}
	d, db, _ := newTestDispatcher(t, deliverer, 0)

	now := time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC)
	d.now = func() time.Time { return now }

	d.SendBatch([]DispatchItem{
		{Phone: "+919876543210", Message: "one"},
		{Phone: "+919876543211", Message: "two"},
	}, "bulk")

	// An entry from yesterday should not count towards today
	yesterday := models.MessageLog{
		Phone:  "+919876543212",
		Status: "sent",
		Kind:   "single",
		SentAt: now.AddDate(0, 0, -1),
	}
	if err := db.Create(&yesterday).Error; err != nil {
		t.Fatal(err)
	}

	stats, err := d.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalMessages != 3 || stats.Sent != 2 || stats.Failed != 1 {
		t.Errorf("stats = %+v, want total 3, sent 2, failed 1", stats)
	}
	if stats.Today != 2 {
		t.Errorf("today = %d, want 2", stats.Today)
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	deliverer := &fakeDeliverer{}
	d, _, _ := newTestDispatcher(t, deliverer, 0)

	d.SendOne("+919876543210", "first")
	d.SendOne("+919876543211", "second")

	entries, err := d.History(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 || entries[0].Preview != "second" {
		t.Errorf("history = %+v, want newest first", entries)
	}
}
