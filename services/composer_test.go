package services

import (
	"strings"
	"testing"
	"time"

	"shopconnect-backend/models"
)

func testCohort() []models.Customer {
	return []models.Customer{
		{Name: "Ramesh", Phone: "+919876543210"},
		{Name: "Suresh", Phone: "+919876543211"},
		{Name: "Mahesh", Phone: "+919876543212"},
	}
}

func TestFestivalPreservesCohortOrder(t *testing.T) {
	composer := NewComposer("Sharma Electricals")

	items := composer.Festival(testCohort(), "Diwali")

	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	wantPhones := []string{"+919876543210", "+919876543211", "+919876543212"}
	for i, item := range items {
		if item.Phone != wantPhones[i] {
			t.Errorf("item %d phone = %s, want %s", i, item.Phone, wantPhones[i])
		}
	}
	if !strings.Contains(items[0].Message, "Diwali") {
		t.Errorf("festival name missing from message: %q", items[0].Message)
	}
	if !strings.Contains(items[0].Message, "Ramesh") || !strings.Contains(items[1].Message, "Suresh") {
		t.Errorf("messages not personalized per customer")
	}
	if !strings.Contains(items[0].Message, "Sharma Electricals") {
		t.Errorf("shop name missing from message: %q", items[0].Message)
	}
}

func TestBirthdayAndAnniversaryPersonalize(t *testing.T) {
	composer := NewComposer("Sharma Electricals")
	cohort := testCohort()[:1]

	birthday := composer.Birthday(cohort)
	if len(birthday) != 1 || !strings.Contains(birthday[0].Message, "Happy Birthday, Ramesh") {
		t.Errorf("birthday message = %q", birthday[0].Message)
	}

	anniversary := composer.Anniversary(cohort)
	if len(anniversary) != 1 || !strings.Contains(anniversary[0].Message, "Happy Anniversary, Ramesh") {
		t.Errorf("anniversary message = %q", anniversary[0].Message)
	}
}

func TestOfferEmbedsText(t *testing.T) {
	composer := NewComposer("Sharma Electricals")

	items := composer.Offer(testCohort(), "Flat 20% off on all fans this week!")

	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	if !strings.Contains(items[0].Message, "Flat 20% off on all fans this week!") {
		t.Errorf("offer text missing from message: %q", items[0].Message)
	}
}

func TestNewArrivalsFormatsProductLines(t *testing.T) {
	composer := NewComposer("Sharma Electricals")
	products := []models.Product{
		{Name: "Ceiling Fan", Brand: "Crompton", Price: 1500, MRP: 2000},
		{Name: "LED Bulb", Brand: "Philips", Price: 99, MRP: 99},
	}

	items := composer.NewArrivals(testCohort()[:1], products)

	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	msg := items[0].Message
	if !strings.Contains(msg, "Ceiling Fan") || !strings.Contains(msg, "Crompton") {
		t.Errorf("product details missing: %q", msg)
	}
	if !strings.Contains(msg, "Save 25%") {
		t.Errorf("discount against MRP missing: %q", msg)
	}
	if strings.Contains(msg, "Save 0%") {
		t.Errorf("no-discount product should not advertise savings: %q", msg)
	}
}

func TestPurchaseThankYouIncludesBillDetails(t *testing.T) {
	composer := NewComposer("Sharma Electricals")
	customer := models.Customer{Name: "Ramesh", Phone: "+919876543210"}
	bill := models.Bill{
		BillID:        "BILL-00042",
		CustomerPhone: "+919876543210",
		Amount:        1250,
		Items:         "Wire roll, Switchboard",
		BilledAt:      time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
	}

	item := composer.PurchaseThankYou(customer, bill)

	if item.Phone != "+919876543210" {
		t.Errorf("phone = %s", item.Phone)
	}
	for _, want := range []string{"BILL-00042", "₹1250", "Wire roll, Switchboard", "15 March 2026"} {
		if !strings.Contains(item.Message, want) {
			t.Errorf("thank-you message missing %q: %q", want, item.Message)
		}
	}
}

func TestBillReminderTargetsBillPhone(t *testing.T) {
	composer := NewComposer("Sharma Electricals")
	bill := models.Bill{
		BillID:        "BILL-00007",
		CustomerPhone: "+919876543211",
		Amount:        500,
	}

	item := composer.BillReminder("Suresh", bill)

	if item.Phone != "+919876543211" {
		t.Errorf("phone = %s, want the bill's phone", item.Phone)
	}
	if !strings.Contains(item.Message, "BILL-00007") || !strings.Contains(item.Message, "₹500") {
		t.Errorf("reminder message = %q", item.Message)
	}
}

func TestComposerEmptyCohort(t *testing.T) {
	composer := NewComposer("Sharma Electricals")

	if items := composer.Festival(nil, "Holi"); len(items) != 0 {
		t.Errorf("festival on empty cohort produced %d items", len(items))
	}
	if items := composer.Birthday(nil); len(items) != 0 {
		t.Errorf("birthday on empty cohort produced %d items", len(items))
	}
}
