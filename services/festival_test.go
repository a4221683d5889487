package services

import (
	"errors"
	"testing"
	"time"
)

func newTestCalendar(t *testing.T, now time.Time) *FestivalCalendar {
	t.Helper()
	calendar := NewFestivalCalendar(newTestDB(t))
	calendar.now = func() time.Time { return now }
	return calendar
}

func TestTodayMatchesExactDate(t *testing.T) {
	calendar := newTestCalendar(t, time.Date(2026, time.October, 31, 9, 30, 0, 0, time.UTC))

	for _, f := range []struct{ date, name string }{
		{"2026-10-30", "Eve Sale"},
		{"2026-10-31", "Diwali"},
		{"2026-11-01", "Day After"},
	} {
		if _, err := calendar.Add(f.date, f.name, "", ""); err != nil {
			t.Fatal(err)
		}
	}

	events, err := calendar.Today()
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0].Name != "Diwali" {
		t.Errorf("today = %+v, want only Diwali", events)
	}
}

func TestUpcomingInclusiveBoundary(t *testing.T) {
	calendar := newTestCalendar(t, time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC))

	for _, f := range []struct{ date, name string }{
		{"2026-03-01", "Today Event"},
		{"2026-03-08", "Boundary Event"},
		{"2026-03-09", "Past Boundary"},
	} {
		if _, err := calendar.Add(f.date, f.name, "", ""); err != nil {
			t.Fatal(err)
		}
	}

	upcoming, err := calendar.Upcoming(7)
	if err != nil {
		t.Fatal(err)
	}
	if len(upcoming) != 2 {
		t.Fatalf("upcoming = %+v, want today and the boundary day only", upcoming)
	}
	if upcoming[0].Name != "Today Event" || upcoming[0].DaysUntil != 0 {
		t.Errorf("first = %s in %d days", upcoming[0].Name, upcoming[0].DaysUntil)
	}
	if upcoming[1].Name != "Boundary Event" || upcoming[1].DaysUntil != 7 {
		t.Errorf("second = %s in %d days", upcoming[1].Name, upcoming[1].DaysUntil)
	}
}

func TestUpcomingSortedByDate(t *testing.T) {
	calendar := newTestCalendar(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))

	// Inserted out of order on purpose
	for _, f := range []struct{ date, name string }{
		{"2026-03-20", "Later"},
		{"2026-03-05", "Sooner"},
		{"2026-03-12", "Middle"},
	} {
		if _, err := calendar.Add(f.date, f.name, "", ""); err != nil {
			t.Fatal(err)
		}
	}

	upcoming, err := calendar.Upcoming(30)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, u := range upcoming {
		names = append(names, u.Name)
	}
	want := []string{"Sooner", "Middle", "Later"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v, want %v", names, want)
		}
	}
}

func TestAddRejectsMalformedDate(t *testing.T) {
	calendar := newTestCalendar(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))

	for _, bad := range []string{"31-10-2026", "2026/10/31", "soon", ""} {
		if _, err := calendar.Add(bad, "Diwali", "", ""); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("Add(%q) error = %v, want ErrInvalidDate", bad, err)
		}
	}
}

func TestAddDefaultsTypeAndEmoji(t *testing.T) {
	calendar := newTestCalendar(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))

	event, err := calendar.Add("2026-05-01", "Shop Anniversary", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if event.Type != "festival" || event.Emoji != "🎉" {
		t.Errorf("defaults = %q / %q", event.Type, event.Emoji)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	calendar := newTestCalendar(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))

	if err := calendar.Seed(); err != nil {
		t.Fatal(err)
	}
	first, err := calendar.Upcoming(365)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) == 0 {
		t.Fatal("seed installed no events")
	}

	if err := calendar.Seed(); err != nil {
		t.Fatal(err)
	}
	second, err := calendar.Upcoming(365)
	if err != nil {
		t.Fatal(err)
	}
	if len(second) != len(first) {
		t.Errorf("second seed changed event count: %d -> %d", len(first), len(second))
	}
}
