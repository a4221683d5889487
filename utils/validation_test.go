package utils

import (
	"testing"
	"time"
)

func TestNormalizePhoneAcceptedForms(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"9876543210", "+919876543210"},
		{"09876543210", "+919876543210"},
		{"919876543210", "+919876543210"},
		{"+919876543210", "+919876543210"},
		{"98765 43210", "+919876543210"},
		{"+91 98765-43210", "+919876543210"},
		{"(91) 9876543210", "+919876543210"},
	}
	for _, tc := range cases {
		got, ok := NormalizePhone(tc.raw)
		if !ok {
			t.Errorf("NormalizePhone(%q) rejected, want %s", tc.raw, tc.want)
			continue
		}
		if got != tc.want {
			t.Errorf("NormalizePhone(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizePhoneIsIdempotent(t *testing.T) {
	first, ok := NormalizePhone("09876543210")
	if !ok {
		t.Fatal("rejected valid number")
	}
	second, ok := NormalizePhone(first)
	if !ok || second != first {
		t.Errorf("NormalizePhone(%q) = %q, %v; normalizing a canonical value must be a no-op", first, second, ok)
	}
}

func TestNormalizePhoneRejectsInvalid(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"123",
		"abcdefghij",
		"12345678901234567",
		"1234567890", // not a plausible mobile prefix
	}
	for _, raw := range cases {
		if got, ok := NormalizePhone(raw); ok {
			t.Errorf("NormalizePhone(%q) = %s, want rejection", raw, got)
		}
	}
}

func TestValidateAmount(t *testing.T) {
	if !ValidateAmount(0) || !ValidateAmount(499.99) {
		t.Error("non-negative amounts must be accepted")
	}
	if ValidateAmount(-1) {
		t.Error("negative amounts must be rejected")
	}
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2026, time.March, 8, 23, 59, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 15, 0, 1, 0, 0, time.UTC)
	if got := DaysBetween(start, end); got != 7 {
		t.Errorf("DaysBetween = %d, want 7", got)
	}
	if got := DaysBetween(end, end); got != 0 {
		t.Errorf("DaysBetween same day = %d, want 0", got)
	}
}

func TestSameMonthDayIgnoresYear(t *testing.T) {
	birthday := time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, time.June, 15, 10, 30, 0, 0, time.UTC)
	if !SameMonthDay(birthday, today) {
		t.Error("same month and day must match across years")
	}
	if SameMonthDay(birthday, today.AddDate(0, 0, 1)) {
		t.Error("different day must not match")
	}
}
