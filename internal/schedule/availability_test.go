package schedule

import (
	"testing"
	"time"
)

func mustTime(t *testing.T, s string) TimeOfDay {
	t.Helper()
	tod, err := ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q): %v", s, err)
	}
	return tod
}

func TestIsDateOpen(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	windows := []Window{
		{DayOfWeek: 1, Start: mustTime(t, "09:00"), End: mustTime(t, "18:00"), Active: true},
	}

	if !IsDateOpen(monday, nil, windows) {
		t.Fatal("expected Monday with an active window to be open")
	}
	tuesday := monday.AddDate(0, 0, 1)
	if IsDateOpen(tuesday, nil, windows) {
		t.Fatal("expected Tuesday without a window to be closed")
	}
}

func TestIsDateOpen_BlockedDateWins(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	windows := []Window{
		{DayOfWeek: 1, Start: mustTime(t, "09:00"), End: mustTime(t, "18:00"), Active: true},
	}
	blocked := []time.Time{monday}

	if IsDateOpen(monday, blocked, windows) {
		t.Fatal("blocked date must be closed even with an active window")
	}
}

func TestIsDateOpen_InactiveWindowDoesNotCount(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	windows := []Window{
		{DayOfWeek: 1, Start: mustTime(t, "09:00"), End: mustTime(t, "18:00"), Active: false},
	}
	if IsDateOpen(monday, nil, windows) {
		t.Fatal("inactive window must not open the date")
	}
}

func TestIsDateOpen_Deterministic(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	windows := []Window{
		{DayOfWeek: 1, Start: mustTime(t, "10:00"), End: mustTime(t, "14:00"), Active: true},
	}
	first := IsDateOpen(monday, nil, windows)
	for i := 0; i < 5; i++ {
		if IsDateOpen(monday, nil, windows) != first {
			t.Fatal("IsDateOpen changed its answer for identical inputs")
		}
	}
}
