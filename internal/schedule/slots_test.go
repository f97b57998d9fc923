package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func slotStrings(slots []TimeOfDay) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func assertSlots(t *testing.T, got []TimeOfDay, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d slots %v, want %d %v", len(got), slotStrings(got), len(want), want)
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Fatalf("slot %d = %s, want %s (all: %v)", i, got[i], want[i], slotStrings(got))
		}
	}
}

func TestGenerateSlots_DurationLimitsGrid(t *testing.T) {
	// Window 09:00-10:00, 45-minute service, 30-minute grid: 09:30+45 would
	// run past the window, so 09:00 is the only legal start.
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	windows := []Window{{DayOfWeek: 1, Start: mustTime(t, "09:00"), End: mustTime(t, "10:00"), Active: true}}

	slots := GenerateSlots(monday, 45, windows, nil, DefaultSlotStep)
	assertSlots(t, slots, "09:00")
}

func TestGenerateSlots_ExactFitYieldsLatestStart(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	windows := []Window{{DayOfWeek: 1, Start: mustTime(t, "09:00"), End: mustTime(t, "10:00"), Active: true}}

	slots := GenerateSlots(monday, 60, windows, nil, DefaultSlotStep)
	assertSlots(t, slots, "09:00")
}

func TestGenerateSlots_WindowShorterThanDuration(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	windows := []Window{{DayOfWeek: 1, Start: mustTime(t, "09:00"), End: mustTime(t, "09:30"), Active: true}}

	if slots := GenerateSlots(monday, 45, windows, nil, DefaultSlotStep); len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slotStrings(slots))
	}
}

func TestGenerateSlots_FullyBookedWindow(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	windows := []Window{{DayOfWeek: 1, Start: mustTime(t, "09:00"), End: mustTime(t, "10:00"), Active: true}}
	booked := []BookedInterval{{
		AppointmentID:   uuid.New(),
		Date:            monday,
		Start:           mustTime(t, "09:00"),
		DurationMinutes: 60,
		Status:          StatusConfirmed,
	}}

	if slots := GenerateSlots(monday, 30, windows, booked, DefaultSlotStep); len(slots) != 0 {
		t.Fatalf("expected no slots in a fully booked window, got %v", slotStrings(slots))
	}
}

func TestGenerateSlots_EarlyBookingExcludesOverlaps(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	windows := []Window{{DayOfWeek: 1, Start: mustTime(t, "09:00"), End: mustTime(t, "12:00"), Active: true}}
	booked := []BookedInterval{{
		AppointmentID:   uuid.New(),
		Date:            monday,
		Start:           mustTime(t, "09:00"),
		DurationMinutes: 30,
		Status:          StatusPending,
	}}

	slots := GenerateSlots(monday, 30, windows, booked, DefaultSlotStep)
	assertSlots(t, slots, "09:30", "10:00", "10:30", "11:00", "11:30")
}

func TestGenerateSlots_CancelledBookingDoesNotBlock(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	windows := []Window{{DayOfWeek: 1, Start: mustTime(t, "09:00"), End: mustTime(t, "10:00"), Active: true}}
	booked := []BookedInterval{{
		AppointmentID:   uuid.New(),
		Date:            monday,
		Start:           mustTime(t, "09:00"),
		DurationMinutes: 60,
		Status:          StatusCancelled,
	}}

	slots := GenerateSlots(monday, 30, windows, booked, DefaultSlotStep)
	assertSlots(t, slots, "09:00", "09:30")
}

func TestGenerateSlots_MultipleWindowsUnionSortedDeduped(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	windows := []Window{
		{DayOfWeek: 1, Start: mustTime(t, "09:30"), End: mustTime(t, "11:00"), Active: true},
		{DayOfWeek: 1, Start: mustTime(t, "09:00"), End: mustTime(t, "10:00"), Active: true},
	}

	slots := GenerateSlots(monday, 30, windows, nil, DefaultSlotStep)
	assertSlots(t, slots, "09:00", "09:30", "10:00", "10:30")
}

func TestGenerateSlots_IgnoresOtherDaysAndInactive(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	windows := []Window{
		{DayOfWeek: 2, Start: mustTime(t, "09:00"), End: mustTime(t, "12:00"), Active: true},
		{DayOfWeek: 1, Start: mustTime(t, "09:00"), End: mustTime(t, "12:00"), Active: false},
	}

	if slots := GenerateSlots(monday, 30, windows, nil, DefaultSlotStep); len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slotStrings(slots))
	}
}

func TestGenerateSlots_StepIndependentOfDuration(t *testing.T) {
	// A 90-minute service still walks the 30-minute grid, so consecutive
	// candidate spans may overlap each other; both remain offered.
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	windows := []Window{{DayOfWeek: 1, Start: mustTime(t, "09:00"), End: mustTime(t, "11:00"), Active: true}}

	slots := GenerateSlots(monday, 90, windows, nil, DefaultSlotStep)
	assertSlots(t, slots, "09:00", "09:30")
}
