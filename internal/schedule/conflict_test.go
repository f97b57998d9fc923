package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCheckConflict_DetectsOverlap(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	existing := []BookedInterval{{
		AppointmentID:   uuid.New(),
		Date:            monday,
		Start:           mustTime(t, "10:00"),
		DurationMinutes: 60,
		Status:          StatusConfirmed,
	}}

	res := CheckConflict(monday, mustTime(t, "10:30"), 30, existing, uuid.Nil)
	if !res.Conflict {
		t.Fatal("expected a conflict")
	}
	if res.With.String() != "10:00" {
		t.Fatalf("expected colliding start 10:00, got %s", res.With)
	}
}

func TestCheckConflict_AdjacencyAllowed(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	existing := []BookedInterval{{
		AppointmentID:   uuid.New(),
		Date:            monday,
		Start:           mustTime(t, "09:30"),
		DurationMinutes: 30,
		Status:          StatusConfirmed,
	}}

	// Starts exactly when the existing one ends.
	if res := CheckConflict(monday, mustTime(t, "10:00"), 30, existing, uuid.Nil); res.Conflict {
		t.Fatalf("back-to-back booking flagged as conflict with %s", res.With)
	}
	// Ends exactly when the existing one starts.
	if res := CheckConflict(monday, mustTime(t, "09:00"), 30, existing, uuid.Nil); res.Conflict {
		t.Fatalf("booking ending at existing start flagged as conflict with %s", res.With)
	}
}

func TestCheckConflict_RescheduleSelfExclusion(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	id := uuid.New()
	existing := []BookedInterval{{
		AppointmentID:   id,
		Date:            monday,
		Start:           mustTime(t, "14:00"),
		DurationMinutes: 30,
		Status:          StatusConfirmed,
	}}

	// Moving the appointment onto its own slot must not conflict.
	if res := CheckConflict(monday, mustTime(t, "14:00"), 30, existing, id); res.Conflict {
		t.Fatal("reschedule conflicted with the appointment's own prior slot")
	}
	// Without the exclusion it must conflict against itself.
	res := CheckConflict(monday, mustTime(t, "14:00"), 30, existing, uuid.Nil)
	if !res.Conflict || res.With.String() != "14:00" {
		t.Fatalf("expected self-conflict at 14:00, got %+v", res)
	}
}

func TestCheckConflict_ReportsEarliestCollision(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	existing := []BookedInterval{
		{AppointmentID: uuid.New(), Date: monday, Start: mustTime(t, "11:00"), DurationMinutes: 60, Status: StatusPending},
		{AppointmentID: uuid.New(), Date: monday, Start: mustTime(t, "10:00"), DurationMinutes: 60, Status: StatusConfirmed},
	}

	// 10:30-12:00 collides with both; the earlier start must be reported
	// regardless of input order.
	res := CheckConflict(monday, mustTime(t, "10:30"), 90, existing, uuid.Nil)
	if !res.Conflict || res.With.String() != "10:00" {
		t.Fatalf("expected earliest collision 10:00, got %+v", res)
	}
}

func TestCheckConflict_IgnoresNonOccupyingAndOtherDates(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	existing := []BookedInterval{
		{AppointmentID: uuid.New(), Date: monday, Start: mustTime(t, "10:00"), DurationMinutes: 60, Status: StatusCancelled},
		{AppointmentID: uuid.New(), Date: monday, Start: mustTime(t, "10:00"), DurationMinutes: 60, Status: StatusCompleted},
		{AppointmentID: uuid.New(), Date: tuesday, Start: mustTime(t, "10:00"), DurationMinutes: 60, Status: StatusConfirmed},
	}

	if res := CheckConflict(monday, mustTime(t, "10:00"), 60, existing, uuid.Nil); res.Conflict {
		t.Fatalf("unexpected conflict with %s", res.With)
	}
}
