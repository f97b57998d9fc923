// Package schedule implements the salon's booking calendar logic: business
// hours, blocked dates, bookable slot generation and conflict detection.
//
// Everything in this package is pure computation over snapshot values fetched
// by the caller. The package never touches the database or the clock, so the
// same inputs always produce the same answer.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS". Seconds are accepted for
// compatibility with stored values but dropped, since the calendar works in
// whole minutes.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid time %q: bad hour", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: bad minute", s)
	}
	if len(parts) == 3 {
		sec, err := strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec > 59 {
			return 0, fmt.Errorf("invalid time %q: bad second", s)
		}
	}
	return TimeOfDay(h*60 + m), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// On combines the wall-clock time with a calendar date into an absolute
// instant in the date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), int(t)/60, int(t)%60, 0, 0, date.Location())
}

// Add returns the time shifted by the given number of minutes.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// Valid reports whether the value lies within a single day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < minutesPerDay
}

// Status is an appointment's lifecycle state. Only pending and confirmed
// appointments occupy calendar space; cancelled and completed ones never
// block a new booking.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Occupies reports whether an appointment in this state reserves its span.
func (s Status) Occupies() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Window is a configured open-for-business interval on one weekday.
// Several active windows may exist for the same day; the engine never
// assumes exactly one.
type Window struct {
	DayOfWeek int // 0=Sunday .. 6=Saturday
	Start     TimeOfDay
	End       TimeOfDay
	Active    bool
}

// BookedInterval is the calendar footprint of an existing appointment:
// the span [Start, Start+DurationMinutes) on Date.
type BookedInterval struct {
	AppointmentID   uuid.UUID
	Date            time.Time
	Start           TimeOfDay
	DurationMinutes int
	Status          Status
}

// StartAt returns the absolute start instant of the occupied span.
func (b BookedInterval) StartAt() time.Time {
	return b.Start.On(b.Date)
}

// EndAt returns the absolute end instant of the occupied span (exclusive).
func (b BookedInterval) EndAt() time.Time {
	return b.StartAt().Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// SameDate reports whether two instants fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
