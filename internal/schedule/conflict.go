package schedule

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// ConflictResult is the verdict of a conflict check. When Conflict is true,
// With holds the start time of the first colliding appointment so callers can
// build a readable rejection message.
type ConflictResult struct {
	Conflict bool
	With     TimeOfDay
}

// CheckConflict validates a proposed span [start, start+durationMinutes) on
// date against the existing booked intervals. Only intervals on the same date
// with an occupying status count; excludeID (uuid.Nil for none) skips the
// appointment being rescheduled so it does not conflict with its own prior
// slot. Candidates are scanned in ascending start order so the reported
// collision is deterministic.
//
// The check has no side effects and reserves nothing. To keep two concurrent
// requests from both passing, the caller must run it and the subsequent
// insert inside one transaction holding a per-date lock.
func CheckConflict(date time.Time, start TimeOfDay, durationMinutes int, existing []BookedInterval, excludeID uuid.UUID) ConflictResult {
	newStart := start.On(date)
	newEnd := newStart.Add(time.Duration(durationMinutes) * time.Minute)

	candidates := make([]BookedInterval, 0, len(existing))
	for _, b := range existing {
		if !b.Status.Occupies() || !SameDate(b.Date, date) {
			continue
		}
		if excludeID != uuid.Nil && b.AppointmentID == excludeID {
			continue
		}
		candidates = append(candidates, b)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Start < candidates[j].Start })

	for _, b := range candidates {
		if Overlaps(newStart, newEnd, b.StartAt(), b.EndAt()) {
			return ConflictResult{Conflict: true, With: b.Start}
		}
	}
	return ConflictResult{}
}
