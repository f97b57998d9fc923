package schedule

import (
	"sort"
	"time"
)

// DefaultSlotStep is the grid step in minutes between candidate start times.
// It is deliberately independent of the service duration: the client may pick
// any grid point, and actual occupancy is duration-based.
const DefaultSlotStep = 30

// GenerateSlots enumerates the bookable start times on date for a service of
// the given duration. Every active window for the date's weekday is walked on
// a stepMinutes grid while the full span still fits inside the window, then
// candidates colliding with an occupying booked interval are discarded. The
// union across windows comes back in ascending order without duplicates.
//
// The caller is expected to have checked IsDateOpen first; with no matching
// windows the result is simply empty.
func GenerateSlots(date time.Time, durationMinutes int, windows []Window, booked []BookedInterval, stepMinutes int) []TimeOfDay {
	if durationMinutes <= 0 {
		return nil
	}
	if stepMinutes <= 0 {
		stepMinutes = DefaultSlotStep
	}
	day := DayIndex(date)

	occupied := make([]BookedInterval, 0, len(booked))
	for _, b := range booked {
		if b.Status.Occupies() && SameDate(b.Date, date) {
			occupied = append(occupied, b)
		}
	}

	seen := make(map[TimeOfDay]struct{})
	var slots []TimeOfDay
	for _, w := range windows {
		if !w.Active || w.DayOfWeek != day {
			continue
		}
		for cand := w.Start; cand.Add(durationMinutes) <= w.End && int(cand)+durationMinutes <= minutesPerDay; cand = cand.Add(stepMinutes) {
			if _, dup := seen[cand]; dup {
				continue
			}
			start := cand.On(date)
			end := start.Add(time.Duration(durationMinutes) * time.Minute)
			free := true
			for _, b := range occupied {
				if Overlaps(start, end, b.StartAt(), b.EndAt()) {
					free = false
					break
				}
			}
			if free {
				seen[cand] = struct{}{}
				slots = append(slots, cand)
			}
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots
}
