package schedule

import "time"

// IsDateOpen reports whether the business takes appointments on the given
// date. A blocked date always wins over any configured window; otherwise the
// date is open when at least one active window exists for its weekday.
//
// Rejecting past dates is the caller's job: "today" depends on the caller's
// clock and timezone, and this package stays deterministic over its inputs.
func IsDateOpen(date time.Time, blocked []time.Time, windows []Window) bool {
	for _, b := range blocked {
		if SameDate(b, date) {
			return false
		}
	}
	day := DayIndex(date)
	for _, w := range windows {
		if w.Active && w.DayOfWeek == day {
			return true
		}
	}
	return false
}
