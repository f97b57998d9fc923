package schedule

import "time"

// DayIndex maps a calendar date to the storage weekday convention,
// 0=Sunday .. 6=Saturday. Go's time.Weekday already counts from Sunday,
// so the conversion is the identity, but every call site goes through
// this one function in case the storage convention ever changes.
func DayIndex(date time.Time) int {
	return int(date.Weekday())
}
