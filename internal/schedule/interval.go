package schedule

import "time"

// Overlaps reports whether the half-open intervals [startA, endA) and
// [startB, endB) intersect. Touching boundaries (endA == startB) do not
// overlap, so back-to-back appointments are legal.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && startB.Before(endA)
}
