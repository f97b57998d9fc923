package schedule

import (
	"testing"
	"time"
)

func TestOverlaps(t *testing.T) {
	day := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	cases := []struct {
		name                           string
		startA, endA, startB, endB     time.Time
		want                           bool
	}{
		{"partial overlap", at(9, 0), at(10, 0), at(9, 30), at(10, 30), true},
		{"containment", at(9, 0), at(12, 0), at(10, 0), at(10, 30), true},
		{"identical", at(9, 0), at(10, 0), at(9, 0), at(10, 0), true},
		{"adjacent back-to-back", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"adjacent reversed", at(10, 0), at(11, 0), at(9, 0), at(10, 0), false},
		{"disjoint", at(9, 0), at(10, 0), at(14, 0), at(15, 0), false},
		{"zero-length at boundary", at(10, 0), at(10, 0), at(9, 0), at(10, 0), false},
	}
	for _, c := range cases {
		if got := Overlaps(c.startA, c.endA, c.startB, c.endB); got != c.want {
			t.Errorf("%s: Overlaps = %v, want %v", c.name, got, c.want)
		}
		// Overlap is symmetric.
		if got := Overlaps(c.startB, c.endB, c.startA, c.endA); got != c.want {
			t.Errorf("%s (swapped): Overlaps = %v, want %v", c.name, got, c.want)
		}
	}
}
