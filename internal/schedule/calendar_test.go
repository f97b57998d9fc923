package schedule

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	for _, c := range []struct {
		in   string
		want string
		ok   bool
	}{
		{"09:00", "09:00", true},
		{"9:05", "09:05", true},
		{"23:59", "23:59", true},
		{"14:30:00", "14:30", true},
		{"24:00", "", false},
		{"09:60", "", false},
		{"0900", "", false},
		{"", "", false},
	} {
		got, err := ParseTimeOfDay(c.in)
		if c.ok != (err == nil) {
			t.Errorf("ParseTimeOfDay(%q) err = %v, want ok=%v", c.in, err, c.ok)
			continue
		}
		if c.ok && got.String() != c.want {
			t.Errorf("ParseTimeOfDay(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestTimeOfDayOn(t *testing.T) {
	date := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	tod := mustTime(t, "14:30")
	got := tod.On(date)
	want := time.Date(2026, 1, 5, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("On = %s, want %s", got, want)
	}
}

func TestStatusOccupies(t *testing.T) {
	if !StatusPending.Occupies() || !StatusConfirmed.Occupies() {
		t.Fatal("pending and confirmed must occupy calendar space")
	}
	if StatusCancelled.Occupies() || StatusCompleted.Occupies() {
		t.Fatal("cancelled and completed must not occupy calendar space")
	}
}
