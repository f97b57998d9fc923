package schedule

import (
	"testing"
	"time"
)

func TestDayIndex_FullWeekFromSunday(t *testing.T) {
	// 2026-01-04 is a Sunday; seven consecutive dates must cycle 0..6.
	sunday := time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		date := sunday.AddDate(0, 0, i)
		if got := DayIndex(date); got != i {
			t.Errorf("DayIndex(%s) = %d, want %d", date.Format("2006-01-02 Mon"), got, i)
		}
	}
}

func TestDayIndex_WrapsToSunday(t *testing.T) {
	sunday := time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)
	if got := DayIndex(sunday.AddDate(0, 0, 7)); got != 0 {
		t.Fatalf("expected next Sunday to map to 0, got %d", got)
	}
}
