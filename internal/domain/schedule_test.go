package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekdaySetContains(t *testing.T) {
	// 2024-01-01 is a Monday.
	monday := date(2024, time.January, 1)

	tests := []struct {
		name string
		set  WeekdaySet
		day  time.Time
		want bool
	}{
		{"monday bit matches monday", Monday, monday, true},
		{"monday bit rejects tuesday", Monday, monday.AddDate(0, 0, 1), false},
		{"tuesday bit", Tuesday, monday.AddDate(0, 0, 1), true},
		{"wednesday bit", Wednesday, monday.AddDate(0, 0, 2), true},
		{"thursday bit", Thursday, monday.AddDate(0, 0, 3), true},
		{"friday bit", Friday, monday.AddDate(0, 0, 4), true},
		{"saturday bit", Saturday, monday.AddDate(0, 0, 5), true},
		{"sunday bit", Sunday, monday.AddDate(0, 0, 6), true},
		{"empty set never matches", 0, monday, false},
		{"every day matches sunday", EveryDay, monday.AddDate(0, 0, 6), true},
		{"weekdays exclude saturday", Weekdays, monday.AddDate(0, 0, 5), false},
		{"weekdays include friday", Weekdays, monday.AddDate(0, 0, 4), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Contains(tt.day); got != tt.want {
				t.Errorf("WeekdaySet(%#x).Contains(%s) = %v, want %v",
					int(tt.set), tt.day.Format("2006-01-02 Mon"), got, tt.want)
			}
		})
	}
}

// Shifting a date by whole weeks never changes the result: the set depends
// only on the weekday.
func TestWeekdaySetContainsWeekShiftInvariant(t *testing.T) {
	start := date(2023, time.June, 14)
	for mask := WeekdaySet(0); mask <= EveryDay; mask++ {
		for offset := 0; offset < 7; offset++ {
			day := start.AddDate(0, 0, offset)
			base := mask.Contains(day)
			for _, weeks := range []int{-52, -1, 1, 8, 104} {
				shifted := day.AddDate(0, 0, 7*weeks)
				if got := mask.Contains(shifted); got != base {
					t.Fatalf("mask %#x: Contains(%s)=%v but Contains(%s)=%v",
						int(mask), day.Format("2006-01-02"), base,
						shifted.Format("2006-01-02"), got)
				}
			}
		}
	}
}

func TestWeekdaySetValid(t *testing.T) {
	for _, s := range []WeekdaySet{0, 1, 64, 127} {
		if !s.Valid() {
			t.Errorf("WeekdaySet(%d).Valid() = false, want true", int(s))
		}
	}
	for _, s := range []WeekdaySet{-1, 128, 255} {
		if s.Valid() {
			t.Errorf("WeekdaySet(%d).Valid() = true, want false", int(s))
		}
	}
}
