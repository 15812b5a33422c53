package adherence

import (
	"reflect"
	"testing"
	"time"

	dom "github.com/abdulaz06/medication-adherence-tracker/internal/domain"
)

func TestAggregateNoLogs(t *testing.T) {
	// 2024-03-04 (Mon) through 2024-03-10 (Sun).
	start := day(2024, time.March, 4)
	end := day(2024, time.March, 10)
	item := dom.Item{ID: 1, Name: "Vitamin D", DosesPerDay: 1, Schedule: dom.EveryDay, Active: true}

	rep := Aggregate([]dom.Item{item}, NewLogIndex(nil), start, end)

	if len(rep.Items) != 1 {
		t.Fatalf("expected 1 item stat, got %d", len(rep.Items))
	}
	got := rep.Items[0]
	want := ItemAdherence{ItemID: 1, ItemName: "Vitamin D", Expected: 7, Taken: 0, Skipped: 0, Missed: 7, AdherencePct: 0.0}
	if got != want {
		t.Errorf("item stat = %+v, want %+v", got, want)
	}
	if rep.OverallPct != 0.0 {
		t.Errorf("overall = %v, want 0.0", rep.OverallPct)
	}
	if rep.StartDate != "2024-03-04" || rep.EndDate != "2024-03-10" {
		t.Errorf("range = %s..%s", rep.StartDate, rep.EndDate)
	}
}

func TestAggregateCounts(t *testing.T) {
	start := day(2024, time.March, 4)
	end := day(2024, time.March, 10)
	item := dom.Item{ID: 1, Name: "Metformin", DosesPerDay: 2, Schedule: dom.EveryDay, Active: true}

	logs := []dom.DoseLog{
		takenLog(1, start, 1),
		takenLog(1, start, 2),
		takenLog(1, start.AddDate(0, 0, 1), 1),
		skippedLog(1, start.AddDate(0, 0, 1), 2),
		skippedLog(1, start.AddDate(0, 0, 2), 1),
	}
	rep := Aggregate([]dom.Item{item}, NewLogIndex(logs), start, end)
	got := rep.Items[0]

	if got.Expected != 14 {
		t.Errorf("expected = %d, want 14", got.Expected)
	}
	if got.Taken != 3 || got.Skipped != 2 {
		t.Errorf("taken/skipped = %d/%d, want 3/2", got.Taken, got.Skipped)
	}
	if got.Missed != 9 {
		t.Errorf("missed = %d, want 9", got.Missed)
	}
	// 3/14 = 21.43 -> 21.4 at one decimal.
	if got.AdherencePct != 21.4 {
		t.Errorf("adherence_pct = %v, want 21.4", got.AdherencePct)
	}
}

func TestAggregateSingleDayRange(t *testing.T) {
	d := day(2024, time.March, 6) // Wednesday
	item := dom.Item{ID: 1, Name: "Iron", DosesPerDay: 1, Schedule: dom.EveryDay, Active: true}

	rep := Aggregate([]dom.Item{item}, NewLogIndex([]dom.DoseLog{takenLog(1, d, 1)}), d, d)
	got := rep.Items[0]
	if got.Expected != 1 || got.Taken != 1 || got.Missed != 0 {
		t.Errorf("got %+v, want expected=1 taken=1 missed=0", got)
	}
	if got.AdherencePct != 100.0 {
		t.Errorf("adherence_pct = %v, want 100.0", got.AdherencePct)
	}
}

func TestAggregateNeverScheduledInRange(t *testing.T) {
	// Weekend-only item over a Monday..Friday range: expected stays 0 and the
	// percentage must be defined as 0.0 rather than dividing by zero.
	start := day(2024, time.March, 4)
	end := day(2024, time.March, 8)
	item := dom.Item{ID: 1, Name: "Weekend only", DosesPerDay: 1, Schedule: dom.Saturday | dom.Sunday, Active: true}

	rep := Aggregate([]dom.Item{item}, NewLogIndex(nil), start, end)
	got := rep.Items[0]
	if got.Expected != 0 || got.AdherencePct != 0.0 {
		t.Errorf("got expected=%d pct=%v, want 0 and 0.0", got.Expected, got.AdherencePct)
	}
	if rep.OverallPct != 0.0 {
		t.Errorf("overall = %v, want 0.0", rep.OverallPct)
	}
}

func TestAggregateMissedFloorsAtZero(t *testing.T) {
	// Over-logged slot: more taken+skipped than expected (duplicate defensive case).
	d := day(2024, time.March, 6)
	item := dom.Item{ID: 1, Name: "Aspirin", DosesPerDay: 1, Schedule: dom.EveryDay, Active: true}
	logs := []dom.DoseLog{
		takenLog(1, d, 1),
		takenLog(1, d, 1), // duplicate slot, kept and counted
		skippedLog(1, d, 2),
	}

	rep := Aggregate([]dom.Item{item}, NewLogIndex(logs), d, d)
	got := rep.Items[0]
	if got.Taken != 2 || got.Skipped != 1 {
		t.Errorf("taken/skipped = %d/%d, want 2/1 (all logs counted)", got.Taken, got.Skipped)
	}
	if got.Missed != 0 {
		t.Errorf("missed = %d, want 0 (floored)", got.Missed)
	}
}

func TestAggregateOverallWeightsByDoseCount(t *testing.T) {
	start := day(2024, time.March, 4)
	end := day(2024, time.March, 10)
	// Item A: 1 dose/day, fully taken -> 7/7.
	// Item B: 3 doses/day, nothing taken -> 0/21.
	// Overall must be 7/28 = 25.0, not the 50.0 an average of percentages gives.
	a := dom.Item{ID: 1, Name: "A", DosesPerDay: 1, Schedule: dom.EveryDay, Active: true}
	b := dom.Item{ID: 2, Name: "B", DosesPerDay: 3, Schedule: dom.EveryDay, Active: true}

	var logs []dom.DoseLog
	for i := 0; i < 7; i++ {
		logs = append(logs, takenLog(1, start.AddDate(0, 0, i), 1))
	}
	rep := Aggregate([]dom.Item{a, b}, NewLogIndex(logs), start, end)
	if rep.OverallPct != 25.0 {
		t.Errorf("overall = %v, want 25.0 (weighted by expected doses)", rep.OverallPct)
	}
}

func TestAggregateSkipsInactiveItems(t *testing.T) {
	start := day(2024, time.March, 4)
	end := day(2024, time.March, 10)
	item := dom.Item{ID: 1, Name: "Paused", DosesPerDay: 1, Schedule: dom.EveryDay, Active: false}

	rep := Aggregate([]dom.Item{item}, NewLogIndex(nil), start, end)
	if len(rep.Items) != 0 {
		t.Fatalf("inactive item appeared in report")
	}
}

func TestAggregateIsPure(t *testing.T) {
	start := day(2024, time.March, 4)
	end := day(2024, time.March, 10)
	items := []dom.Item{{ID: 1, Name: "X", DosesPerDay: 2, Schedule: dom.Weekdays, Active: true}}
	idx := NewLogIndex([]dom.DoseLog{takenLog(1, start, 1), skippedLog(1, end, 1)})

	first := Aggregate(items, idx, start, end)
	second := Aggregate(items, idx, start, end)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs over identical inputs differ:\n%+v\n%+v", first, second)
	}
}
