package adherence

import (
	"math"
	"time"

	"github.com/abdulaz06/medication-adherence-tracker/internal/domain"
)

// ItemAdherence is the per-item breakdown over a date range.
type ItemAdherence struct {
	ItemID       int64   `json:"item_id"`
	ItemName     string  `json:"item_name"`
	Expected     int     `json:"expected"`
	Taken        int     `json:"taken"`
	Skipped      int     `json:"skipped"`
	Missed       int     `json:"missed"`
	AdherencePct float64 `json:"adherence_pct"`
}

// Report holds adherence statistics for one user over [StartDate, EndDate].
type Report struct {
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	OverallPct    float64         `json:"overall_adherence_pct"`
	Items         []ItemAdherence `json:"items"`
	CurrentStreak int             `json:"current_streak"`
	LongestStreak int             `json:"longest_streak"`
}

// Aggregate computes per-item and overall adherence over the inclusive range
// [start, end]. idx must be built from logs already scoped to the same user
// and range. Inactive items are skipped.
//
// Missed floors at zero so over-logged slots (duplicates, out-of-range dose
// indexes) never produce a negative count. A per-item percentage is 0.0 when
// the item was never scheduled in range. The overall percentage is computed
// from the summed taken/expected counters, weighting items by their scheduled
// dose count rather than averaging percentages.
func Aggregate(items []domain.Item, idx LogIndex, start, end time.Time) Report {
	rep := Report{
		StartDate: start.Format(dateKeyLayout),
		EndDate:   end.Format(dateKeyLayout),
		Items:     []ItemAdherence{},
	}

	totalExpected, totalTaken := 0, 0
	for _, item := range items {
		if !item.Active {
			continue
		}
		expected, taken, skipped := 0, 0, 0
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			if !item.Schedule.Contains(day) {
				continue
			}
			expected += item.DosesPerDay
			dayLogs := idx.At(item.ID, day)
			taken += countStatus(dayLogs, domain.DoseTaken)
			skipped += countStatus(dayLogs, domain.DoseSkipped)
		}

		missed := expected - taken - skipped
		if missed < 0 {
			missed = 0
		}
		pct := 0.0
		if expected > 0 {
			pct = round1(float64(taken) / float64(expected) * 100)
		}

		rep.Items = append(rep.Items, ItemAdherence{
			ItemID:       item.ID,
			ItemName:     item.Name,
			Expected:     expected,
			Taken:        taken,
			Skipped:      skipped,
			Missed:       missed,
			AdherencePct: pct,
		})
		totalExpected += expected
		totalTaken += taken
	}

	if totalExpected > 0 {
		rep.OverallPct = round1(float64(totalTaken) / float64(totalExpected) * 100)
	}
	return rep
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
