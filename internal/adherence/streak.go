package adherence

import (
	"time"

	"github.com/abdulaz06/medication-adherence-tracker/internal/domain"
)

// DefaultLookback is how many calendar days Streaks walks back from its
// anchor date when the caller passes lookback <= 0.
const DefaultLookback = 365

// Streaks walks backward from endDate and returns the current and longest
// runs of perfect days. A day counts only if at least one active item is
// scheduled on it; days with nothing scheduled neither extend nor break a
// run. A day is perfect when every item scheduled that day reached its full
// dose count through "taken" logs; skipped or partial doses make it
// imperfect.
//
// The current streak is live only until the first imperfect candidate day hit
// walking backward; after that it is frozen while the walk keeps scanning for
// a longer historical run.
func Streaks(items []domain.Item, idx LogIndex, endDate time.Time, lookback int) (current, longest int) {
	if lookback <= 0 {
		lookback = DefaultLookback
	}

	streak := 0
	stillCurrent := true
	for i := 0; i < lookback; i++ {
		day := endDate.AddDate(0, 0, -i)

		hasItems := false
		perfect := true
		for _, item := range items {
			if !item.Active || !item.Schedule.Contains(day) {
				continue
			}
			hasItems = true
			if countStatus(idx.At(item.ID, day), domain.DoseTaken) < item.DosesPerDay {
				perfect = false
				break
			}
		}
		if !hasItems {
			continue
		}

		if perfect {
			streak++
			if stillCurrent {
				current = streak
			}
			if streak > longest {
				longest = streak
			}
		} else {
			stillCurrent = false
			streak = 0
		}
	}
	return current, longest
}
