// Package adherence derives schedule views and adherence statistics from a
// user's items and dose logs. Everything here is a pure function over
// caller-supplied snapshots: no storage access, no shared state.
package adherence

import (
	"time"

	"github.com/abdulaz06/medication-adherence-tracker/internal/domain"
)

const dateKeyLayout = "2006-01-02"

type slot struct {
	itemID int64
	day    string // yyyy-mm-dd
}

// LogIndex groups dose logs by (item, calendar date). A slot normally holds a
// single log per dose index; duplicates are kept and counted rather than
// dropped.
type LogIndex map[slot][]domain.DoseLog

// NewLogIndex builds an index over logs. Only the date part of ScheduledDate
// is significant.
func NewLogIndex(logs []domain.DoseLog) LogIndex {
	idx := make(LogIndex, len(logs))
	for _, l := range logs {
		k := slot{itemID: l.ItemID, day: l.ScheduledDate.Format(dateKeyLayout)}
		idx[k] = append(idx[k], l)
	}
	return idx
}

// At returns the logs recorded for an item on a given day.
func (idx LogIndex) At(itemID int64, day time.Time) []domain.DoseLog {
	return idx[slot{itemID: itemID, day: day.Format(dateKeyLayout)}]
}

func countStatus(logs []domain.DoseLog, status domain.DoseStatus) int {
	n := 0
	for _, l := range logs {
		if l.Status == status {
			n++
		}
	}
	return n
}
