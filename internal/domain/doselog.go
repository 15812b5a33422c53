package domain

import "time"

// DoseStatus is the outcome recorded for a dose slot.
type DoseStatus string

const (
	DoseTaken   DoseStatus = "taken"
	DoseSkipped DoseStatus = "skipped"
)

// Valid reports whether s is a known status.
func (s DoseStatus) Valid() bool {
	return s == DoseTaken || s == DoseSkipped
}

// DoseLog records that one dose slot (item, date, index) was taken or skipped.
// ScheduledDate is the calendar date the dose applies to, not the time it was
// recorded; only its date part is meaningful. At most one log should exist per
// (ItemID, ScheduledDate, DoseIndex); the database enforces this, but readers
// must still tolerate duplicates.
type DoseLog struct {
	ID            int64
	UserID        int64
	ItemID        int64
	ScheduledDate time.Time
	DoseIndex     int
	Status        DoseStatus
	SkipReason    string
	RecordedAt    time.Time
}
