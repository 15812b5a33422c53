package adherence

import (
	"time"

	"github.com/abdulaz06/medication-adherence-tracker/internal/domain"
)

// ScheduleItem is one item in a day's schedule with its completion state.
type ScheduleItem struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Type           domain.ItemType `json:"type"`
	DosesPerDay    int             `json:"doses_per_day"`
	Notes          string          `json:"notes,omitempty"`
	ExpectedDoses  int             `json:"expected_doses"`
	CompletedDoses int             `json:"completed_doses"`
	Completed      bool            `json:"completed"`
}

// DailySchedule is the projection of a user's items onto one calendar date.
type DailySchedule struct {
	Date  string         `json:"date"`
	Items []ScheduleItem `json:"items"`
}

// ProjectDay builds the schedule view for date. Items must belong to one user
// and logsForDate must already be filtered to that user and that date.
//
// Only active items scheduled on date's weekday appear; items with no
// occurrence that day are omitted entirely. CompletedDoses counts "taken"
// logs only; a skipped dose is recorded but neither completes a slot nor
// counts toward the item's completion.
func ProjectDay(items []domain.Item, logsForDate []domain.DoseLog, date time.Time) DailySchedule {
	byItem := make(map[int64][]domain.DoseLog, len(logsForDate))
	for _, l := range logsForDate {
		byItem[l.ItemID] = append(byItem[l.ItemID], l)
	}

	out := DailySchedule{Date: date.Format(dateKeyLayout), Items: []ScheduleItem{}}
	for _, item := range items {
		if !item.Active || !item.Schedule.Contains(date) {
			continue
		}
		taken := countStatus(byItem[item.ID], domain.DoseTaken)
		out.Items = append(out.Items, ScheduleItem{
			ID:             item.ID,
			Name:           item.Name,
			Type:           item.Type,
			DosesPerDay:    item.DosesPerDay,
			Notes:          item.Notes,
			ExpectedDoses:  item.DosesPerDay,
			CompletedDoses: taken,
			Completed:      taken >= item.DosesPerDay,
		})
	}
	return out
}
