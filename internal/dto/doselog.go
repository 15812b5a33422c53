package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	dom "github.com/abdulaz06/medication-adherence-tracker/internal/domain"
)

// ScheduledDate parses a calendar date from JSON, either date-only
// ("2006-01-02") or a full RFC3339 timestamp truncated to its date. The time
// of day is never kept; dose logs apply to civil dates.
type ScheduledDate struct{ t time.Time }

func (d *ScheduledDate) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s := strings.TrimSpace(raw)
	if s == "" {
		return fmt.Errorf("scheduled_date is required")
	}
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		time.RFC3339Nano,
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			d.t = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			return nil
		}
	}
	return fmt.Errorf("scheduled_date: use date (YYYY-MM-DD) or RFC3339 datetime")
}

// Time returns the parsed date at midnight UTC. Zero if never set.
func (d ScheduledDate) Time() time.Time { return d.t }

// IsZero reports whether the date was absent from the payload.
func (d ScheduledDate) IsZero() bool { return d.t.IsZero() }

// CreateDoseLogRequest is the JSON body for POST /logs/items/{item_id}.
type CreateDoseLogRequest struct {
	ScheduledDate ScheduledDate `json:"scheduled_date"` // required; checked by the handler since absence skips UnmarshalJSON
	DoseIndex     int           `json:"dose_index" binding:"omitempty,min=1"`
	Status        string        `json:"status" binding:"omitempty,oneof=taken skipped"`
	SkipReason    string        `json:"skip_reason" binding:"max=120"`
}

// Log converts the request into a domain log, applying API defaults:
// dose_index 1, status "taken".
func (r CreateDoseLogRequest) Log() dom.DoseLog {
	log := dom.DoseLog{
		ScheduledDate: r.ScheduledDate.Time(),
		DoseIndex:     r.DoseIndex,
		Status:        dom.DoseStatus(r.Status),
		SkipReason:    r.SkipReason,
	}
	if log.DoseIndex == 0 {
		log.DoseIndex = 1
	}
	if log.Status == "" {
		log.Status = dom.DoseTaken
	}
	return log
}

// UpdateDoseLogRequest is the JSON body for PATCH /logs/{id}. Nil = keep current value.
type UpdateDoseLogRequest struct {
	Status     *string `json:"status" binding:"omitempty,oneof=taken skipped"`
	SkipReason *string `json:"skip_reason" binding:"omitempty,max=120"`
}

// DoseLogResponse is the JSON shape of a dose log.
type DoseLogResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	ItemID        int64     `json:"item_id"`
	ScheduledDate string    `json:"scheduled_date"`
	DoseIndex     int       `json:"dose_index"`
	Status        string    `json:"status"`
	SkipReason    string    `json:"skip_reason,omitempty"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// ListDoseLogsResponse wraps a log listing.
type ListDoseLogsResponse struct {
	Items []DoseLogResponse `json:"items"`
}

// NewDoseLogResponse maps a domain log to its JSON shape.
func NewDoseLogResponse(l dom.DoseLog) DoseLogResponse {
	return DoseLogResponse{
		ID:            l.ID,
		UserID:        l.UserID,
		ItemID:        l.ItemID,
		ScheduledDate: l.ScheduledDate.Format("2006-01-02"),
		DoseIndex:     l.DoseIndex,
		Status:        string(l.Status),
		SkipReason:    l.SkipReason,
		RecordedAt:    l.RecordedAt,
	}
}
