package dto

import (
	dom "github.com/abdulaz06/medication-adherence-tracker/internal/domain"
)

// CreateItemRequest is the JSON body for POST /items.
type CreateItemRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=120"`
	Type         string `json:"type" binding:"required,oneof=medication supplement"`
	DosesPerDay  int    `json:"doses_per_day" binding:"omitempty,min=1"`
	ScheduleDays *int   `json:"schedule_days" binding:"omitempty,gte=0,lte=127"`
	Notes        string `json:"notes" binding:"max=255"`
	Active       *bool  `json:"active"`
}

// Item converts the request into a domain item, applying the defaults the
// API documents: one dose per day, scheduled every day, active.
func (r CreateItemRequest) Item() dom.Item {
	item := dom.Item{
		Name:        r.Name,
		Type:        dom.ItemType(r.Type),
		DosesPerDay: r.DosesPerDay,
		Schedule:    dom.EveryDay,
		Notes:       r.Notes,
		Active:      true,
	}
	if item.DosesPerDay == 0 {
		item.DosesPerDay = 1
	}
	if r.ScheduleDays != nil {
		item.Schedule = dom.WeekdaySet(*r.ScheduleDays)
	}
	if r.Active != nil {
		item.Active = *r.Active
	}
	return item
}

// UpdateItemRequest is the JSON body for PATCH /items/{id}. Nil = keep current value.
type UpdateItemRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=120"`
	Type         *string `json:"type" binding:"omitempty,oneof=medication supplement"`
	DosesPerDay  *int    `json:"doses_per_day" binding:"omitempty,min=1"`
	ScheduleDays *int    `json:"schedule_days" binding:"omitempty,gte=0,lte=127"`
	Notes        *string `json:"notes" binding:"omitempty,max=255"`
	Active       *bool   `json:"active"`
}

// ItemResponse is the JSON shape of an item.
type ItemResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"user_id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	DosesPerDay  int    `json:"doses_per_day"`
	ScheduleDays int    `json:"schedule_days"`
	Notes        string `json:"notes,omitempty"`
	Active       bool   `json:"active"`
}

// ListItemsResponse wraps an item listing.
type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

// NewItemResponse maps a domain item to its JSON shape.
func NewItemResponse(it dom.Item) ItemResponse {
	return ItemResponse{
		ID:           it.ID,
		UserID:       it.UserID,
		Name:         it.Name,
		Type:         string(it.Type),
		DosesPerDay:  it.DosesPerDay,
		ScheduleDays: int(it.Schedule),
		Notes:        it.Notes,
		Active:       it.Active,
	}
}
