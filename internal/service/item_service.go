package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abdulaz06/medication-adherence-tracker/internal/cache"
	dom "github.com/abdulaz06/medication-adherence-tracker/internal/domain"
	"github.com/abdulaz06/medication-adherence-tracker/internal/repo"

	"github.com/jackc/pgx/v5"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidItemType = errors.New("type must be 'medication' or 'supplement'")
	ErrInvalidDoses    = errors.New("doses_per_day must be at least 1")
	ErrInvalidSchedule = fmt.Errorf("schedule_days must be between 0 and %d", dom.EveryDay)
)

// ItemService handles item CRUD with field validation and ownership scoping.
type ItemService struct {
	repo  repo.ItemRepo
	cache *cache.ViewCache
}

// NewItemService creates an ItemService. If c is nil, cache invalidation is skipped.
func NewItemService(r repo.ItemRepo, c *cache.ViewCache) *ItemService {
	return &ItemService{repo: r, cache: c}
}

// Create validates and stores a new item for userID.
func (s *ItemService) Create(ctx context.Context, userID int64, item dom.Item) (dom.Item, error) {
	item.UserID = userID
	item.Name = strings.TrimSpace(item.Name)
	if err := validateItem(item); err != nil {
		return dom.Item{}, err
	}
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return dom.Item{}, err
	}
	s.invalidate(ctx, userID)
	return created, nil
}

// Get returns one of the user's items.
func (s *ItemService) Get(ctx context.Context, userID, id int64) (dom.Item, error) {
	it, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Item{}, ErrNotFound
		}
		return dom.Item{}, err
	}
	return it, nil
}

// List returns the user's items, optionally only active ones.
func (s *ItemService) List(ctx context.Context, userID int64, activeOnly bool) ([]dom.Item, error) {
	return s.repo.List(ctx, userID, activeOnly)
}

// Update applies a partial update. Nil fields keep their current value.
func (s *ItemService) Update(ctx context.Context, userID, id int64,
	name *string, itemType *dom.ItemType, dosesPerDay *int, schedule *dom.WeekdaySet,
	notes *string, active *bool) (dom.Item, error) {

	existing, err := s.Get(ctx, userID, id)
	if err != nil {
		return dom.Item{}, err
	}
	patch := existing
	if name != nil {
		patch.Name = strings.TrimSpace(*name)
	}
	if itemType != nil {
		patch.Type = *itemType
	}
	if dosesPerDay != nil {
		patch.DosesPerDay = *dosesPerDay
	}
	if schedule != nil {
		patch.Schedule = *schedule
	}
	if notes != nil {
		patch.Notes = *notes
	}
	if active != nil {
		patch.Active = *active
	}
	if err := validateItem(patch); err != nil {
		return dom.Item{}, err
	}
	updated, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Item{}, ErrNotFound
		}
		return dom.Item{}, err
	}
	s.invalidate(ctx, userID)
	return updated, nil
}

// Delete removes the item (its dose logs cascade in the database).
func (s *ItemService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *ItemService) invalidate(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.InvalidateUser(ctx, userID)
	}
}

func validateItem(item dom.Item) error {
	if item.Name == "" {
		return ErrNameRequired
	}
	if !item.Type.Valid() {
		return ErrInvalidItemType
	}
	if item.DosesPerDay < 1 {
		return ErrInvalidDoses
	}
	if !item.Schedule.Valid() {
		return ErrInvalidSchedule
	}
	return nil
}
