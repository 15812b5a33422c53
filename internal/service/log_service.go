package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/abdulaz06/medication-adherence-tracker/internal/adherence"
	"github.com/abdulaz06/medication-adherence-tracker/internal/cache"
	dom "github.com/abdulaz06/medication-adherence-tracker/internal/domain"
	"github.com/abdulaz06/medication-adherence-tracker/internal/repo"
	"github.com/abdulaz06/medication-adherence-tracker/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

const (
	minStatsDays = 1
	maxStatsDays = 365
)

var (
	ErrDuplicateLog     = errors.New("log already exists for this item/date/dose_index")
	ErrDoseIndexRange   = errors.New("dose_index exceeds item's doses_per_day")
	ErrSkipReasonTaken  = errors.New("skip_reason is only valid when status is 'skipped'")
	ErrDaysOutOfRange   = errors.New("days must be between 1 and 365")
	ErrInvalidDoseIndex = errors.New("dose_index must be at least 1")
)

// LogService handles dose log writes and the derived schedule/stats views.
// The views are assembled here: items and logs are loaded through the repos,
// then handed to the pure functions in the adherence package.
type LogService struct {
	logs  repo.DoseLogRepo
	items repo.ItemRepo
	cache *cache.ViewCache
	sf    singleflight.Group
	now   func() time.Time
}

// NewLogService creates a LogService. If c is nil, caching is disabled.
func NewLogService(logs repo.DoseLogRepo, items repo.ItemRepo, c *cache.ViewCache) *LogService {
	return &LogService{logs: logs, items: items, cache: c, now: time.Now}
}

// Create records a dose as taken or skipped for one of the user's items.
// The item must belong to the user, dose_index must fit the item's
// doses_per_day, and a skip reason is only allowed on skipped doses. A
// duplicate (item, date, index) slot maps to ErrDuplicateLog.
func (s *LogService) Create(ctx context.Context, userID, itemID int64, log dom.DoseLog) (dom.DoseLog, error) {
	item, err := s.items.GetByID(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.DoseLog{}, ErrNotFound
		}
		return dom.DoseLog{}, err
	}
	if log.DoseIndex < 1 {
		return dom.DoseLog{}, ErrInvalidDoseIndex
	}
	if log.DoseIndex > item.DosesPerDay {
		return dom.DoseLog{}, ErrDoseIndexRange
	}
	if log.Status == dom.DoseTaken && log.SkipReason != "" {
		return dom.DoseLog{}, ErrSkipReasonTaken
	}

	log.UserID = userID
	log.ItemID = itemID
	created, err := s.logs.Create(ctx, log)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.DoseLog{}, ErrDuplicateLog
		}
		return dom.DoseLog{}, err
	}
	s.invalidate(ctx, userID)
	return created, nil
}

// List returns the user's logs, optionally filtered by date range and item.
func (s *LogService) List(ctx context.Context, userID int64, f repo.LogFilter) ([]dom.DoseLog, error) {
	return s.logs.List(ctx, userID, f)
}

// Update changes a log's status and/or skip reason. Marking a log taken
// clears any skip reason.
func (s *LogService) Update(ctx context.Context, userID, id int64, status *dom.DoseStatus, skipReason *string) (dom.DoseLog, error) {
	existing, err := s.logs.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.DoseLog{}, ErrNotFound
		}
		return dom.DoseLog{}, err
	}
	patch := existing
	if status != nil {
		patch.Status = *status
	}
	if skipReason != nil {
		patch.SkipReason = *skipReason
	}
	if patch.Status == dom.DoseTaken {
		patch.SkipReason = ""
	}
	updated, err := s.logs.Update(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.DoseLog{}, ErrNotFound
		}
		return dom.DoseLog{}, err
	}
	s.invalidate(ctx, userID)
	return updated, nil
}

// Delete removes a log entry (undo a mark).
func (s *LogService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.logs.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

// Schedule returns the day's schedule view for the user. A zero date means
// today.
func (s *LogService) Schedule(ctx context.Context, userID int64, date time.Time) (adherence.DailySchedule, error) {
	if date.IsZero() {
		date = s.today()
	}
	dateKey := date.Format("2006-01-02")

	load := func() (adherence.DailySchedule, error) {
		items, err := s.items.List(ctx, userID, true)
		if err != nil {
			return adherence.DailySchedule{}, err
		}
		logs, err := s.logs.ListForDate(ctx, userID, date)
		if err != nil {
			return adherence.DailySchedule{}, err
		}
		return adherence.ProjectDay(items, logs, date), nil
	}

	if s.cache == nil {
		return load()
	}
	key := "schedule:" + strconv.FormatInt(userID, 10) + ":" + dateKey
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if cached, err := s.cache.GetSchedule(ctx, userID, dateKey); err == nil && cached != nil {
			return *cached, nil
		}
		view, err := load()
		if err != nil {
			return nil, err
		}
		_ = s.cache.SetSchedule(ctx, userID, dateKey, view)
		return view, nil
	})
	if err != nil {
		return adherence.DailySchedule{}, err
	}
	return v.(adherence.DailySchedule), nil
}

// Stats computes the adherence report over the last days calendar days ending
// today, including streaks.
func (s *LogService) Stats(ctx context.Context, userID int64, days int) (adherence.Report, error) {
	if days < minStatsDays || days > maxStatsDays {
		return adherence.Report{}, ErrDaysOutOfRange
	}
	end := s.today()
	start := end.AddDate(0, 0, -(days - 1))

	load := func() (adherence.Report, error) {
		items, err := s.items.List(ctx, userID, true)
		if err != nil {
			return adherence.Report{}, err
		}
		logs, err := s.logs.ListInRange(ctx, userID, start, end)
		if err != nil {
			return adherence.Report{}, err
		}
		idx := adherence.NewLogIndex(logs)
		rep := adherence.Aggregate(items, idx, start, end)
		rep.CurrentStreak, rep.LongestStreak = adherence.Streaks(items, idx, end, adherence.DefaultLookback)
		return rep, nil
	}

	if s.cache == nil {
		return load()
	}
	key := "stats:" + strconv.FormatInt(userID, 10) + ":" + strconv.Itoa(days)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if cached, err := s.cache.GetStats(ctx, userID, days); err == nil && cached != nil {
			return *cached, nil
		}
		rep, err := load()
		if err != nil {
			return nil, err
		}
		_ = s.cache.SetStats(ctx, userID, days, rep)
		return rep, nil
	})
	if err != nil {
		return adherence.Report{}, err
	}
	return v.(adherence.Report), nil
}

func (s *LogService) invalidate(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.InvalidateUser(ctx, userID)
	}
}

// today returns the current civil date in UTC at midnight.
func (s *LogService) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
