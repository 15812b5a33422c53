package service

import (
	"context"
	"errors"
	"testing"
	"time"

	dom "github.com/abdulaz06/medication-adherence-tracker/internal/domain"
	"github.com/abdulaz06/medication-adherence-tracker/internal/repo"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ---- in-memory fakes ----

type fakeItemRepo struct {
	items []dom.Item
}

func (f *fakeItemRepo) Create(_ context.Context, item dom.Item) (dom.Item, error) {
	item.ID = int64(len(f.items) + 1)
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeItemRepo) GetByID(_ context.Context, userID, id int64) (dom.Item, error) {
	for _, it := range f.items {
		if it.ID == id && it.UserID == userID {
			return it, nil
		}
	}
	return dom.Item{}, pgx.ErrNoRows
}

func (f *fakeItemRepo) List(_ context.Context, userID int64, activeOnly bool) ([]dom.Item, error) {
	var out []dom.Item
	for _, it := range f.items {
		if it.UserID != userID {
			continue
		}
		if activeOnly && !it.Active {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (f *fakeItemRepo) Update(_ context.Context, userID, id int64, patch dom.Item) (dom.Item, error) {
	for i, it := range f.items {
		if it.ID == id && it.UserID == userID {
			patch.ID = id
			patch.UserID = userID
			f.items[i] = patch
			return patch, nil
		}
	}
	return dom.Item{}, pgx.ErrNoRows
}

func (f *fakeItemRepo) Delete(_ context.Context, userID, id int64) error {
	for i, it := range f.items {
		if it.ID == id && it.UserID == userID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeLogRepo struct {
	logs []dom.DoseLog
}

func (f *fakeLogRepo) Create(_ context.Context, log dom.DoseLog) (dom.DoseLog, error) {
	for _, l := range f.logs {
		if l.ItemID == log.ItemID && l.ScheduledDate.Equal(log.ScheduledDate) && l.DoseIndex == log.DoseIndex {
			return dom.DoseLog{}, &pgconn.PgError{Code: "23505", ConstraintName: "uq_dose_logs_slot"}
		}
	}
	log.ID = int64(len(f.logs) + 1)
	log.RecordedAt = time.Now()
	f.logs = append(f.logs, log)
	return log, nil
}

func (f *fakeLogRepo) GetByID(_ context.Context, userID, id int64) (dom.DoseLog, error) {
	for _, l := range f.logs {
		if l.ID == id && l.UserID == userID {
			return l, nil
		}
	}
	return dom.DoseLog{}, pgx.ErrNoRows
}

func (f *fakeLogRepo) List(_ context.Context, userID int64, flt repo.LogFilter) ([]dom.DoseLog, error) {
	var out []dom.DoseLog
	for _, l := range f.logs {
		if l.UserID != userID {
			continue
		}
		if flt.Start != nil && l.ScheduledDate.Before(*flt.Start) {
			continue
		}
		if flt.End != nil && l.ScheduledDate.After(*flt.End) {
			continue
		}
		if flt.ItemID != 0 && l.ItemID != flt.ItemID {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeLogRepo) ListForDate(ctx context.Context, userID int64, date time.Time) ([]dom.DoseLog, error) {
	end := date
	return f.List(ctx, userID, repo.LogFilter{Start: &date, End: &end})
}

func (f *fakeLogRepo) ListInRange(ctx context.Context, userID int64, start, end time.Time) ([]dom.DoseLog, error) {
	return f.List(ctx, userID, repo.LogFilter{Start: &start, End: &end})
}

func (f *fakeLogRepo) Update(_ context.Context, userID, id int64, patch dom.DoseLog) (dom.DoseLog, error) {
	for i, l := range f.logs {
		if l.ID == id && l.UserID == userID {
			l.Status = patch.Status
			l.SkipReason = patch.SkipReason
			f.logs[i] = l
			return l, nil
		}
	}
	return dom.DoseLog{}, pgx.ErrNoRows
}

func (f *fakeLogRepo) Delete(_ context.Context, userID, id int64) error {
	for i, l := range f.logs {
		if l.ID == id && l.UserID == userID {
			f.logs = append(f.logs[:i], f.logs[i+1:]...)
			return nil
		}
	}
	return nil
}

// ---- helpers ----

func testDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestLogService(items *fakeItemRepo, logs *fakeLogRepo, now time.Time) *LogService {
	svc := NewLogService(logs, items, nil)
	svc.now = func() time.Time { return now }
	return svc
}

const testUser = int64(10)

func seedItem(items *fakeItemRepo, it dom.Item) dom.Item {
	it.UserID = testUser
	created, _ := items.Create(context.Background(), it)
	return created
}

// ---- tests ----

func TestLogServiceCreate(t *testing.T) {
	ctx := context.Background()
	monday := testDate(2024, time.March, 4)

	newFixture := func() (*LogService, dom.Item) {
		items := &fakeItemRepo{}
		logs := &fakeLogRepo{}
		item := seedItem(items, dom.Item{Name: "Metformin", Type: dom.ItemMedication, DosesPerDay: 2, Schedule: dom.EveryDay, Active: true})
		return newTestLogService(items, logs, monday), item
	}

	t.Run("creates a taken log", func(t *testing.T) {
		svc, item := newFixture()
		log, err := svc.Create(ctx, testUser, item.ID, dom.DoseLog{ScheduledDate: monday, DoseIndex: 1, Status: dom.DoseTaken})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if log.UserID != testUser || log.ItemID != item.ID {
			t.Errorf("ownership fields not set: %+v", log)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		svc, _ := newFixture()
		_, err := svc.Create(ctx, testUser, 999, dom.DoseLog{ScheduledDate: monday, DoseIndex: 1, Status: dom.DoseTaken})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("another user's item", func(t *testing.T) {
		svc, item := newFixture()
		_, err := svc.Create(ctx, testUser+1, item.ID, dom.DoseLog{ScheduledDate: monday, DoseIndex: 1, Status: dom.DoseTaken})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound (ownership)", err)
		}
	})

	t.Run("dose_index above doses_per_day", func(t *testing.T) {
		svc, item := newFixture()
		_, err := svc.Create(ctx, testUser, item.ID, dom.DoseLog{ScheduledDate: monday, DoseIndex: 3, Status: dom.DoseTaken})
		if !errors.Is(err, ErrDoseIndexRange) {
			t.Errorf("err = %v, want ErrDoseIndexRange", err)
		}
	})

	t.Run("dose_index below 1", func(t *testing.T) {
		svc, item := newFixture()
		_, err := svc.Create(ctx, testUser, item.ID, dom.DoseLog{ScheduledDate: monday, DoseIndex: 0, Status: dom.DoseTaken})
		if !errors.Is(err, ErrInvalidDoseIndex) {
			t.Errorf("err = %v, want ErrInvalidDoseIndex", err)
		}
	})

	t.Run("skip_reason on taken dose", func(t *testing.T) {
		svc, item := newFixture()
		_, err := svc.Create(ctx, testUser, item.ID, dom.DoseLog{ScheduledDate: monday, DoseIndex: 1, Status: dom.DoseTaken, SkipReason: "oops"})
		if !errors.Is(err, ErrSkipReasonTaken) {
			t.Errorf("err = %v, want ErrSkipReasonTaken", err)
		}
	})

	t.Run("duplicate slot maps to conflict", func(t *testing.T) {
		svc, item := newFixture()
		log := dom.DoseLog{ScheduledDate: monday, DoseIndex: 1, Status: dom.DoseTaken}
		if _, err := svc.Create(ctx, testUser, item.ID, log); err != nil {
			t.Fatalf("first Create: %v", err)
		}
		_, err := svc.Create(ctx, testUser, item.ID, log)
		if !errors.Is(err, ErrDuplicateLog) {
			t.Errorf("err = %v, want ErrDuplicateLog", err)
		}
	})
}

func TestLogServiceUpdateClearsSkipReason(t *testing.T) {
	ctx := context.Background()
	monday := testDate(2024, time.March, 4)
	items := &fakeItemRepo{}
	logs := &fakeLogRepo{}
	item := seedItem(items, dom.Item{Name: "Iron", Type: dom.ItemSupplement, DosesPerDay: 1, Schedule: dom.EveryDay, Active: true})
	svc := newTestLogService(items, logs, monday)

	created, err := svc.Create(ctx, testUser, item.ID, dom.DoseLog{ScheduledDate: monday, DoseIndex: 1, Status: dom.DoseSkipped, SkipReason: "nausea"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	taken := dom.DoseTaken
	updated, err := svc.Update(ctx, testUser, created.ID, &taken, nil)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != dom.DoseTaken {
		t.Errorf("status = %s, want taken", updated.Status)
	}
	if updated.SkipReason != "" {
		t.Errorf("skip_reason = %q, want cleared on taken", updated.SkipReason)
	}
}

func TestLogServiceSchedule(t *testing.T) {
	ctx := context.Background()
	monday := testDate(2024, time.March, 4)
	items := &fakeItemRepo{}
	logs := &fakeLogRepo{}
	item := seedItem(items, dom.Item{Name: "Vitamin D", Type: dom.ItemSupplement, DosesPerDay: 1, Schedule: dom.EveryDay, Active: true})
	seedItem(items, dom.Item{Name: "Paused", Type: dom.ItemMedication, DosesPerDay: 1, Schedule: dom.EveryDay, Active: false})
	svc := newTestLogService(items, logs, monday)

	if _, err := svc.Create(ctx, testUser, item.ID, dom.DoseLog{ScheduledDate: monday, DoseIndex: 1, Status: dom.DoseTaken}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	view, err := svc.Schedule(ctx, testUser, time.Time{}) // zero date = today
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if view.Date != "2024-03-04" {
		t.Errorf("date = %q, want today (2024-03-04)", view.Date)
	}
	if len(view.Items) != 1 {
		t.Fatalf("items = %d, want 1 (inactive excluded)", len(view.Items))
	}
	if !view.Items[0].Completed {
		t.Errorf("item not completed after its single dose was taken")
	}
}

func TestLogServiceStats(t *testing.T) {
	ctx := context.Background()
	end := testDate(2024, time.March, 10)
	items := &fakeItemRepo{}
	logs := &fakeLogRepo{}
	item := seedItem(items, dom.Item{Name: "Vitamin D", Type: dom.ItemSupplement, DosesPerDay: 1, Schedule: dom.EveryDay, Active: true})
	svc := newTestLogService(items, logs, end)

	// Perfect for the last 3 days.
	for i := 0; i < 3; i++ {
		d := end.AddDate(0, 0, -i)
		if _, err := svc.Create(ctx, testUser, item.ID, dom.DoseLog{ScheduledDate: d, DoseIndex: 1, Status: dom.DoseTaken}); err != nil {
			t.Fatalf("Create day %d: %v", i, err)
		}
	}

	rep, err := svc.Stats(ctx, testUser, 7)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if rep.StartDate != "2024-03-04" || rep.EndDate != "2024-03-10" {
		t.Errorf("range = %s..%s, want 2024-03-04..2024-03-10", rep.StartDate, rep.EndDate)
	}
	if len(rep.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(rep.Items))
	}
	got := rep.Items[0]
	if got.Expected != 7 || got.Taken != 3 || got.Missed != 4 {
		t.Errorf("expected/taken/missed = %d/%d/%d, want 7/3/4", got.Expected, got.Taken, got.Missed)
	}
	// 3/7 = 42.857 -> 42.9
	if got.AdherencePct != 42.9 {
		t.Errorf("adherence_pct = %v, want 42.9", got.AdherencePct)
	}
	if rep.CurrentStreak != 3 || rep.LongestStreak != 3 {
		t.Errorf("streaks = %d/%d, want 3/3", rep.CurrentStreak, rep.LongestStreak)
	}
}

func TestLogServiceStatsDaysBounds(t *testing.T) {
	svc := newTestLogService(&fakeItemRepo{}, &fakeLogRepo{}, testDate(2024, time.March, 10))
	for _, days := range []int{0, -1, 366} {
		if _, err := svc.Stats(context.Background(), testUser, days); !errors.Is(err, ErrDaysOutOfRange) {
			t.Errorf("days=%d: err = %v, want ErrDaysOutOfRange", days, err)
		}
	}
	if _, err := svc.Stats(context.Background(), testUser, 1); err != nil {
		t.Errorf("days=1 should be accepted, got %v", err)
	}
	if _, err := svc.Stats(context.Background(), testUser, 365); err != nil {
		t.Errorf("days=365 should be accepted, got %v", err)
	}
}
