package repo

import (
	"context"
	"strconv"
	"time"

	dom "github.com/abdulaz06/medication-adherence-tracker/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LogFilter narrows a dose log listing. Zero values mean "no constraint".
type LogFilter struct {
	Start  *time.Time
	End    *time.Time
	ItemID int64
}

// DoseLogRepo provides dose log persistence. The (item_id, scheduled_date,
// dose_index) unique index makes Create fail with a 23505 on a duplicate
// slot; callers map that to a conflict.
type DoseLogRepo interface {
	Create(ctx context.Context, log dom.DoseLog) (dom.DoseLog, error)
	GetByID(ctx context.Context, userID, id int64) (dom.DoseLog, error)
	List(ctx context.Context, userID int64, f LogFilter) ([]dom.DoseLog, error)
	ListForDate(ctx context.Context, userID int64, date time.Time) ([]dom.DoseLog, error)
	ListInRange(ctx context.Context, userID int64, start, end time.Time) ([]dom.DoseLog, error)
	Update(ctx context.Context, userID, id int64, patch dom.DoseLog) (dom.DoseLog, error)
	Delete(ctx context.Context, userID, id int64) error
}

// PGDoseLogRepo implements DoseLogRepo with Postgres.
type PGDoseLogRepo struct {
	db *pgxpool.Pool
}

// NewPGDoseLogRepo returns a new PGDoseLogRepo.
func NewPGDoseLogRepo(db *pgxpool.Pool) *PGDoseLogRepo {
	return &PGDoseLogRepo{db: db}
}

const logColumns = `id, user_id, item_id, scheduled_date, dose_index, status, skip_reason, recorded_at`

func scanLog(row interface{ Scan(...any) error }) (dom.DoseLog, error) {
	var l dom.DoseLog
	err := row.Scan(&l.ID, &l.UserID, &l.ItemID, &l.ScheduledDate, &l.DoseIndex,
		&l.Status, &l.SkipReason, &l.RecordedAt)
	return l, err
}

func (r *PGDoseLogRepo) Create(ctx context.Context, log dom.DoseLog) (dom.DoseLog, error) {
	query := `
		INSERT INTO dose_logs (user_id, item_id, scheduled_date, dose_index, status, skip_reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + logColumns
	return scanLog(r.db.QueryRow(ctx, query,
		log.UserID, log.ItemID, log.ScheduledDate, log.DoseIndex, log.Status, log.SkipReason))
}

func (r *PGDoseLogRepo) GetByID(ctx context.Context, userID, id int64) (dom.DoseLog, error) {
	query := `SELECT ` + logColumns + ` FROM dose_logs WHERE id = $1 AND user_id = $2`
	return scanLog(r.db.QueryRow(ctx, query, id, userID))
}

func (r *PGDoseLogRepo) List(ctx context.Context, userID int64, f LogFilter) ([]dom.DoseLog, error) {
	query := `SELECT ` + logColumns + ` FROM dose_logs WHERE user_id = $1`
	args := []any{userID}
	if f.Start != nil {
		args = append(args, *f.Start)
		query += ` AND scheduled_date >= $` + itoa(len(args))
	}
	if f.End != nil {
		args = append(args, *f.End)
		query += ` AND scheduled_date <= $` + itoa(len(args))
	}
	if f.ItemID != 0 {
		args = append(args, f.ItemID)
		query += ` AND item_id = $` + itoa(len(args))
	}
	query += ` ORDER BY scheduled_date DESC, recorded_at DESC`
	return r.queryLogs(ctx, query, args...)
}

func (r *PGDoseLogRepo) ListForDate(ctx context.Context, userID int64, date time.Time) ([]dom.DoseLog, error) {
	query := `SELECT ` + logColumns + ` FROM dose_logs WHERE user_id = $1 AND scheduled_date = $2`
	return r.queryLogs(ctx, query, userID, date)
}

func (r *PGDoseLogRepo) ListInRange(ctx context.Context, userID int64, start, end time.Time) ([]dom.DoseLog, error) {
	query := `SELECT ` + logColumns + `
		FROM dose_logs WHERE user_id = $1 AND scheduled_date BETWEEN $2 AND $3`
	return r.queryLogs(ctx, query, userID, start, end)
}

func (r *PGDoseLogRepo) Update(ctx context.Context, userID, id int64, patch dom.DoseLog) (dom.DoseLog, error) {
	query := `
		UPDATE dose_logs SET status = $3, skip_reason = $4
		WHERE id = $1 AND user_id = $2
		RETURNING ` + logColumns
	return scanLog(r.db.QueryRow(ctx, query, id, userID, patch.Status, patch.SkipReason))
}

func (r *PGDoseLogRepo) Delete(ctx context.Context, userID, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM dose_logs WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}

func (r *PGDoseLogRepo) queryLogs(ctx context.Context, query string, args ...any) ([]dom.DoseLog, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.DoseLog
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func itoa(n int) string { return strconv.Itoa(n) }
