package repo

import (
	"context"

	dom "github.com/abdulaz06/medication-adherence-tracker/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ItemRepo provides item persistence. Every query is scoped to the owning
// user so a caller can never see another user's items.
type ItemRepo interface {
	Create(ctx context.Context, item dom.Item) (dom.Item, error)
	GetByID(ctx context.Context, userID, id int64) (dom.Item, error)
	List(ctx context.Context, userID int64, activeOnly bool) ([]dom.Item, error)
	Update(ctx context.Context, userID, id int64, patch dom.Item) (dom.Item, error)
	Delete(ctx context.Context, userID, id int64) error
}

// PGItemRepo implements ItemRepo with Postgres.
type PGItemRepo struct {
	db *pgxpool.Pool
}

// NewPGItemRepo returns a new PGItemRepo.
func NewPGItemRepo(db *pgxpool.Pool) *PGItemRepo {
	return &PGItemRepo{db: db}
}

const itemColumns = `id, user_id, name, type, doses_per_day, schedule_days, notes, active`

func scanItem(row interface{ Scan(...any) error }) (dom.Item, error) {
	var it dom.Item
	err := row.Scan(&it.ID, &it.UserID, &it.Name, &it.Type, &it.DosesPerDay,
		&it.Schedule, &it.Notes, &it.Active)
	return it, err
}

func (r *PGItemRepo) Create(ctx context.Context, item dom.Item) (dom.Item, error) {
	query := `
		INSERT INTO items (user_id, name, type, doses_per_day, schedule_days, notes, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + itemColumns
	return scanItem(r.db.QueryRow(ctx, query,
		item.UserID, item.Name, item.Type, item.DosesPerDay, item.Schedule, item.Notes, item.Active))
}

func (r *PGItemRepo) GetByID(ctx context.Context, userID, id int64) (dom.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 AND user_id = $2`
	return scanItem(r.db.QueryRow(ctx, query, id, userID))
}

func (r *PGItemRepo) List(ctx context.Context, userID int64, activeOnly bool) ([]dom.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE user_id = $1`
	if activeOnly {
		query += ` AND active = TRUE`
	}
	query += ` ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func (r *PGItemRepo) Update(ctx context.Context, userID, id int64, patch dom.Item) (dom.Item, error) {
	query := `
		UPDATE items
		SET name = $3, type = $4, doses_per_day = $5, schedule_days = $6, notes = $7, active = $8
		WHERE id = $1 AND user_id = $2
		RETURNING ` + itemColumns
	return scanItem(r.db.QueryRow(ctx, query, id, userID,
		patch.Name, patch.Type, patch.DosesPerDay, patch.Schedule, patch.Notes, patch.Active))
}

func (r *PGItemRepo) Delete(ctx context.Context, userID, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}
