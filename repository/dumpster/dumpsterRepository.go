package dumpsterrepo

import (
	"context"
	"errors"

	"github.com/EstevanMarcatti/DISKFINAL2/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDuplicateSize maps the unique constraint on dumpster_types.size.
var ErrDuplicateSize = errors.New("dumpster size already exists")

type Repo interface {
	Insert(ctx context.Context, t *model.DumpsterType) error
	List(ctx context.Context) ([]model.DumpsterType, error)
	UpdatePrice(ctx context.Context, size model.DumpsterSize, price float64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type repo struct{ db *pgxpool.Pool }

func New(db *pgxpool.Pool) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, t *model.DumpsterType) error {
	const q = `
INSERT INTO dumpster_types (id, size, volume, price, created_at)
VALUES ($1,$2,$3,$4,$5)`
	_, err := r.db.Exec(ctx, q, t.ID, t.Size, t.Volume, t.Price, t.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrDuplicateSize
	}
	return err
}

func (r *repo) List(ctx context.Context) ([]model.DumpsterType, error) {
	const q = `
SELECT id, size, volume, price, created_at
FROM dumpster_types
ORDER BY price ASC`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.DumpsterType
	for rows.Next() {
		var t model.DumpsterType
		if err := rows.Scan(&t.ID, &t.Size, &t.Volume, &t.Price, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *repo) UpdatePrice(ctx context.Context, size model.DumpsterSize, price float64) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE dumpster_types SET price=$2 WHERE size=$1`, size, price)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM dumpster_types`).Scan(&n)
	return n, err
}
