package landfillrepo

import (
	"context"

	"github.com/EstevanMarcatti/DISKFINAL2/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo interface {
	Insert(ctx context.Context, l *model.Landfill) error
	List(ctx context.Context) ([]model.Landfill, error)
}

type repo struct{ db *pgxpool.Pool }

func New(db *pgxpool.Pool) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, l *model.Landfill) error {
	const q = `
INSERT INTO landfills (id, name, address, latitude, longitude, created_at)
VALUES ($1,$2,$3,$4,$5,$6)`
	_, err := r.db.Exec(ctx, q, l.ID, l.Name, l.Address, l.Latitude, l.Longitude, l.CreatedAt)
	return err
}

func (r *repo) List(ctx context.Context) ([]model.Landfill, error) {
	const q = `
SELECT id, name, address, latitude, longitude, created_at
FROM landfills
ORDER BY name ASC`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Landfill
	for rows.Next() {
		var l model.Landfill
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.Latitude, &l.Longitude, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
