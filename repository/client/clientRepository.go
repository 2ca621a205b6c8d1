package clientrepo

import (
	"context"
	"errors"

	"github.com/EstevanMarcatti/DISKFINAL2/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo interface {
	Create(ctx context.Context, c *model.Client) error
	List(ctx context.Context) ([]model.Client, error)
	ByID(ctx context.Context, id string) (*model.Client, error)
	Update(ctx context.Context, c *model.Client) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type repo struct{ db *pgxpool.Pool }

func New(db *pgxpool.Pool) Repo { return &repo{db} }

const cols = `id, name, address, phone, email, tax_id, secondary_address, notes, created_at`

func (r *repo) Create(ctx context.Context, c *model.Client) error {
	const q = `
INSERT INTO clients (` + cols + `)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`
	_, err := r.db.Exec(ctx, q,
		c.ID, c.Name, c.Address, c.Phone, c.Email, c.TaxID, c.SecondaryAddress, c.Notes, c.CreatedAt)
	return err
}

func (r *repo) List(ctx context.Context) ([]model.Client, error) {
	const q = `SELECT ` + cols + ` FROM clients ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Client
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email,
			&c.TaxID, &c.SecondaryAddress, &c.Notes, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id string) (*model.Client, error) {
	const q = `SELECT ` + cols + ` FROM clients WHERE id=$1`
	var c model.Client
	err := r.db.QueryRow(ctx, q, id).Scan(&c.ID, &c.Name, &c.Address, &c.Phone,
		&c.Email, &c.TaxID, &c.SecondaryAddress, &c.Notes, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) Update(ctx context.Context, c *model.Client) (bool, error) {
	const q = `
UPDATE clients
SET name=$2, address=$3, phone=$4, email=$5, tax_id=$6, secondary_address=$7, notes=$8
WHERE id=$1`
	tag, err := r.db.Exec(ctx, q,
		c.ID, c.Name, c.Address, c.Phone, c.Email, c.TaxID, c.SecondaryAddress, c.Notes)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes the client only. Rental notes keep their snapshot of the
// client data, so there is nothing to cascade.
func (r *repo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM clients`).Scan(&n)
	return n, err
}
