package rentalrepo

import (
	"context"

	"github.com/EstevanMarcatti/DISKFINAL2/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo interface {
	Insert(ctx context.Context, n *model.RentalNote) error
	List(ctx context.Context, status model.RentalStatus) ([]model.RentalNote, error)
	ListByClient(ctx context.Context, clientID string) ([]model.RentalNote, error)
	ByID(ctx context.Context, id string) (*model.RentalNote, error)
	SetStatus(ctx context.Context, id string, status model.RentalStatus) (bool, error)
	SetPaid(ctx context.Context, id string) (bool, error)
	SetCoordinates(ctx context.Context, id string, lat, lon float64) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type repo struct{ db *pgxpool.Pool }

func New(db *pgxpool.Pool) Repo { return &repo{db} }

const cols = `id, client_id, client_name, client_address, client_phone, dumpster_code,
	dumpster_size, rental_date, description, status, is_paid, price, latitude, longitude, created_at`

func (r *repo) Insert(ctx context.Context, n *model.RentalNote) error {
	const q = `
INSERT INTO rental_notes (` + cols + `)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`
	_, err := r.db.Exec(ctx, q,
		n.ID, n.ClientID, n.ClientName, n.ClientAddress, n.ClientPhone, n.DumpsterCode,
		n.DumpsterSize, n.RentalDate, n.Description, n.Status, n.IsPaid, n.Price,
		n.Latitude, n.Longitude, n.CreatedAt)
	return err
}

func scanNote(rows pgx.Rows) (model.RentalNote, error) {
	var n model.RentalNote
	err := rows.Scan(&n.ID, &n.ClientID, &n.ClientName, &n.ClientAddress, &n.ClientPhone,
		&n.DumpsterCode, &n.DumpsterSize, &n.RentalDate, &n.Description, &n.Status,
		&n.IsPaid, &n.Price, &n.Latitude, &n.Longitude, &n.CreatedAt)
	return n, err
}

// List returns all notes, or only the given status when it is non-empty.
func (r *repo) List(ctx context.Context, status model.RentalStatus) ([]model.RentalNote, error) {
	q := `SELECT ` + cols + ` FROM rental_notes`
	args := []any{}
	if status != "" {
		q += ` WHERE status=$1`
		args = append(args, status)
	}
	q += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RentalNote
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *repo) ListByClient(ctx context.Context, clientID string) ([]model.RentalNote, error) {
	const q = `SELECT ` + cols + ` FROM rental_notes WHERE client_id=$1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, q, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RentalNote
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id string) (*model.RentalNote, error) {
	const q = `SELECT ` + cols + ` FROM rental_notes WHERE id=$1`
	rows, err := r.db.Query(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	n, err := scanNote(rows)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *repo) SetStatus(ctx context.Context, id string, status model.RentalStatus) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE rental_notes SET status=$2 WHERE id=$1`, id, status)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repo) SetPaid(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE rental_notes SET is_paid=TRUE WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repo) SetCoordinates(ctx context.Context, id string, lat, lon float64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE rental_notes SET latitude=$2, longitude=$3 WHERE id=$1`, id, lat, lon)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM rental_notes WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
