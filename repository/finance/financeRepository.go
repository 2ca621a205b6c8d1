package financerepo

import (
	"context"

	"github.com/EstevanMarcatti/DISKFINAL2/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo interface {
	InsertPayment(ctx context.Context, p *model.Payment) error
	ListPayments(ctx context.Context) ([]model.Payment, error)
	CountPayments(ctx context.Context) (int64, error)

	InsertReceivable(ctx context.Context, rc *model.Receivable) error
	ListReceivables(ctx context.Context) ([]model.Receivable, error)
}

type repo struct{ db *pgxpool.Pool }

func New(db *pgxpool.Pool) Repo { return &repo{db} }

func (r *repo) InsertPayment(ctx context.Context, p *model.Payment) error {
	const q = `
INSERT INTO payments (id, account_name, amount, due_date, description, created_at)
VALUES ($1,$2,$3,$4,$5,$6)`
	_, err := r.db.Exec(ctx, q, p.ID, p.AccountName, p.Amount, p.DueDate, p.Description, p.CreatedAt)
	return err
}

func (r *repo) ListPayments(ctx context.Context) ([]model.Payment, error) {
	const q = `
SELECT id, account_name, amount, due_date, description, created_at
FROM payments
ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Payment
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.AccountName, &p.Amount, &p.DueDate, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *repo) CountPayments(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM payments`).Scan(&n)
	return n, err
}

func (r *repo) InsertReceivable(ctx context.Context, rc *model.Receivable) error {
	const q = `
INSERT INTO receivables (id, client_name, dumpster_code, rental_note_id, amount, received_date, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)`
	_, err := r.db.Exec(ctx, q,
		rc.ID, rc.ClientName, rc.DumpsterCode, rc.RentalNoteID, rc.Amount, rc.ReceivedDate, rc.CreatedAt)
	return err
}

func (r *repo) ListReceivables(ctx context.Context) ([]model.Receivable, error) {
	const q = `
SELECT id, client_name, dumpster_code, rental_note_id, amount, received_date, created_at
FROM receivables
ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Receivable
	for rows.Next() {
		var rc model.Receivable
		if err := rows.Scan(&rc.ID, &rc.ClientName, &rc.DumpsterCode, &rc.RentalNoteID,
			&rc.Amount, &rc.ReceivedDate, &rc.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rc)
	}
	return out, rows.Err()
}
