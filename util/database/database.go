package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DB struct{ Pool *pgxpool.Pool }

func New(ctx context.Context, dsn string) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	p, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, err
	}
	return &DB{Pool: p}, nil
}

func (d *DB) Close() { d.Pool.Close() }

// One statement per entry: pgx's extended protocol rejects
// multi-statement strings.
var schema = []string{`
CREATE TABLE IF NOT EXISTS clients (
	id                TEXT PRIMARY KEY,
	name              TEXT NOT NULL,
	address           TEXT NOT NULL,
	phone             TEXT NOT NULL DEFAULT '',
	email             TEXT NOT NULL DEFAULT '',
	tax_id            TEXT NOT NULL DEFAULT '',
	secondary_address TEXT NOT NULL DEFAULT '',
	notes             TEXT NOT NULL DEFAULT '',
	created_at        TIMESTAMPTZ NOT NULL
)`, `
CREATE TABLE IF NOT EXISTS dumpster_types (
	id         TEXT PRIMARY KEY,
	size       TEXT NOT NULL UNIQUE,
	volume     TEXT NOT NULL,
	price      DOUBLE PRECISION NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
)`, `
CREATE TABLE IF NOT EXISTS rental_notes (
	id             TEXT PRIMARY KEY,
	client_id      TEXT,
	client_name    TEXT NOT NULL,
	client_address TEXT NOT NULL,
	client_phone   TEXT NOT NULL DEFAULT '',
	dumpster_code  TEXT NOT NULL,
	dumpster_size  TEXT NOT NULL,
	rental_date    TEXT NOT NULL,
	description    TEXT NOT NULL DEFAULT '',
	status         TEXT NOT NULL,
	is_paid        BOOLEAN NOT NULL DEFAULT FALSE,
	price          DOUBLE PRECISION NOT NULL,
	latitude       DOUBLE PRECISION,
	longitude      DOUBLE PRECISION,
	created_at     TIMESTAMPTZ NOT NULL
)`, `
CREATE TABLE IF NOT EXISTS payments (
	id           TEXT PRIMARY KEY,
	account_name TEXT NOT NULL,
	amount       DOUBLE PRECISION NOT NULL,
	due_date     TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL
)`, `
CREATE TABLE IF NOT EXISTS receivables (
	id             TEXT PRIMARY KEY,
	client_name    TEXT NOT NULL,
	dumpster_code  TEXT NOT NULL DEFAULT '',
	rental_note_id TEXT,
	amount         DOUBLE PRECISION NOT NULL,
	received_date  TEXT NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL
)`, `
CREATE TABLE IF NOT EXISTS landfills (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	address    TEXT NOT NULL,
	latitude   DOUBLE PRECISION,
	longitude  DOUBLE PRECISION,
	created_at TIMESTAMPTZ NOT NULL
)`}

// Migrate creates the tables on first start. Statements are all
// IF NOT EXISTS so re-running is harmless.
func (d *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := d.Pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
