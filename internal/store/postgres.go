package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `CREATE TABLE IF NOT EXISTS resumes (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	data JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Postgres stores records in a JSONB column through a pgx pool.
type Postgres struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

var _ Store = (*Postgres)(nil)

// ConnectPostgres opens a pool, verifies it and migrates the schema.
func ConnectPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("store: database url is required")
	}
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("store: connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: migrate postgres: %w", err)
	}
	return &Postgres{pool: pool, now: time.Now}, nil
}

func (p *Postgres) Get(ctx context.Context, id string) (Record, error) {
	var raw []byte
	record := Record{ID: id}
	err := p.pool.QueryRow(ctx,
		`SELECT data, created_at, updated_at FROM resumes WHERE id = $1`, id,
	).Scan(&raw, &record.CreatedAt, &record.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("store: get %s: %w", id, err)
	}
	if record.Data, err = decode(raw); err != nil {
		return Record{}, err
	}
	return record, nil
}

func (p *Postgres) Save(ctx context.Context, record Record) (Record, error) {
	record = prepare(record, p.now().UTC())
	raw, err := encode(record.Data)
	if err != nil {
		return Record{}, err
	}
	err = p.pool.QueryRow(ctx,
		`INSERT INTO resumes (id, name, data, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET name = $2, data = $3, updated_at = $5
		 RETURNING created_at`,
		record.ID, record.Data.PersonalInfo.FullName, raw, record.CreatedAt, record.UpdatedAt,
	).Scan(&record.CreatedAt)
	if err != nil {
		return Record{}, fmt.Errorf("store: save %s: %w", record.ID, err)
	}
	return record, nil
}

func (p *Postgres) Delete(ctx context.Context, id string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) List(ctx context.Context) ([]Summary, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, name, updated_at FROM resumes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var summary Summary
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.UpdatedAt); err != nil {
			return nil, fmt.Errorf("store: scan: %w", err)
		}
		out = append(out, summary)
	}
	return out, rows.Err()
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
