package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS resumes (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	data TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// SQLite stores records in a single table through modernc.org/sqlite.
type SQLite struct {
	db  *sql.DB
	now func() time.Time
}

var _ Store = (*SQLite)(nil)

// OpenSQLite opens (and migrates) the database at dsn.
func OpenSQLite(ctx context.Context, dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	// One connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migrate sqlite: %w", err)
	}
	return &SQLite{db: db, now: time.Now}, nil
}

func (s *SQLite) Get(ctx context.Context, id string) (Record, error) {
	var (
		raw                  string
		createdAt, updatedAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT data, created_at, updated_at FROM resumes WHERE id = ?`, id,
	).Scan(&raw, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("store: get %s: %w", id, err)
	}
	data, err := decode([]byte(raw))
	if err != nil {
		return Record{}, err
	}
	record := Record{ID: id, Data: data}
	record.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	record.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return record, nil
}

func (s *SQLite) Save(ctx context.Context, record Record) (Record, error) {
	record = prepare(record, s.now().UTC())
	raw, err := encode(record.Data)
	if err != nil {
		return Record{}, err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO resumes (id, name, data, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET name = excluded.name, data = excluded.data, updated_at = excluded.updated_at`,
		record.ID, record.Data.PersonalInfo.FullName, string(raw),
		record.CreatedAt.Format(time.RFC3339Nano), record.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Record{}, fmt.Errorf("store: save %s: %w", record.ID, err)
	}
	return s.Get(ctx, record.ID)
}

func (s *SQLite) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM resumes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLite) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, updated_at FROM resumes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var summary Summary
		var updatedAt string
		if err := rows.Scan(&summary.ID, &summary.Name, &updatedAt); err != nil {
			return nil, fmt.Errorf("store: scan: %w", err)
		}
		summary.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
		out = append(out, summary)
	}
	return out, rows.Err()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
