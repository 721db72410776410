// Package store persists resume documents for the preview server.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-resumegen/pkg/resume"
)

// ErrNotFound is returned for unknown document ids.
var ErrNotFound = errors.New("store: resume not found")

// Record is a stored document.
type Record struct {
	ID        string            `json:"id"`
	Data      resume.ResumeData `json:"data"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// Summary is the listing view of a record.
type Summary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store persists records.
type Store interface {
	// Get returns the record or ErrNotFound.
	Get(ctx context.Context, id string) (Record, error)
	// Save creates or replaces a record. An empty ID is assigned.
	Save(ctx context.Context, record Record) (Record, error)
	// Delete removes the record or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
	// List returns summaries ordered by id.
	List(ctx context.Context) ([]Summary, error)
	Close() error
}

// Open returns the store for kind: "memory", "sqlite" (dsn is a file path
// or ":memory:") or "postgres" (dsn is a connection URL).
func Open(ctx context.Context, kind, dsn string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "memory":
		return NewMemory(), nil
	case "sqlite":
		if dsn == "" {
			dsn = "resumegen.db"
		}
		return OpenSQLite(ctx, dsn)
	case "postgres":
		return ConnectPostgres(ctx, dsn)
	default:
		return nil, fmt.Errorf("store: unknown kind %q", kind)
	}
}

func prepare(record Record, now time.Time) Record {
	if strings.TrimSpace(record.ID) == "" {
		record.ID = resume.NewID()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now
	return record
}

func encode(data resume.ResumeData) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("store: encode resume: %w", err)
	}
	return raw, nil
}

func decode(raw []byte) (resume.ResumeData, error) {
	var data resume.ResumeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return resume.ResumeData{}, fmt.Errorf("store: decode resume: %w", err)
	}
	return data, nil
}
