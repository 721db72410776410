package store

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"
)

// Memory keeps records in process.
type Memory struct {
	mu      sync.RWMutex
	records map[string]Record
	now     func() time.Time
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string]Record), now: time.Now}
}

func (m *Memory) Get(_ context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.records[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	record.Data = record.Data.Clone()
	return record, nil
}

func (m *Memory) Save(_ context.Context, record Record) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.records[record.ID]; ok && record.CreatedAt.IsZero() {
		record.CreatedAt = existing.CreatedAt
	}
	record = prepare(record, m.now().UTC())
	record.Data = record.Data.Clone()
	m.records[record.ID] = record
	return record, nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return ErrNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *Memory) List(_ context.Context) ([]Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Summary, 0, len(m.records))
	for _, record := range m.records {
		out = append(out, Summary{ID: record.ID, Name: record.Data.PersonalInfo.FullName, UpdatedAt: record.UpdatedAt})
	}
	slices.SortFunc(out, func(a, b Summary) int { return strings.Compare(a.ID, b.ID) })
	return out, nil
}

func (m *Memory) Close() error { return nil }
