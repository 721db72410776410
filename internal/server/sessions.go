package server

import (
	"context"
	"sync"

	"github.com/goliatone/go-resumegen/internal/store"
	"github.com/goliatone/go-resumegen/pkg/edit"
)

// sessionEntry serialises mutate-then-persist for one document.
type sessionEntry struct {
	mu      sync.Mutex
	session *edit.MemorySession
	created store.Record
}

// sessions caches one edit session per stored document.
type sessions struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
	store   store.Store
}

func newSessions(s store.Store) *sessions {
	return &sessions{entries: make(map[string]*sessionEntry), store: s}
}

func (c *sessions) get(ctx context.Context, id string) (*sessionEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.entries[id]; ok {
		return entry, nil
	}
	record, err := c.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	entry := &sessionEntry{session: edit.NewMemorySession(record.Data), created: record}
	c.entries[id] = entry
	return entry, nil
}

func (c *sessions) forget(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
}

// mutate applies fn under the entry lock and persists the result. A failed
// save restores the session to its state before fn.
func (c *sessions) mutate(ctx context.Context, id string, fn func(*edit.MemorySession) (edit.Change, error)) (edit.Change, error) {
	entry, err := c.get(ctx, id)
	if err != nil {
		return edit.Change{}, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	before := entry.session.Data()
	change, err := fn(entry.session)
	if err != nil {
		return edit.Change{}, err
	}
	record := entry.created
	record.Data = entry.session.Data()
	if _, err := c.store.Save(ctx, record); err != nil {
		entry.session.Replace(before)
		return edit.Change{}, err
	}
	return change, nil
}
