// Package edit owns resume documents while they are being edited inline. A
// Session is the explicit replacement for an ambient edit context: renderers
// receive it (or callbacks bound from it) as a parameter and route every
// mutation through it.
package edit

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-resumegen/pkg/resume"
)

// ChangeKind classifies a mutation.
type ChangeKind string

const (
	ChangeSet    ChangeKind = "set"
	ChangeAdd    ChangeKind = "add"
	ChangeRemove ChangeKind = "remove"
)

// Change describes an applied mutation.
type Change struct {
	Kind    ChangeKind `json:"kind"`
	Path    string     `json:"path"`
	ItemID  string     `json:"itemId,omitempty"`
	Version uint64     `json:"version"`
}

// Session is the mutation surface consumed by editable renderers.
type Session interface {
	// Data returns a snapshot of the current document.
	Data() resume.ResumeData
	// SetValue writes a text value at path.
	SetValue(path, value string) error
	// AddItem appends a placeholder item to the list at listPath and returns
	// its id.
	AddItem(listPath string) (string, error)
	// RemoveItem removes the item with id from the list at listPath.
	RemoveItem(listPath, id string) error
	// Version increases on every applied mutation.
	Version() uint64
}

// IndexRemover is implemented by sessions that can remove items by position.
type IndexRemover interface {
	RemoveIndex(listPath string, index int) error
}

// Listener observes applied changes.
type Listener func(Change)

// MemorySession keeps the document in memory. It is safe for concurrent use.
type MemorySession struct {
	mu        sync.RWMutex
	data      resume.ResumeData
	version   uint64
	listeners []Listener
}

var (
	_ Session      = (*MemorySession)(nil)
	_ IndexRemover = (*MemorySession)(nil)
)

// NewMemorySession copies data into a new session.
func NewMemorySession(data resume.ResumeData) *MemorySession {
	return &MemorySession{data: data.Clone()}
}

// Data returns a deep copy of the document.
func (s *MemorySession) Data() resume.ResumeData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Version reports the number of applied mutations.
func (s *MemorySession) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Subscribe registers a listener invoked after each applied change.
func (s *MemorySession) Subscribe(listener Listener) {
	if listener == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

func (s *MemorySession) SetValue(path, value string) error {
	s.mu.Lock()
	if err := resume.Set(&s.data, path, value); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("edit: set %q: %w", path, err)
	}
	change := s.commitLocked(Change{Kind: ChangeSet, Path: path})
	listeners := s.listeners
	s.mu.Unlock()

	notify(listeners, change)
	return nil
}

func (s *MemorySession) AddItem(listPath string) (string, error) {
	s.mu.Lock()
	id, err := resume.AppendItem(&s.data, listPath)
	if err != nil {
		s.mu.Unlock()
		return "", fmt.Errorf("edit: add to %q: %w", listPath, err)
	}
	change := s.commitLocked(Change{Kind: ChangeAdd, Path: listPath, ItemID: id})
	listeners := s.listeners
	s.mu.Unlock()

	notify(listeners, change)
	return id, nil
}

func (s *MemorySession) RemoveItem(listPath, id string) error {
	s.mu.Lock()
	if err := resume.RemoveItem(&s.data, listPath, id); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("edit: remove from %q: %w", listPath, err)
	}
	change := s.commitLocked(Change{Kind: ChangeRemove, Path: listPath, ItemID: id})
	listeners := s.listeners
	s.mu.Unlock()

	notify(listeners, change)
	return nil
}

// RemoveIndex removes the item at index from the list at listPath. Text
// lists such as bullet points have no ids and are addressed this way.
func (s *MemorySession) RemoveIndex(listPath string, index int) error {
	s.mu.Lock()
	if err := resume.RemoveIndex(&s.data, listPath, index); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("edit: remove from %q: %w", listPath, err)
	}
	change := s.commitLocked(Change{Kind: ChangeRemove, Path: resume.JoinPath(listPath, index)})
	listeners := s.listeners
	s.mu.Unlock()

	notify(listeners, change)
	return nil
}

// Replace swaps the whole document, e.g. after the source file changed on
// disk.
func (s *MemorySession) Replace(data resume.ResumeData) {
	s.mu.Lock()
	s.data = data.Clone()
	change := s.commitLocked(Change{Kind: ChangeSet, Path: "$"})
	listeners := s.listeners
	s.mu.Unlock()

	notify(listeners, change)
}

func (s *MemorySession) commitLocked(change Change) Change {
	s.version++
	change.Version = s.version
	return change
}

func notify(listeners []Listener, change Change) {
	for _, listener := range listeners {
		listener(change)
	}
}
