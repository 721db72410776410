package templates

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// ErrTemplateNotFound is returned by Get for unknown ids.
var ErrTemplateNotFound = errors.New("templates: template not found")

// Registry stores template definitions by id.
type Registry struct {
	mu          sync.RWMutex
	definitions map[string]Definition
	fallback    string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{definitions: make(map[string]Definition)}
}

// NewBuiltinRegistry returns a registry holding the embedded catalog.
func NewBuiltinRegistry() (*Registry, error) {
	catalog, err := BuiltinCatalog()
	if err != nil {
		return nil, err
	}
	registry := NewRegistry()
	if err := registry.AddCatalog(catalog); err != nil {
		return nil, err
	}
	return registry, nil
}

// Register adds or replaces a definition. The first definition registered
// becomes the default.
func (r *Registry) Register(def Definition) error {
	def.ID = normalize(def.ID)
	if err := def.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(def.Name) == "" {
		def.Name = def.ID
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.definitions[def.ID] = def
	if r.fallback == "" {
		r.fallback = def.ID
	}
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(def Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// AddCatalog registers every definition in catalog and applies its default.
func (r *Registry) AddCatalog(catalog Catalog) error {
	for _, def := range catalog.Templates {
		if err := r.Register(def); err != nil {
			return err
		}
	}
	if catalog.Default != "" {
		return r.SetDefault(catalog.Default)
	}
	return nil
}

// SetDefault designates the template used when a lookup misses.
func (r *Registry) SetDefault(id string) error {
	id = normalize(id)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.definitions[id]; !ok {
		return fmt.Errorf("%w: default %q", ErrTemplateNotFound, id)
	}
	r.fallback = id
	return nil
}

// Default returns the default definition.
func (r *Registry) Default() (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[r.fallback]
	return def, ok
}

// Get retrieves a definition by id.
func (r *Registry) Get(id string) (Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[normalize(id)]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	return def, nil
}

// Resolve returns the definition for id, or the default definition with
// false when id is unknown or empty.
func (r *Registry) Resolve(id string) (Definition, bool) {
	if def, err := r.Get(id); err == nil {
		return def, true
	}
	def, _ := r.Default()
	return def, false
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, err := r.Get(id)
	return err == nil
}

// List returns every definition sorted by id.
func (r *Registry) List() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Definition, 0, len(r.definitions))
	for _, def := range r.definitions {
		out = append(out, def)
	}
	slices.SortFunc(out, func(a, b Definition) int { return strings.Compare(a.ID, b.ID) })
	return out
}

func normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
