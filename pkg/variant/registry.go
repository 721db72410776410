// Package variant implements the tag → layout dispatch table shared by every
// section type. A registry maps canonical tags and their synonyms to one
// layout each and falls back to a designated default when a tag is unknown.
package variant

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Layout renders one visual arrangement of a section's props.
type Layout[P any] func(buf *bytes.Buffer, props P) error

// Entry describes a registered layout.
type Entry[P any] struct {
	Tag         string
	Description string
	Layout      Layout[P]
	Aliases     []string
}

// Registry tracks layouts keyed by canonical tag plus any number of aliases.
type Registry[P any] struct {
	mu       sync.RWMutex
	section  string
	entries  map[string]Entry[P]
	aliases  map[string]string
	fallback string
}

// New creates an empty registry for the named section type.
func New[P any](section string) *Registry[P] {
	return &Registry[P]{
		section: normalize(section),
		entries: make(map[string]Entry[P]),
		aliases: make(map[string]string),
	}
}

// Section returns the section type the registry dispatches for.
func (r *Registry[P]) Section() string {
	return r.section
}

// Register associates a layout with a canonical tag and optional aliases.
// Existing entries are replaced.
func (r *Registry[P]) Register(entry Entry[P]) error {
	tag := normalize(entry.Tag)
	if tag == "" {
		return fmt.Errorf("variant: %s: tag is required", r.section)
	}
	if entry.Layout == nil {
		return fmt.Errorf("variant: %s: layout for %q is nil", r.section, tag)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry.Tag = tag
	entry.Aliases = nil
	r.entries[tag] = entry
	r.aliases[tag] = tag
	return nil
}

// MustRegister mirrors Register but panics on error, simplifying default
// registry setup.
func (r *Registry[P]) MustRegister(entry Entry[P], aliases ...string) {
	if err := r.Register(entry); err != nil {
		panic(err)
	}
	for _, alias := range append(slices.Clone(entry.Aliases), aliases...) {
		if err := r.Alias(alias, entry.Tag); err != nil {
			panic(err)
		}
	}
}

// Alias maps an additional tag onto a registered canonical tag.
func (r *Registry[P]) Alias(alias, tag string) error {
	alias, tag = normalize(alias), normalize(tag)
	if alias == "" {
		return fmt.Errorf("variant: %s: alias is required", r.section)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	canonical, ok := r.aliases[tag]
	if !ok {
		return fmt.Errorf("variant: %s: alias %q targets unknown tag %q", r.section, alias, tag)
	}
	if existing, taken := r.entries[alias]; taken && existing.Tag != canonical {
		return fmt.Errorf("variant: %s: alias %q shadows registered tag", r.section, alias)
	}
	r.aliases[alias] = canonical
	return nil
}

// SetDefault designates the layout used when a tag cannot be resolved.
func (r *Registry[P]) SetDefault(tag string) error {
	tag = normalize(tag)

	r.mu.Lock()
	defer r.mu.Unlock()

	canonical, ok := r.aliases[tag]
	if !ok {
		return fmt.Errorf("variant: %s: default %q is not registered", r.section, tag)
	}
	r.fallback = canonical
	return nil
}

// Default returns the canonical default tag.
func (r *Registry[P]) Default() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fallback
}

// Canonical reports the canonical tag a tag or alias maps to.
func (r *Registry[P]) Canonical(tag string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	canonical, ok := r.aliases[normalize(tag)]
	return canonical, ok
}

// Resolve returns the entry for tag. The boolean is false when the tag was
// unknown or empty and the default layout was returned instead.
func (r *Registry[P]) Resolve(tag string) (Entry[P], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if canonical, ok := r.aliases[normalize(tag)]; ok {
		return r.withAliases(r.entries[canonical]), true
	}
	if r.fallback == "" {
		return Entry[P]{}, false
	}
	return r.withAliases(r.entries[r.fallback]), false
}

// Render dispatches props to the layout registered for tag, forwarding them
// unchanged.
func (r *Registry[P]) Render(buf *bytes.Buffer, tag string, props P) error {
	if buf == nil {
		return fmt.Errorf("variant: %s: buffer is nil", r.section)
	}
	entry, _ := r.Resolve(tag)
	if entry.Layout == nil {
		return fmt.Errorf("variant: %s: no layout for %q and no default", r.section, tag)
	}
	return entry.Layout(buf, props)
}

// Tags returns the sorted canonical tags.
func (r *Registry[P]) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.entries))
	for tag := range r.entries {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// Entries returns every entry, with its aliases, sorted by tag.
func (r *Registry[P]) Entries() []Entry[P] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry[P], 0, len(r.entries))
	for _, entry := range r.entries {
		out = append(out, r.withAliases(entry))
	}
	slices.SortFunc(out, func(a, b Entry[P]) int { return strings.Compare(a.Tag, b.Tag) })
	return out
}

// Clone returns a copy of the registry to allow isolated mutations.
func (r *Registry[P]) Clone() *Registry[P] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := New[P](r.section)
	for tag, entry := range r.entries {
		cloned.entries[tag] = entry
	}
	for alias, tag := range r.aliases {
		cloned.aliases[alias] = tag
	}
	cloned.fallback = r.fallback
	return cloned
}

func (r *Registry[P]) withAliases(entry Entry[P]) Entry[P] {
	var aliases []string
	for alias, tag := range r.aliases {
		if tag == entry.Tag && alias != tag {
			aliases = append(aliases, alias)
		}
	}
	slices.Sort(aliases)
	entry.Aliases = aliases
	return entry
}

func normalize(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
