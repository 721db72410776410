package render

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownFormat is returned for format names or file extensions with no
// registered renderer.
var ErrUnknownFormat = errors.New("render: unknown format")

// Registry maps format names and file extensions to output renderers.
type Registry struct {
	mu         sync.RWMutex
	byName     map[string]Renderer
	extensions map[string]string
}

// NewRegistry returns a registry that already serves HTML (.html, .htm).
func NewRegistry() *Registry {
	r := &Registry{
		byName:     make(map[string]Renderer),
		extensions: make(map[string]string),
	}
	if err := r.Register(HTML{}, ".html", ".htm"); err != nil {
		panic(err)
	}
	return r
}

// Register adds renderer under its Name and claims the given file
// extensions. Names and extensions must be unique.
func (r *Registry) Register(renderer Renderer, extensions ...string) error {
	if renderer == nil {
		return errors.New("render: renderer is required")
	}
	name := formatKey(renderer.Name())
	if name == "" {
		return errors.New("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byName[name]; taken {
		return fmt.Errorf("render: format %q already registered", name)
	}
	exts := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = extensionKey(ext)
		if owner, taken := r.extensions[ext]; taken {
			return fmt.Errorf("render: extension %q already claimed by %q", ext, owner)
		}
		exts = append(exts, ext)
	}
	r.byName[name] = renderer
	for _, ext := range exts {
		r.extensions[ext] = name
	}
	return nil
}

// Get returns the renderer for a format name, case-insensitively.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if renderer, ok := r.byName[formatKey(name)]; ok {
		return renderer, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// ForPath picks the renderer claiming path's extension.
func (r *Registry) ForPath(path string) (Renderer, error) {
	ext := extensionKey(filepath.Ext(path))
	r.mu.RLock()
	defer r.mu.RUnlock()
	if name, ok := r.extensions[ext]; ok {
		return r.byName[name], nil
	}
	return nil, fmt.Errorf("%w: no renderer for %q", ErrUnknownFormat, path)
}

// List returns the registered format names in order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a format is registered.
func (r *Registry) Has(name string) bool {
	_, err := r.Get(name)
	return err == nil
}

func formatKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func extensionKey(ext string) string {
	ext = formatKey(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
