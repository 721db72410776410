// Package templates holds the resume template catalog: definitions as pure
// data (which shell, theme, block order and section variants a template
// uses), the pongo2 page shells they render through, and the browser runtime
// served alongside editable previews.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-resumegen/pkg/sections/blocks"
)

//go:embed catalog.yaml shells/*.tmpl assets/*.css assets/*.js
var embedded embed.FS

// Shell names.
const (
	ShellSingle  = "single"
	ShellSidebar = "sidebar"
	ShellBanner  = "banner"
)

// Definition describes one resume template.
type Definition struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Shell       string `yaml:"shell" json:"shell"`

	// Theme and ThemeVariant select a go-theme manifest for tokens.
	Theme        string `yaml:"theme,omitempty" json:"theme,omitempty"`
	ThemeVariant string `yaml:"themeVariant,omitempty" json:"themeVariant,omitempty"`
	// Accent and Font override the theme tokens.
	Accent string `yaml:"accent,omitempty" json:"accent,omitempty"`
	Font   string `yaml:"font,omitempty" json:"font,omitempty"`

	// Variant tags may use legacy names; unknown tags fall back to the
	// section default at render time.
	AchievementsVariant string `yaml:"achievementsVariant,omitempty" json:"achievementsVariant,omitempty"`
	SkillsVariant       string `yaml:"skillsVariant,omitempty" json:"skillsVariant,omitempty"`

	// Order lists the main column blocks; Sidebar is used by the sidebar
	// shell only and is appended to Order by the others.
	Order   []string `yaml:"order" json:"order"`
	Sidebar []string `yaml:"sidebar,omitempty" json:"sidebar,omitempty"`
}

// Variants maps block names to the variant tags this template uses.
func (d Definition) Variants() map[string]string {
	return map[string]string{
		blocks.NameAchievements: d.AchievementsVariant,
		blocks.NameSkills:       d.SkillsVariant,
	}
}

// Layout returns the main and side block lists for the definition's shell.
func (d Definition) Layout() (main, side []string) {
	if d.Shell == ShellSidebar {
		return slices.Clone(d.Order), slices.Clone(d.Sidebar)
	}
	return append(slices.Clone(d.Order), d.Sidebar...), nil
}

// Validate checks the definition's shell and block names.
func (d Definition) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("templates: id is required")
	}
	switch d.Shell {
	case ShellSingle, ShellSidebar, ShellBanner:
	default:
		return fmt.Errorf("templates: %s: unknown shell %q", d.ID, d.Shell)
	}
	known := blocks.Names()
	for _, name := range append(slices.Clone(d.Order), d.Sidebar...) {
		if name == blocks.NameHeader {
			return fmt.Errorf("templates: %s: header is placed by the shell", d.ID)
		}
		if !slices.Contains(known, name) {
			return fmt.Errorf("templates: %s: unknown block %q", d.ID, name)
		}
	}
	return nil
}

// Catalog is the on-disk shape of a template catalog.
type Catalog struct {
	Default   string       `yaml:"default" json:"default"`
	Templates []Definition `yaml:"templates" json:"templates"`
}

// DecodeCatalog parses a YAML catalog.
func DecodeCatalog(r io.Reader) (Catalog, error) {
	var catalog Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&catalog); err != nil {
		return Catalog{}, fmt.Errorf("templates: decode catalog: %w", err)
	}
	return catalog, nil
}

// BuiltinCatalog returns the embedded catalog.
func BuiltinCatalog() (Catalog, error) {
	raw, err := embedded.ReadFile("catalog.yaml")
	if err != nil {
		return Catalog{}, fmt.Errorf("templates: read embedded catalog: %w", err)
	}
	return DecodeCatalog(bytes.NewReader(raw))
}

// LoadDir reads every *.yaml catalog file in dir.
func LoadDir(fsys fs.FS, dir string) ([]Catalog, error) {
	matches, err := fs.Glob(fsys, filepath.ToSlash(filepath.Join(dir, "*.yaml")))
	if err != nil {
		return nil, fmt.Errorf("templates: glob %s: %w", dir, err)
	}
	slices.Sort(matches)
	catalogs := make([]Catalog, 0, len(matches))
	for _, match := range matches {
		raw, err := fs.ReadFile(fsys, match)
		if err != nil {
			return nil, fmt.Errorf("templates: read %s: %w", match, err)
		}
		catalog, err := DecodeCatalog(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("templates: %s: %w", match, err)
		}
		catalogs = append(catalogs, catalog)
	}
	return catalogs, nil
}

// ShellsFS exposes the embedded page shells.
func ShellsFS() fs.FS {
	sub, err := fs.Sub(embedded, "shells")
	if err != nil {
		return embedded
	}
	return sub
}

// RuntimeFS exposes the stylesheet and editor script used by previews.
func RuntimeFS() fs.FS {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		return embedded
	}
	return sub
}

// BaseCSS returns the shared page stylesheet.
func BaseCSS() string {
	raw, _ := fs.ReadFile(RuntimeFS(), "base.css")
	return string(raw)
}

// EditorJS returns the inline editing runtime.
func EditorJS() string {
	raw, _ := fs.ReadFile(RuntimeFS(), "editor.js")
	return string(raw)
}
