package style

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

//go:embed themes/*.yaml
var embeddedThemes embed.FS

type manifestFile struct {
	Name     string                       `yaml:"name"`
	Version  string                       `yaml:"version"`
	Tokens   map[string]string            `yaml:"tokens"`
	Variants map[string]map[string]string `yaml:"variants"`
}

// BuiltinManifests loads the theme manifests shipped with the module.
func BuiltinManifests() ([]*theme.Manifest, error) {
	return LoadManifests(embeddedThemes, "themes")
}

// LoadManifests reads every *.yaml manifest under dir in fsys.
func LoadManifests(fsys fs.FS, dir string) ([]*theme.Manifest, error) {
	matches, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("style: list themes: %w", err)
	}
	out := make([]*theme.Manifest, 0, len(matches))
	for _, match := range matches {
		raw, err := fs.ReadFile(fsys, match)
		if err != nil {
			return nil, fmt.Errorf("style: read theme %s: %w", match, err)
		}
		var file manifestFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("style: parse theme %s: %w", match, err)
		}
		manifest := &theme.Manifest{
			Name:    file.Name,
			Version: file.Version,
			Tokens:  file.Tokens,
		}
		if len(file.Variants) > 0 {
			manifest.Variants = make(map[string]theme.Variant, len(file.Variants))
			for name, tokens := range file.Variants {
				manifest.Variants[name] = theme.Variant{Tokens: tokens}
			}
		}
		out = append(out, manifest)
	}
	return out, nil
}

// BuiltinSelector returns a selector over the built-in manifests with
// "classic" as default.
func BuiltinSelector() (*ManifestSelector, error) {
	manifests, err := BuiltinManifests()
	if err != nil {
		return nil, err
	}
	ordered := make([]*theme.Manifest, 0, len(manifests))
	for _, m := range manifests {
		if m.Name == "classic" {
			ordered = append([]*theme.Manifest{m}, ordered...)
			continue
		}
		ordered = append(ordered, m)
	}
	return NewManifestSelector(ordered...)
}
