package style

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

// Token names read from theme manifests.
const (
	TokenAccent          = "accent"
	TokenBrand           = "brand"
	TokenFontFamily      = "font-family"
	TokenFontSizeBody    = "font-size-body"
	TokenFontSizeTitle   = "font-size-title"
	TokenFontSizeSection = "font-size-section"
	TokenLineHeight      = "line-height"
	TokenColorText       = "color-text"
	TokenColorMuted      = "color-muted"
	TokenColorBorder     = "color-border"
	TokenColorBackground = "color-background"
	TokenSpacingSection  = "spacing-section"
	TokenSpacingItem     = "spacing-item"
)

// FromTokens maps theme tokens onto a partial config. Unknown tokens are
// ignored.
func FromTokens(tokens map[string]string) SectionStyleConfig {
	var cfg SectionStyleConfig
	if len(tokens) == 0 {
		return cfg
	}
	font := tokens[TokenFontFamily]
	cfg.Typography.Body = TextStyle{
		FontFamily: font,
		FontSize:   tokens[TokenFontSizeBody],
		LineHeight: tokens[TokenLineHeight],
		Color:      tokens[TokenColorText],
	}
	cfg.Typography.ItemTitle = TextStyle{
		FontFamily: font,
		FontSize:   tokens[TokenFontSizeTitle],
	}
	cfg.Typography.SectionTitle = TextStyle{
		FontFamily: font,
		FontSize:   tokens[TokenFontSizeSection],
	}
	cfg.Spacing.Section = tokens[TokenSpacingSection]
	cfg.Spacing.Item = tokens[TokenSpacingItem]
	cfg.Colors.Text.Primary = tokens[TokenColorText]
	cfg.Colors.Text.Muted = tokens[TokenColorMuted]
	cfg.Colors.Border = tokens[TokenColorBorder]
	cfg.Colors.Background = tokens[TokenColorBackground]
	return cfg
}

// AccentFromTokens returns the "accent" token, falling back to "brand".
func AccentFromTokens(tokens map[string]string) string {
	if accent := strings.TrimSpace(tokens[TokenAccent]); accent != "" {
		return accent
	}
	return strings.TrimSpace(tokens[TokenBrand])
}

// TokensFor merges a selection's variant tokens over its base tokens.
func TokensFor(selection *theme.Selection) map[string]string {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	out := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		out[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			out[key] = value
		}
	}
	return out
}

// CSSVars derives custom properties ("--accent") from tokens, sorted by name.
func CSSVars(tokens map[string]string) string {
	if len(tokens) == 0 {
		return ""
	}
	keys := make([]string, 0, len(tokens))
	for key := range tokens {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	decls := make([]Decl, 0, len(keys))
	for _, key := range keys {
		decls = append(decls, Decl{Property: "--" + key, Value: tokens[key]})
	}
	return Inline(decls...)
}

// ManifestSelector resolves themes from registered manifests.
type ManifestSelector struct {
	mu          sync.RWMutex
	manifests   map[string]*theme.Manifest
	defaultName string
}

var _ theme.ThemeSelector = (*ManifestSelector)(nil)

// NewManifestSelector registers manifests; the first one becomes the default.
func NewManifestSelector(manifests ...*theme.Manifest) (*ManifestSelector, error) {
	s := &ManifestSelector{manifests: make(map[string]*theme.Manifest)}
	for _, manifest := range manifests {
		if err := s.Register(manifest); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Register adds or replaces a manifest.
func (s *ManifestSelector) Register(manifest *theme.Manifest) error {
	if manifest == nil || strings.TrimSpace(manifest.Name) == "" {
		return fmt.Errorf("style: theme manifest name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	name := strings.TrimSpace(manifest.Name)
	s.manifests[name] = manifest
	if s.defaultName == "" {
		s.defaultName = name
	}
	return nil
}

// Names lists registered theme names.
func (s *ManifestSelector) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select returns the named theme, or the default theme when name is blank.
// An unknown variant resolves to the base manifest.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultName
	}
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("style: theme %q not registered", name)
	}
	variant = strings.TrimSpace(variant)
	if _, ok := manifest.Variants[variant]; !ok {
		variant = ""
	}
	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}
