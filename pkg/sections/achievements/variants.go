package achievements

import (
	"bytes"

	"github.com/goliatone/go-resumegen/pkg/variant"
)

// Section is the section type name used in variant tags and routes.
const Section = "achievements"

// Canonical layout tags.
const (
	VariantStandard = "standard"
	VariantBullets  = "bullets"
	VariantNumbered = "numbered"
	VariantTimeline = "timeline"
	VariantCards    = "cards"
	VariantMetrics  = "metrics"
	VariantBoxed    = "boxed"
	VariantMinimal  = "minimal"
	VariantBadges   = "badges"
	VariantCompact  = "compact"
	VariantList     = "list"
)

// NewRegistry constructs a registry pre-populated with every built-in layout
// and its legacy tags. Each layout x also answers to "achievements-x".
func NewRegistry() *variant.Registry[Props] {
	registry := variant.New[Props](Section)
	register := func(tag, description string, layout variant.Layout[Props], aliases ...string) {
		aliases = append([]string{Section + "-" + tag}, aliases...)
		registry.MustRegister(variant.Entry[Props]{Tag: tag, Description: description, Layout: layout}, aliases...)
	}

	register(VariantStandard, "Title over description", renderStandard, "default")
	register(VariantBullets, "Accent bullet list", renderBullets)
	register(VariantNumbered, "Numbered circles", renderNumbered, "circles")
	register(VariantTimeline, "Vertical timeline", renderTimeline)
	register(VariantCards, "Card grid", renderCards, "grid")
	register(VariantMetrics, "Metric tiles", renderMetrics, "tiles", "stats")
	register(VariantBoxed, "Boxed list", renderBoxed)
	register(VariantMinimal, "Minimal stacked text", renderMinimal, "stacked")
	register(VariantBadges, "Badge grid", renderBadges, "tags")
	register(VariantCompact, "Single running line", renderCompact, "inline")
	register(VariantList, "Title and description list", renderList)

	if err := registry.SetDefault(VariantStandard); err != nil {
		panic(err)
	}
	return registry
}

var defaultRegistry = NewRegistry()

// Registry returns the shared built-in registry. Callers that need to add or
// override layouts should Clone it first.
func Registry() *variant.Registry[Props] {
	return defaultRegistry
}

// Render dispatches props to the layout for tag, falling back to the standard
// layout for unknown or empty tags. Props are forwarded unchanged.
func Render(buf *bytes.Buffer, tag string, props Props) error {
	return defaultRegistry.Render(buf, tag, props)
}

// RenderString is Render into a fresh buffer.
func RenderString(tag string, props Props) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, tag, props); err != nil {
		return "", err
	}
	return buf.String(), nil
}
