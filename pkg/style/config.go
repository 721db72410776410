// Package style resolves the style tokens section layouts read. Configs may be
// partially specified; Resolve fills every gap from Default so layouts never
// carry their own fallbacks.
package style

import "strings"

// TextStyle is a typography token group. Empty fields mean "unspecified".
type TextStyle struct {
	FontFamily string `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty"`
	FontSize   string `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	FontWeight string `json:"fontWeight,omitempty" yaml:"fontWeight,omitempty"`
	LineHeight string `json:"lineHeight,omitempty" yaml:"lineHeight,omitempty"`
	Color      string `json:"color,omitempty" yaml:"color,omitempty"`
}

// Typography groups the text styles a section uses.
type Typography struct {
	Body         TextStyle `json:"body" yaml:"body"`
	ItemTitle    TextStyle `json:"itemTitle" yaml:"itemTitle"`
	SectionTitle TextStyle `json:"sectionTitle" yaml:"sectionTitle"`
}

// Spacing holds CSS lengths between sections, items and inline elements.
type Spacing struct {
	Section string `json:"section,omitempty" yaml:"section,omitempty"`
	Item    string `json:"item,omitempty" yaml:"item,omitempty"`
	Gap     string `json:"gap,omitempty" yaml:"gap,omitempty"`
}

// TextColors holds the primary and muted text colors.
type TextColors struct {
	Primary string `json:"primary,omitempty" yaml:"primary,omitempty"`
	Muted   string `json:"muted,omitempty" yaml:"muted,omitempty"`
}

// Colors holds non-accent colors.
type Colors struct {
	Text       TextColors `json:"text" yaml:"text"`
	Border     string     `json:"border,omitempty" yaml:"border,omitempty"`
	Background string     `json:"background,omitempty" yaml:"background,omitempty"`
}

// SectionStyleConfig is the style contract shared by every section layout.
type SectionStyleConfig struct {
	Typography Typography `json:"typography" yaml:"typography"`
	Spacing    Spacing    `json:"spacing" yaml:"spacing"`
	Colors     Colors     `json:"colors" yaml:"colors"`
}

// DefaultAccent is used when neither the caller, the theme nor the template
// supplies an accent color.
const DefaultAccent = "#2563eb"

// Default returns the fallback for every field a layout reads.
func Default() SectionStyleConfig {
	return SectionStyleConfig{
		Typography: Typography{
			Body: TextStyle{
				FontFamily: "Inter, Helvetica, Arial, sans-serif",
				FontSize:   "14px",
				FontWeight: "400",
				LineHeight: "1.5",
				Color:      "#374151",
			},
			ItemTitle: TextStyle{
				FontSize:   "15px",
				FontWeight: "600",
				LineHeight: "1.4",
				Color:      "#111827",
			},
			SectionTitle: TextStyle{
				FontSize:   "18px",
				FontWeight: "700",
				LineHeight: "1.3",
				Color:      "#111827",
			},
		},
		Spacing: Spacing{
			Section: "24px",
			Item:    "12px",
			Gap:     "8px",
		},
		Colors: Colors{
			Text: TextColors{
				Primary: "#111827",
				Muted:   "#6b7280",
			},
			Border:     "#e5e7eb",
			Background: "#ffffff",
		},
	}
}

// Resolve fills unspecified fields of partial from Default.
func Resolve(partial SectionStyleConfig) SectionStyleConfig {
	return Merge(Default(), partial)
}

// Merge overlays override onto base field by field; empty override fields
// keep the base value.
func Merge(base, override SectionStyleConfig) SectionStyleConfig {
	out := base
	out.Typography.Body = mergeText(base.Typography.Body, override.Typography.Body)
	out.Typography.ItemTitle = mergeText(base.Typography.ItemTitle, override.Typography.ItemTitle)
	out.Typography.SectionTitle = mergeText(base.Typography.SectionTitle, override.Typography.SectionTitle)
	out.Spacing.Section = pick(override.Spacing.Section, base.Spacing.Section)
	out.Spacing.Item = pick(override.Spacing.Item, base.Spacing.Item)
	out.Spacing.Gap = pick(override.Spacing.Gap, base.Spacing.Gap)
	out.Colors.Text.Primary = pick(override.Colors.Text.Primary, base.Colors.Text.Primary)
	out.Colors.Text.Muted = pick(override.Colors.Text.Muted, base.Colors.Text.Muted)
	out.Colors.Border = pick(override.Colors.Border, base.Colors.Border)
	out.Colors.Background = pick(override.Colors.Background, base.Colors.Background)
	return out
}

func mergeText(base, override TextStyle) TextStyle {
	return TextStyle{
		FontFamily: pick(override.FontFamily, base.FontFamily),
		FontSize:   pick(override.FontSize, base.FontSize),
		FontWeight: pick(override.FontWeight, base.FontWeight),
		LineHeight: pick(override.LineHeight, base.LineHeight),
		Color:      pick(override.Color, base.Color),
	}
}

func pick(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

// Accent returns accent, or DefaultAccent when accent is blank.
func Accent(accent string) string {
	return pick(accent, DefaultAccent)
}
