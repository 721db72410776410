// Package skills renders the skills section on the same variant contract as
// achievements: one Props shape, several layouts, read-only and editable
// modes, id keyed items.
package skills

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goliatone/go-resumegen/pkg/edit"
	"github.com/goliatone/go-resumegen/pkg/editable"
	"github.com/goliatone/go-resumegen/pkg/markup"
	"github.com/goliatone/go-resumegen/pkg/resume"
	"github.com/goliatone/go-resumegen/pkg/style"
	"github.com/goliatone/go-resumegen/pkg/variant"
)

// Section is the section type name used in variant tags and routes.
const Section = "skills"

// Canonical layout tags.
const (
	VariantPills   = "pills"
	VariantList    = "list"
	VariantColumns = "columns"
	VariantInline  = "inline"
)

const (
	defaultPath = "skills"
	addLabel    = "Add Skill"
	maxLevel    = 5
)

// Props is the skills rendering contract.
type Props struct {
	Items       []resume.Skill
	Config      style.SectionStyleConfig
	AccentColor string
	Editable    bool

	OnAddSkill    func()
	OnRemoveSkill func(id string)

	// ShowLevels renders the 0-5 proficiency where a layout supports it.
	ShowLevels bool
	PathPrefix string
}

// WithSession wires the callbacks to an edit session.
func (p Props) WithSession(session edit.Session, onError edit.ErrorHandler) Props {
	callbacks := edit.Bind(session, p.listPath(), onError)
	p.OnAddSkill = callbacks.OnAdd
	p.OnRemoveSkill = callbacks.OnRemove
	return p
}

// Handle routes a triggered affordance to the matching callback.
func (p Props) Handle(action editable.Action) error {
	switch {
	case action.Kind == editable.ActionAdd && p.OnAddSkill != nil:
		p.OnAddSkill()
	case action.Kind == editable.ActionRemove && action.ItemID != "" && p.OnRemoveSkill != nil:
		p.OnRemoveSkill(action.ItemID)
	default:
		return fmt.Errorf("skills: cannot handle %q action", action.Kind)
	}
	return nil
}

func (p Props) listPath() string {
	if p.PathPrefix == "" {
		return defaultPath
	}
	return p.PathPrefix
}

// NewRegistry constructs a registry with the built-in skills layouts.
func NewRegistry() *variant.Registry[Props] {
	registry := variant.New[Props](Section)
	register := func(tag, description string, layout variant.Layout[Props], aliases ...string) {
		aliases = append([]string{Section + "-" + tag}, aliases...)
		registry.MustRegister(variant.Entry[Props]{Tag: tag, Description: description, Layout: layout}, aliases...)
	}
	register(VariantPills, "Rounded pills", renderPills, "tags", "default")
	register(VariantList, "List with level bars", renderList, "bars")
	register(VariantColumns, "Two column grid", renderColumns)
	register(VariantInline, "Comma separated line", renderInline)
	if err := registry.SetDefault(VariantPills); err != nil {
		panic(err)
	}
	return registry
}

var defaultRegistry = NewRegistry()

// Registry returns the shared built-in registry.
func Registry() *variant.Registry[Props] {
	return defaultRegistry
}

// Render dispatches to the layout for tag, falling back to pills.
func Render(buf *bytes.Buffer, tag string, props Props) error {
	return defaultRegistry.Render(buf, tag, props)
}

func frame(buf *bytes.Buffer, p Props, tag string, listTag, listStyle string, each func(idx int, skill resume.Skill, cfg style.SectionStyleConfig, accent string)) error {
	if buf == nil {
		return fmt.Errorf("skills: buffer is nil")
	}
	if len(p.Items) == 0 && !p.Editable {
		return nil
	}
	cfg := style.Resolve(p.Config)
	accent := style.Accent(p.AccentColor)

	markup.Open(buf, "div",
		markup.A("class", markup.Classes("rg-skills", "rg-skills--"+tag)),
		markup.A("data-section", Section),
		markup.A("data-variant", tag),
	)
	if len(p.Items) > 0 {
		markup.Open(buf, listTag, markup.A("class", "rg-skills__list"), markup.A("style", listStyle))
		for idx, skill := range p.Items {
			each(idx, skill, cfg, accent)
		}
		markup.Close(buf, listTag)
	}
	if p.Editable {
		editable.AddButton(buf, p.listPath(), addLabel)
	}
	markup.Close(buf, "div")
	return nil
}

func name(buf *bytes.Buffer, p Props, idx int, skill resume.Skill, css string) {
	if p.Editable {
		editable.Text(buf, editable.TextProps{
			Path:        resume.JoinPath(p.listPath(), idx, "name"),
			Value:       skill.Name,
			Placeholder: "Skill",
			Class:       "rg-title",
			Style:       css,
		})
		return
	}
	markup.Element(buf, "span", skill.Name, markup.A("class", "rg-title"), markup.A("style", css))
}

func remove(buf *bytes.Buffer, p Props, skill resume.Skill) {
	if p.Editable {
		editable.RemoveButton(buf, p.listPath(), skill.ID)
	}
}

func openItem(buf *bytes.Buffer, tag, class string, skill resume.Skill, css string) {
	markup.Open(buf, tag,
		markup.A("class", markup.Classes("rg-item", class)),
		markup.A("data-key", skill.ID),
		markup.A("style", css),
	)
}

func level(buf *bytes.Buffer, skill resume.Skill, accent, border string) {
	lvl := min(max(skill.Level, 0), maxLevel)
	if lvl == 0 {
		return
	}
	markup.Open(buf, "span",
		markup.A("class", "rg-level"),
		markup.A("data-level", strconv.Itoa(lvl)),
		markup.A("aria-label", fmt.Sprintf("%d of %d", lvl, maxLevel)),
		markup.A("style", style.Inline(
			style.Decl{Property: "display", Value: "block"},
			style.Decl{Property: "height", Value: "4px"},
			style.Decl{Property: "border-radius", Value: "2px"},
			style.Decl{Property: "background", Value: border},
		)),
	)
	markup.Element(buf, "span", "", markup.A("style", style.Inline(
		style.Decl{Property: "display", Value: "block"},
		style.Decl{Property: "height", Value: "100%"},
		style.Decl{Property: "width", Value: strconv.Itoa(lvl*100/maxLevel) + "%"},
		style.Decl{Property: "border-radius", Value: "2px"},
		style.Decl{Property: "background", Value: accent},
	)))
	markup.Close(buf, "span")
}

func renderPills(buf *bytes.Buffer, p Props) error {
	list := style.Inline(
		style.Decl{Property: "display", Value: "flex"},
		style.Decl{Property: "flex-wrap", Value: "wrap"},
		style.Decl{Property: "gap", Value: "0.5em"},
	)
	return frame(buf, p, VariantPills, "div", list, func(idx int, skill resume.Skill, cfg style.SectionStyleConfig, accent string) {
		openItem(buf, "span", "rg-pill", skill, style.Inline(
			style.Decl{Property: "display", Value: "inline-flex"},
			style.Decl{Property: "align-items", Value: "center"},
			style.Decl{Property: "padding", Value: "0.25em 0.75em"},
			style.Decl{Property: "border-radius", Value: "9999px"},
			style.Decl{Property: "border", Value: "1px solid " + accent},
			style.Decl{Property: "color", Value: accent},
			style.Decl{Property: "font-size", Value: cfg.Typography.Body.FontSize},
		))
		name(buf, p, idx, skill, "")
		remove(buf, p, skill)
		markup.Close(buf, "span")
	})
}

func renderList(buf *bytes.Buffer, p Props) error {
	list := style.Inline(
		style.Decl{Property: "list-style", Value: "none"},
		style.Decl{Property: "margin", Value: "0"},
		style.Decl{Property: "padding", Value: "0"},
	)
	return frame(buf, p, VariantList, "ul", list, func(idx int, skill resume.Skill, cfg style.SectionStyleConfig, accent string) {
		openItem(buf, "li", "rg-skill-row", skill, style.Inline(style.Decl{Property: "margin-bottom", Value: cfg.Spacing.Gap}))
		name(buf, p, idx, skill, cfg.Typography.Body.CSS())
		if p.ShowLevels {
			level(buf, skill, accent, cfg.Colors.Border)
		}
		remove(buf, p, skill)
		markup.Close(buf, "li")
	})
}

func renderColumns(buf *bytes.Buffer, p Props) error {
	list := style.Inline(
		style.Decl{Property: "display", Value: "grid"},
		style.Decl{Property: "grid-template-columns", Value: "repeat(2,minmax(0,1fr))"},
		style.Decl{Property: "gap", Value: "0.35em 1.5em"},
		style.Decl{Property: "list-style", Value: "none"},
		style.Decl{Property: "margin", Value: "0"},
		style.Decl{Property: "padding", Value: "0"},
	)
	return frame(buf, p, VariantColumns, "ul", list, func(idx int, skill resume.Skill, cfg style.SectionStyleConfig, accent string) {
		openItem(buf, "li", "rg-skill-cell", skill, "")
		markup.Element(buf, "span", "▪ ", markup.A("aria-hidden", "true"), markup.A("style", style.Inline(style.Decl{Property: "color", Value: accent})))
		name(buf, p, idx, skill, cfg.Typography.Body.CSS())
		if p.ShowLevels {
			level(buf, skill, accent, cfg.Colors.Border)
		}
		remove(buf, p, skill)
		markup.Close(buf, "li")
	})
}

func renderInline(buf *bytes.Buffer, p Props) error {
	return frame(buf, p, VariantInline, "p", style.Inline(style.Decl{Property: "margin", Value: "0"}), func(idx int, skill resume.Skill, cfg style.SectionStyleConfig, _ string) {
		if idx > 0 {
			markup.Element(buf, "span", ", ", markup.A("class", "rg-separator"), markup.A("aria-hidden", "true"))
		}
		openItem(buf, "span", "rg-skill-inline", skill, "")
		name(buf, p, idx, skill, cfg.Typography.Body.CSS())
		remove(buf, p, skill)
		markup.Close(buf, "span")
	})
}
