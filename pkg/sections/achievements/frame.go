package achievements

import (
	"bytes"
	"fmt"

	"github.com/goliatone/go-resumegen/pkg/editable"
	"github.com/goliatone/go-resumegen/pkg/markup"
	"github.com/goliatone/go-resumegen/pkg/style"
)

const (
	titlePlaceholder       = "Achievement title"
	descriptionPlaceholder = "Description (optional)"
)

// listSpec is the container a layout arranges its items in.
type listSpec struct {
	tag   string
	class string
	style func(cfg style.SectionStyleConfig, accent string) string
}

// frame writes the section root, the item container and, in editable mode,
// the add affordance. Empty read-only sections produce no output.
func frame(buf *bytes.Buffer, p Props, variant string, list listSpec, each func(c cell)) error {
	if buf == nil {
		return fmt.Errorf("achievements: buffer is nil")
	}
	if len(p.Items) == 0 && !p.Editable {
		return nil
	}
	cfg := style.Resolve(p.Config)
	accent := style.Accent(p.AccentColor)

	markup.Open(buf, "div",
		markup.A("class", markup.Classes("rg-achievements", "rg-achievements--"+variant)),
		markup.A("data-section", "achievements"),
		markup.A("data-variant", variant),
		markup.A("style", style.Inline(style.Decl{Property: "--rg-accent", Value: accent})),
	)
	if len(p.Items) > 0 {
		var listStyle string
		if list.style != nil {
			listStyle = list.style(cfg, accent)
		}
		markup.Open(buf, list.tag,
			markup.A("class", markup.Classes("rg-achievements__list", list.class)),
			markup.A("style", listStyle),
		)
		for idx, item := range p.Items {
			each(cell{buf: buf, props: p, cfg: cfg, accent: accent, index: idx, item: item})
		}
		markup.Close(buf, list.tag)
	}
	if p.Editable {
		editable.AddButton(buf, p.listPath(), AddLabel)
	}
	markup.Close(buf, "div")
	return nil
}

// cell renders the parts of one item. Each part branches on the edit mode
// so layouts only describe arrangement.
type cell struct {
	buf    *bytes.Buffer
	props  Props
	cfg    style.SectionStyleConfig
	accent string
	index  int
	item   Item
}

// open writes the keyed item element.
func (c cell) open(tag, class, css string) {
	markup.Open(c.buf, tag,
		markup.A("class", markup.Classes("rg-item", class)),
		markup.A("data-key", c.item.ID),
		markup.A("style", css),
	)
}

func (c cell) close(tag string) {
	markup.Close(c.buf, tag)
}

func (c cell) title(tag, class, extra string) {
	c.titleText(tag, class, extra, c.item.Title)
}

// titleText writes text in the title slot. In editable mode the raw title is
// always used so edits operate on the stored value.
func (c cell) titleText(tag, class, extra, text string) {
	css := joinCSS(c.cfg.Typography.ItemTitle.CSS(), extra)
	if c.props.Editable {
		editable.Text(c.buf, editable.TextProps{
			Path:        c.props.fieldPath(c.index, "title"),
			Value:       c.item.Title,
			Placeholder: titlePlaceholder,
			Tag:         tag,
			Class:       markup.Classes("rg-title", class),
			Style:       css,
		})
		return
	}
	markup.Element(c.buf, tag, text, markup.A("class", markup.Classes("rg-title", class)), markup.A("style", css))
}

// description is omitted entirely in read-only mode when empty.
func (c cell) description(tag, class, extra string) {
	css := joinCSS(c.descriptionCSS(), extra)
	if c.props.Editable {
		editable.Text(c.buf, editable.TextProps{
			Path:        c.props.fieldPath(c.index, "description"),
			Value:       c.item.Description,
			Placeholder: descriptionPlaceholder,
			Multiline:   tag != "span",
			Tag:         tag,
			Class:       markup.Classes("rg-description", class),
			Style:       css,
		})
		return
	}
	if c.item.Description == "" {
		return
	}
	markup.Element(c.buf, tag, c.item.Description, markup.A("class", markup.Classes("rg-description", class)), markup.A("style", css))
}

func (c cell) remove() {
	if c.props.Editable {
		editable.RemoveButton(c.buf, c.props.listPath(), c.item.ID)
	}
}

func (c cell) indicator() {
	if !c.props.ShowIndicators {
		return
	}
	markup.Element(c.buf, "span", "▸",
		markup.A("class", "rg-indicator"),
		markup.A("aria-hidden", "true"),
		markup.A("style", style.Inline(style.Decl{Property: "color", Value: c.accent})),
	)
}

func (c cell) descriptionCSS() string {
	body := c.cfg.Typography.Body
	return style.Inline(
		style.Decl{Property: "font-family", Value: body.FontFamily},
		style.Decl{Property: "font-size", Value: body.FontSize},
		style.Decl{Property: "line-height", Value: body.LineHeight},
		style.Decl{Property: "color", Value: c.cfg.Colors.Text.Muted},
	)
}

func joinCSS(parts ...string) string {
	out := ""
	for _, part := range parts {
		if part == "" {
			continue
		}
		if out != "" {
			out += ";"
		}
		out += part
	}
	return out
}

func column(gap string) string {
	return style.Inline(
		style.Decl{Property: "display", Value: "flex"},
		style.Decl{Property: "flex-direction", Value: "column"},
		style.Decl{Property: "gap", Value: gap},
		style.Decl{Property: "list-style", Value: "none"},
		style.Decl{Property: "margin", Value: "0"},
		style.Decl{Property: "padding", Value: "0"},
	)
}

func grid(minWidth, gap string) string {
	return style.Inline(
		style.Decl{Property: "display", Value: "grid"},
		style.Decl{Property: "grid-template-columns", Value: "repeat(auto-fill,minmax(" + minWidth + ",1fr))"},
		style.Decl{Property: "gap", Value: gap},
	)
}
