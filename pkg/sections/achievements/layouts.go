package achievements

import (
	"bytes"
	"strconv"

	"github.com/goliatone/go-resumegen/pkg/markup"
	"github.com/goliatone/go-resumegen/pkg/style"
)

func stacked(cfg style.SectionStyleConfig, _ string) string {
	return column(cfg.Spacing.Item)
}

func renderStandard(buf *bytes.Buffer, p Props) error {
	return frame(buf, p, VariantStandard, listSpec{tag: "div", style: stacked}, func(c cell) {
		c.open("div", "rg-standard-item", style.Inline(style.Decl{Property: "position", Value: "relative"}))
		c.indicator()
		c.title("div", "", "")
		c.description("div", "", "")
		c.remove()
		c.close("div")
	})
}

func renderBullets(buf *bytes.Buffer, p Props) error {
	return frame(buf, p, VariantBullets, listSpec{tag: "ul", class: "rg-bullets", style: stacked}, func(c cell) {
		c.open("li", "rg-bullet-item", style.Inline(
			style.Decl{Property: "display", Value: "flex"},
			style.Decl{Property: "gap", Value: c.cfg.Spacing.Gap},
		))
		markup.Element(c.buf, "span", "•",
			markup.A("class", "rg-bullet"),
			markup.A("aria-hidden", "true"),
			markup.A("style", style.Inline(style.Decl{Property: "color", Value: c.accent})),
		)
		markup.Open(c.buf, "div", markup.A("class", "rg-body"))
		c.title("div", "", "")
		c.description("div", "", "")
		markup.Close(c.buf, "div")
		c.remove()
		c.close("li")
	})
}

// renderNumbered labels items 1..N in list order.
func renderNumbered(buf *bytes.Buffer, p Props) error {
	return frame(buf, p, VariantNumbered, listSpec{tag: "ol", class: "rg-numbered", style: stacked}, func(c cell) {
		c.open("li", "rg-numbered-item", style.Inline(
			style.Decl{Property: "display", Value: "flex"},
			style.Decl{Property: "align-items", Value: "flex-start"},
			style.Decl{Property: "gap", Value: c.cfg.Spacing.Gap},
		))
		markup.Element(c.buf, "span", strconv.Itoa(c.index+1),
			markup.A("class", "rg-number"),
			markup.A("aria-hidden", "true"),
			markup.A("style", style.Inline(
				style.Decl{Property: "display", Value: "inline-flex"},
				style.Decl{Property: "align-items", Value: "center"},
				style.Decl{Property: "justify-content", Value: "center"},
				style.Decl{Property: "flex-shrink", Value: "0"},
				style.Decl{Property: "width", Value: "1.75em"},
				style.Decl{Property: "height", Value: "1.75em"},
				style.Decl{Property: "border-radius", Value: "9999px"},
				style.Decl{Property: "background", Value: c.accent},
				style.Decl{Property: "color", Value: "#ffffff"},
				style.Decl{Property: "font-size", Value: "0.8em"},
				style.Decl{Property: "font-weight", Value: "700"},
			)),
		)
		markup.Open(c.buf, "div", markup.A("class", "rg-body"))
		c.title("div", "", "")
		c.description("div", "", "")
		markup.Close(c.buf, "div")
		c.remove()
		c.close("li")
	})
}

func renderTimeline(buf *bytes.Buffer, p Props) error {
	list := listSpec{tag: "div", class: "rg-timeline", style: func(cfg style.SectionStyleConfig, accent string) string {
		return joinCSS(column(cfg.Spacing.Item), style.Inline(
			style.Decl{Property: "position", Value: "relative"},
			style.Decl{Property: "border-left", Value: "2px solid " + accent},
			style.Decl{Property: "padding-left", Value: "1.25em"},
		))
	}}
	return frame(buf, p, VariantTimeline, list, func(c cell) {
		c.open("div", "rg-timeline-item", style.Inline(style.Decl{Property: "position", Value: "relative"}))
		markup.Element(c.buf, "span", "",
			markup.A("class", "rg-timeline-dot"),
			markup.A("aria-hidden", "true"),
			markup.A("style", style.Inline(
				style.Decl{Property: "position", Value: "absolute"},
				style.Decl{Property: "left", Value: "-1.65em"},
				style.Decl{Property: "top", Value: "0.35em"},
				style.Decl{Property: "width", Value: "0.75em"},
				style.Decl{Property: "height", Value: "0.75em"},
				style.Decl{Property: "border-radius", Value: "9999px"},
				style.Decl{Property: "background", Value: c.accent},
				style.Decl{Property: "border", Value: "2px solid " + c.cfg.Colors.Background},
			)),
		)
		c.title("div", "", "")
		c.description("div", "", "")
		c.remove()
		c.close("div")
	})
}

func renderCards(buf *bytes.Buffer, p Props) error {
	list := listSpec{tag: "div", class: "rg-cards", style: func(cfg style.SectionStyleConfig, _ string) string {
		return grid("12rem", cfg.Spacing.Gap)
	}}
	return frame(buf, p, VariantCards, list, func(c cell) {
		c.open("div", "rg-card", style.Inline(
			style.Decl{Property: "position", Value: "relative"},
			style.Decl{Property: "border", Value: "1px solid " + c.cfg.Colors.Border},
			style.Decl{Property: "border-top", Value: "3px solid " + c.accent},
			style.Decl{Property: "border-radius", Value: "8px"},
			style.Decl{Property: "padding", Value: c.cfg.Spacing.Item},
			style.Decl{Property: "background", Value: c.cfg.Colors.Background},
		))
		c.indicator()
		c.title("div", "", "")
		c.description("div", "", style.Inline(style.Decl{Property: "margin-top", Value: "0.35em"}))
		c.remove()
		c.close("div")
	})
}

// renderMetrics shows the extracted metric above the remaining title text.
// Extraction only applies to the read-only view; the editable view edits the
// raw title.
func renderMetrics(buf *bytes.Buffer, p Props) error {
	list := listSpec{tag: "div", class: "rg-metrics", style: func(cfg style.SectionStyleConfig, _ string) string {
		return grid("10rem", cfg.Spacing.Gap)
	}}
	return frame(buf, p, VariantMetrics, list, func(c cell) {
		c.open("div", "rg-metric", style.Inline(
			style.Decl{Property: "position", Value: "relative"},
			style.Decl{Property: "border", Value: "1px solid " + c.cfg.Colors.Border},
			style.Decl{Property: "border-radius", Value: "8px"},
			style.Decl{Property: "padding", Value: c.cfg.Spacing.Item},
			style.Decl{Property: "text-align", Value: "center"},
		))
		if c.props.Editable {
			c.title("div", "", "")
		} else {
			metric := ExtractMetric(c.item.Title)
			markup.Element(c.buf, "div", metric.Label(),
				markup.A("class", "rg-metric-value"),
				markup.A("data-matched", strconv.FormatBool(metric.Matched)),
				markup.A("style", style.Inline(
					style.Decl{Property: "font-size", Value: "1.75em"},
					style.Decl{Property: "font-weight", Value: "700"},
					style.Decl{Property: "line-height", Value: "1.1"},
					style.Decl{Property: "color", Value: c.accent},
				)),
			)
			c.titleText("div", "rg-metric-rest", "", metric.Rest)
		}
		c.description("div", "", "")
		c.remove()
		c.close("div")
	})
}

func renderBoxed(buf *bytes.Buffer, p Props) error {
	return frame(buf, p, VariantBoxed, listSpec{tag: "div", class: "rg-boxed", style: stacked}, func(c cell) {
		c.open("div", "rg-box", style.Inline(
			style.Decl{Property: "position", Value: "relative"},
			style.Decl{Property: "border", Value: "1px solid " + c.cfg.Colors.Border},
			style.Decl{Property: "border-left", Value: "4px solid " + c.accent},
			style.Decl{Property: "border-radius", Value: "4px"},
			style.Decl{Property: "padding", Value: c.cfg.Spacing.Item},
		))
		c.indicator()
		c.title("div", "", "")
		c.description("div", "", "")
		c.remove()
		c.close("div")
	})
}

func renderMinimal(buf *bytes.Buffer, p Props) error {
	return frame(buf, p, VariantMinimal, listSpec{tag: "div", class: "rg-minimal", style: stacked}, func(c cell) {
		c.open("div", "rg-minimal-item", "")
		c.indicator()
		c.title("div", "", style.Inline(style.Decl{Property: "font-weight", Value: "500"}))
		c.description("div", "", "")
		c.remove()
		c.close("div")
	})
}

func renderBadges(buf *bytes.Buffer, p Props) error {
	list := listSpec{tag: "div", class: "rg-badges", style: func(cfg style.SectionStyleConfig, _ string) string {
		return style.Inline(
			style.Decl{Property: "display", Value: "flex"},
			style.Decl{Property: "flex-wrap", Value: "wrap"},
			style.Decl{Property: "gap", Value: cfg.Spacing.Gap},
		)
	}}
	return frame(buf, p, VariantBadges, list, func(c cell) {
		c.open("span", "rg-badge", style.Inline(
			style.Decl{Property: "position", Value: "relative"},
			style.Decl{Property: "display", Value: "inline-flex"},
			style.Decl{Property: "flex-direction", Value: "column"},
			style.Decl{Property: "padding", Value: "0.35em 0.85em"},
			style.Decl{Property: "border", Value: "1px solid " + c.accent},
			style.Decl{Property: "border-radius", Value: "9999px"},
		))
		c.title("span", "", style.Inline(style.Decl{Property: "color", Value: c.accent}))
		c.description("span", "", style.Inline(style.Decl{Property: "font-size", Value: "0.85em"}))
		c.remove()
		c.close("span")
	})
}

// renderCompact keeps every item on one running line.
func renderCompact(buf *bytes.Buffer, p Props) error {
	list := listSpec{tag: "p", class: "rg-compact", style: func(cfg style.SectionStyleConfig, _ string) string {
		return style.Inline(style.Decl{Property: "margin", Value: "0"})
	}}
	return frame(buf, p, VariantCompact, list, func(c cell) {
		if c.index > 0 {
			markup.Element(c.buf, "span", " · ",
				markup.A("class", "rg-separator"),
				markup.A("aria-hidden", "true"),
				markup.A("style", style.Inline(style.Decl{Property: "color", Value: c.accent})),
			)
		}
		c.open("span", "rg-compact-item", "")
		c.indicator()
		c.title("span", "", "")
		if c.props.Editable || c.item.Description != "" {
			markup.Element(c.buf, "span", ": ", markup.A("class", "rg-colon"), markup.A("aria-hidden", "true"))
		}
		c.description("span", "", "")
		c.remove()
		c.close("span")
	})
}

func renderList(buf *bytes.Buffer, p Props) error {
	list := listSpec{tag: "ul", class: "rg-list", style: func(cfg style.SectionStyleConfig, _ string) string {
		return style.Inline(
			style.Decl{Property: "list-style", Value: "disc"},
			style.Decl{Property: "margin", Value: "0"},
			style.Decl{Property: "padding-left", Value: "1.25em"},
		)
	}}
	return frame(buf, p, VariantList, list, func(c cell) {
		c.open("li", "rg-list-item", style.Inline(style.Decl{Property: "margin-bottom", Value: c.cfg.Spacing.Gap}))
		c.title("strong", "", style.Inline(style.Decl{Property: "display", Value: "block"}))
		c.description("span", "", style.Inline(style.Decl{Property: "display", Value: "block"}))
		c.remove()
		c.close("li")
	})
}
