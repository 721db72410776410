package blocks

import (
	"bytes"

	"github.com/goliatone/go-resumegen/pkg/editable"
	"github.com/goliatone/go-resumegen/pkg/markup"
	"github.com/goliatone/go-resumegen/pkg/resume"
	"github.com/goliatone/go-resumegen/pkg/sanitize"
	"github.com/goliatone/go-resumegen/pkg/style"
)

func openEntry(buf *bytes.Buffer, ctx Context, id string) {
	markup.Open(buf, "article",
		markup.A("class", "rg-item rg-entry"),
		markup.A("data-key", id),
		markup.A("style", style.Inline(
			style.Decl{Property: "position", Value: "relative"},
			style.Decl{Property: "margin-bottom", Value: ctx.Style.Spacing.Item},
		)),
	)
}

func titleCSS(ctx Context) string {
	return ctx.Style.Typography.ItemTitle.CSS()
}

func mutedCSS(ctx Context) string {
	return style.Inline(
		style.Decl{Property: "color", Value: ctx.Style.Colors.Text.Muted},
		style.Decl{Property: "font-size", Value: ctx.Style.Typography.Body.FontSize},
	)
}

// dates renders a start/end pair. Editable mode exposes both fields.
func dates(buf *bytes.Buffer, ctx Context, list string, idx int, start, end string, current bool) {
	if ctx.Editable {
		markup.Open(buf, "span", markup.A("class", "rg-dates"), markup.A("style", mutedCSS(ctx)))
		editable.Date(buf, resume.JoinPath(list, idx, "startDate"), start, "Start", "")
		markup.Text(buf, " – ")
		endValue := end
		if current {
			endValue = "Present"
		}
		editable.Date(buf, resume.JoinPath(list, idx, "endDate"), endValue, "End", "")
		markup.Close(buf, "span")
		return
	}
	if text := dateRange(start, end, current); text != "" {
		markup.Element(buf, "span", text, markup.A("class", "rg-dates"), markup.A("style", mutedCSS(ctx)))
	}
}

// Experience renders positions with their bullet points.
func Experience(buf *bytes.Buffer, ctx Context) error {
	items := ctx.Data.Experience
	if len(items) == 0 && !ctx.Editable {
		return nil
	}
	const list = "experience"
	openSection(buf, ctx, NameExperience)
	heading(buf, ctx, "Experience")
	for idx, item := range items {
		openEntry(buf, ctx, item.ID)
		markup.Open(buf, "div", markup.A("class", "rg-entry__head"), markup.A("style", style.Inline(
			style.Decl{Property: "display", Value: "flex"},
			style.Decl{Property: "justify-content", Value: "space-between"},
			style.Decl{Property: "gap", Value: ctx.Style.Spacing.Gap},
		)))
		field(buf, ctx, "div", "rg-title", titleCSS(ctx), resume.JoinPath(list, idx, "position"), item.Position, "Position")
		dates(buf, ctx, list, idx, item.StartDate, item.EndDate, item.Current)
		markup.Close(buf, "div")

		markup.Open(buf, "div", markup.A("class", "rg-entry__meta"), markup.A("style", mutedCSS(ctx)))
		field(buf, ctx, "span", "rg-company", style.Inline(style.Decl{Property: "color", Value: ctx.Accent}), resume.JoinPath(list, idx, "company"), item.Company, "Company")
		if item.Location != "" || ctx.Editable {
			markup.Text(buf, " · ")
		}
		field(buf, ctx, "span", "rg-location", "", resume.JoinPath(list, idx, "location"), item.Location, "Location")
		markup.Close(buf, "div")

		field(buf, ctx, "div", "rg-description", ctx.Style.Typography.Body.CSS(), resume.JoinPath(list, idx, "description"), item.Description, "Description")
		bullets(buf, ctx, resume.JoinPath(list, idx, "bulletPoints"), item.BulletPoints)
		if ctx.Editable {
			editable.RemoveButton(buf, list, item.ID)
		}
		markup.Close(buf, "article")
	}
	if ctx.Editable {
		editable.AddButton(buf, list, "Add Experience")
	}
	markup.Close(buf, "section")
	return nil
}

func bullets(buf *bytes.Buffer, ctx Context, path string, points []string) {
	if ctx.Editable {
		editable.List(buf, editable.ListProps{
			Path:        path,
			Items:       points,
			Placeholder: "Describe an accomplishment",
			AddLabel:    "Add Bullet",
			ItemStyle:   ctx.Style.Typography.Body.CSS(),
		})
		return
	}
	if len(points) == 0 {
		return
	}
	markup.Open(buf, "ul", markup.A("class", "rg-bullets"), markup.A("style", style.Inline(
		style.Decl{Property: "margin", Value: "0.35em 0 0 0"},
		style.Decl{Property: "padding-left", Value: "1.25em"},
	)))
	for _, point := range points {
		if point == "" {
			continue
		}
		markup.Element(buf, "li", point, markup.A("style", ctx.Style.Typography.Body.CSS()))
	}
	markup.Close(buf, "ul")
}

// Education renders degrees.
func Education(buf *bytes.Buffer, ctx Context) error {
	items := ctx.Data.Education
	if len(items) == 0 && !ctx.Editable {
		return nil
	}
	const list = "education"
	openSection(buf, ctx, NameEducation)
	heading(buf, ctx, "Education")
	for idx, item := range items {
		openEntry(buf, ctx, item.ID)
		markup.Open(buf, "div", markup.A("class", "rg-entry__head"), markup.A("style", style.Inline(
			style.Decl{Property: "display", Value: "flex"},
			style.Decl{Property: "justify-content", Value: "space-between"},
		)))
		field(buf, ctx, "div", "rg-title", titleCSS(ctx), resume.JoinPath(list, idx, "school"), item.School, "School")
		dates(buf, ctx, list, idx, item.StartDate, item.EndDate, false)
		markup.Close(buf, "div")

		markup.Open(buf, "div", markup.A("class", "rg-entry__meta"), markup.A("style", mutedCSS(ctx)))
		field(buf, ctx, "span", "rg-degree", "", resume.JoinPath(list, idx, "degree"), item.Degree, "Degree")
		if item.Field != "" || ctx.Editable {
			markup.Text(buf, " in ")
		}
		field(buf, ctx, "span", "rg-field", "", resume.JoinPath(list, idx, "field"), item.Field, "Field of study")
		if item.GPA != "" || ctx.Editable {
			markup.Text(buf, " · GPA ")
		}
		field(buf, ctx, "span", "rg-gpa", "", resume.JoinPath(list, idx, "gpa"), item.GPA, "GPA")
		markup.Close(buf, "div")

		if ctx.Editable {
			editable.RemoveButton(buf, list, item.ID)
		}
		markup.Close(buf, "article")
	}
	if ctx.Editable {
		editable.AddButton(buf, list, "Add Education")
	}
	markup.Close(buf, "section")
	return nil
}

// CustomSections renders every user defined section with its items. A
// section with no content and no items is suppressed in read-only mode.
func CustomSections(buf *bytes.Buffer, ctx Context) error {
	const list = "sections"
	if len(ctx.Data.Sections) == 0 && !ctx.Editable {
		return nil
	}
	for idx, section := range ctx.Data.Sections {
		content := sanitize.RichText(section.Content)
		if !ctx.Editable && content == "" && len(section.Items) == 0 {
			continue
		}
		markup.Open(buf, "section",
			markup.A("class", "rg-block rg-block--custom rg-item"),
			markup.A("data-block", NameSections),
			markup.A("data-key", section.ID),
			markup.A("style", style.Inline(style.Decl{Property: "margin-bottom", Value: ctx.Style.Spacing.Section})),
		)
		if ctx.Editable {
			editable.Text(buf, editable.TextProps{
				Path:        resume.JoinPath(list, idx, "title"),
				Value:       section.Title,
				Placeholder: "Section title",
				Tag:         "h2",
				Class:       "rg-section-title",
				Style:       ctx.Style.Typography.SectionTitle.CSS(),
			})
			editable.Text(buf, editable.TextProps{
				Path:        resume.JoinPath(list, idx, "content"),
				Value:       section.Content,
				Placeholder: "Section text",
				Multiline:   true,
				Class:       "rg-section-content",
			})
		} else {
			heading(buf, ctx, section.Title)
			if content != "" {
				markup.Open(buf, "div", markup.A("class", "rg-section-content"), markup.A("style", ctx.Style.Typography.Body.CSS()))
				markup.Raw(buf, content)
				markup.Close(buf, "div")
			}
		}
		sectionItems(buf, ctx, resume.JoinPath(list, idx, "items"), section.Items)
		if ctx.Editable {
			editable.RemoveButton(buf, list, section.ID)
		}
		markup.Close(buf, "section")
	}
	if ctx.Editable {
		editable.AddButton(buf, list, "Add Section")
	}
	return nil
}

func sectionItems(buf *bytes.Buffer, ctx Context, list string, items []resume.SectionItem) {
	for idx, item := range items {
		openEntry(buf, ctx, item.ID)
		markup.Open(buf, "div", markup.A("class", "rg-entry__head"), markup.A("style", style.Inline(
			style.Decl{Property: "display", Value: "flex"},
			style.Decl{Property: "justify-content", Value: "space-between"},
		)))
		field(buf, ctx, "div", "rg-title", titleCSS(ctx), resume.JoinPath(list, idx, "title"), item.Title, "Title")
		if ctx.Editable {
			editable.Date(buf, resume.JoinPath(list, idx, "date"), item.Date, "Date", "")
		} else if item.Date != "" {
			markup.Element(buf, "span", item.Date, markup.A("class", "rg-dates"), markup.A("style", mutedCSS(ctx)))
		}
		markup.Close(buf, "div")
		field(buf, ctx, "div", "rg-subtitle", mutedCSS(ctx), resume.JoinPath(list, idx, "subtitle"), item.Subtitle, "Subtitle")
		field(buf, ctx, "div", "rg-description", ctx.Style.Typography.Body.CSS(), resume.JoinPath(list, idx, "description"), item.Description, "Description")
		if ctx.Editable {
			editable.RemoveButton(buf, list, item.ID)
		}
		markup.Close(buf, "article")
	}
	if ctx.Editable {
		editable.AddButton(buf, list, "Add Item")
	}
}
