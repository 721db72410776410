package blocks

import (
	"bytes"

	"github.com/goliatone/go-resumegen/pkg/editable"
	"github.com/goliatone/go-resumegen/pkg/markup"
	"github.com/goliatone/go-resumegen/pkg/sanitize"
	"github.com/goliatone/go-resumegen/pkg/style"
)

type contactField struct {
	path        string
	value       string
	placeholder string
	link        string
}

// Header renders name, title, contact line and optional photo. The header is
// always rendered; empty contact fields are skipped in read-only mode.
func Header(buf *bytes.Buffer, ctx Context) error {
	info := ctx.Data.PersonalInfo
	markup.Open(buf, "header", markup.A("class", "rg-header"), markup.A("data-block", NameHeader))

	if photo := sanitize.URL(info.Photo); photo != "" {
		markup.Open(buf, "img",
			markup.A("class", "rg-photo"),
			markup.A("src", photo),
			markup.A("alt", info.FullName),
			markup.A("style", style.Inline(
				style.Decl{Property: "width", Value: "96px"},
				style.Decl{Property: "height", Value: "96px"},
				style.Decl{Property: "border-radius", Value: "9999px"},
				style.Decl{Property: "object-fit", Value: "cover"},
			)),
		)
	}

	nameCSS := style.Inline(
		style.Decl{Property: "font-size", Value: "2em"},
		style.Decl{Property: "font-weight", Value: "700"},
		style.Decl{Property: "margin", Value: "0"},
		style.Decl{Property: "color", Value: ctx.Style.Colors.Text.Primary},
	)
	field(buf, ctx, "h1", "rg-name", nameCSS, "personalInfo.fullName", info.FullName, "Your Name")
	field(buf, ctx, "p", "rg-role", style.Inline(
		style.Decl{Property: "font-size", Value: "1.15em"},
		style.Decl{Property: "margin", Value: "0.25em 0"},
		style.Decl{Property: "color", Value: ctx.Accent},
	), "personalInfo.title", info.Title, "Professional Title")

	contacts := []contactField{
		{path: "personalInfo.email", value: info.Email, placeholder: "Email", link: mailto(info.Email)},
		{path: "personalInfo.phone", value: info.Phone, placeholder: "Phone"},
		{path: "personalInfo.location", value: info.Location, placeholder: "Location"},
		{path: "personalInfo.website", value: info.Website, placeholder: "Website", link: info.Website},
		{path: "personalInfo.linkedin", value: info.LinkedIn, placeholder: "LinkedIn", link: info.LinkedIn},
	}
	markup.Open(buf, "p", markup.A("class", "rg-contact"), markup.A("style", style.Inline(
		style.Decl{Property: "display", Value: "flex"},
		style.Decl{Property: "flex-wrap", Value: "wrap"},
		style.Decl{Property: "gap", Value: "0.35em 1em"},
		style.Decl{Property: "margin", Value: "0"},
		style.Decl{Property: "color", Value: ctx.Style.Colors.Text.Muted},
		style.Decl{Property: "font-size", Value: ctx.Style.Typography.Body.FontSize},
	)))
	for _, contact := range contacts {
		if ctx.Editable {
			editable.Text(buf, editable.TextProps{Path: contact.path, Value: contact.value, Placeholder: contact.placeholder, Class: "rg-contact-item"})
			continue
		}
		if contact.value == "" {
			continue
		}
		if href := sanitize.URL(contact.link); href != "" {
			markup.Element(buf, "a", contact.value, markup.A("class", "rg-contact-item"), markup.A("href", href), markup.A("style", "color:inherit"))
			continue
		}
		markup.Element(buf, "span", contact.value, markup.A("class", "rg-contact-item"))
	}
	markup.Close(buf, "p")
	markup.Close(buf, "header")
	return nil
}

func field(buf *bytes.Buffer, ctx Context, tag, class, css, path, value, placeholder string) {
	if ctx.Editable {
		editable.Text(buf, editable.TextProps{Path: path, Value: value, Placeholder: placeholder, Tag: tag, Class: class, Style: css})
		return
	}
	if value == "" {
		return
	}
	markup.Element(buf, tag, value, markup.A("class", class), markup.A("style", css))
}

func mailto(email string) string {
	if email == "" {
		return ""
	}
	return "mailto:" + email
}

// Summary renders the sanitized profile summary. Read-only output keeps the
// allowed inline formatting; the editable field holds the stored value.
func Summary(buf *bytes.Buffer, ctx Context) error {
	summary := sanitize.RichText(ctx.Data.Summary)
	if summary == "" && !ctx.Editable {
		return nil
	}
	openSection(buf, ctx, NameSummary)
	heading(buf, ctx, "Summary")
	if ctx.Editable {
		editable.Text(buf, editable.TextProps{
			Path:        "summary",
			Value:       ctx.Data.Summary,
			Placeholder: "A short professional summary",
			Multiline:   true,
			Class:       "rg-summary",
			Style:       ctx.Style.Typography.Body.CSS(),
		})
	} else {
		markup.Open(buf, "div", markup.A("class", "rg-summary"), markup.A("style", ctx.Style.Typography.Body.CSS()))
		markup.Raw(buf, summary)
		markup.Close(buf, "div")
	}
	markup.Close(buf, "section")
	return nil
}
