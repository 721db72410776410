// Package blocks renders the fixed building blocks every resume template is
// composed from: header, summary, experience, education, custom sections and
// the headed wrappers around the variant driven sections.
package blocks

import (
	"bytes"
	"fmt"

	"github.com/goliatone/go-resumegen/pkg/edit"
	"github.com/goliatone/go-resumegen/pkg/markup"
	"github.com/goliatone/go-resumegen/pkg/resume"
	"github.com/goliatone/go-resumegen/pkg/style"
)

// Context is the input shared by every block. Style is resolved once by the
// caller; blocks never fall back on their own.
type Context struct {
	Data     resume.ResumeData
	Style    style.SectionStyleConfig
	Accent   string
	Editable bool

	// Session, when set, backs the add/remove callbacks handed to variant
	// sections.
	Session edit.Session
	OnError edit.ErrorHandler
}

// NewContext resolves partial style settings and the accent color.
func NewContext(data resume.ResumeData, partial style.SectionStyleConfig, accent string, editableMode bool) Context {
	return Context{
		Data:     data,
		Style:    style.Resolve(partial),
		Accent:   style.Accent(accent),
		Editable: editableMode,
	}
}

// Block renders one part of a page.
type Block func(buf *bytes.Buffer, ctx Context) error

// Names of the blocks a template can order.
const (
	NameHeader       = "header"
	NameSummary      = "summary"
	NameExperience   = "experience"
	NameEducation    = "education"
	NameSkills       = "skills"
	NameAchievements = "achievements"
	NameSections     = "sections"
)

// Render writes the named block into a string. Variant driven blocks take
// their layout tag from variants.
func Render(name string, ctx Context, variants map[string]string) (string, error) {
	var buf bytes.Buffer
	var err error
	switch name {
	case NameHeader:
		err = Header(&buf, ctx)
	case NameSummary:
		err = Summary(&buf, ctx)
	case NameExperience:
		err = Experience(&buf, ctx)
	case NameEducation:
		err = Education(&buf, ctx)
	case NameSkills:
		err = Skills(&buf, ctx, variants[NameSkills])
	case NameAchievements:
		err = Achievements(&buf, ctx, variants[NameAchievements])
	case NameSections:
		err = CustomSections(&buf, ctx)
	default:
		return "", fmt.Errorf("blocks: unknown block %q", name)
	}
	if err != nil {
		return "", fmt.Errorf("blocks: render %s: %w", name, err)
	}
	return buf.String(), nil
}

// Names lists every block name in default order.
func Names() []string {
	return []string{NameHeader, NameSummary, NameExperience, NameEducation, NameSkills, NameAchievements, NameSections}
}

func heading(buf *bytes.Buffer, ctx Context, title string) {
	markup.Element(buf, "h2", title,
		markup.A("class", "rg-section-title"),
		markup.A("style", joinCSS(ctx.Style.Typography.SectionTitle.CSS(), style.Inline(
			style.Decl{Property: "border-bottom", Value: "2px solid " + ctx.Accent},
			style.Decl{Property: "padding-bottom", Value: "0.25em"},
			style.Decl{Property: "margin", Value: "0 0 " + ctx.Style.Spacing.Gap + " 0"},
		))),
	)
}

func openSection(buf *bytes.Buffer, ctx Context, name string) {
	markup.Open(buf, "section",
		markup.A("class", markup.Classes("rg-block", "rg-block--"+name)),
		markup.A("data-block", name),
		markup.A("style", style.Inline(style.Decl{Property: "margin-bottom", Value: ctx.Style.Spacing.Section})),
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

func dateRange(start, end string, current bool) string {
	switch {
	case current:
		end = "Present"
	case end == "":
		return start
	}
	if start == "" {
		return end
	}
	return start + " – " + end
}
