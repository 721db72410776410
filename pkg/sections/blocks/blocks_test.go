package blocks_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resumegen/pkg/edit"
	"github.com/goliatone/go-resumegen/pkg/resume"
	"github.com/goliatone/go-resumegen/pkg/sections/blocks"
	"github.com/goliatone/go-resumegen/pkg/style"
	"github.com/goliatone/go-resumegen/pkg/testsupport"
)

func renderBlock(t *testing.T, name string, ctx blocks.Context) string {
	t.Helper()
	out, err := blocks.Render(name, ctx, map[string]string{blocks.NameAchievements: "metrics", blocks.NameSkills: "bars"})
	if err != nil {
		t.Fatalf("render %s: %v", name, err)
	}
	return out
}

func TestEmptySectionsAreSuppressed(t *testing.T) {
	ctx := blocks.NewContext(resume.ResumeData{PersonalInfo: resume.PersonalInfo{FullName: "A"}}, style.SectionStyleConfig{}, "", false)
	for _, name := range blocks.Names() {
		out := renderBlock(t, name, ctx)
		if name == blocks.NameHeader {
			if !strings.Contains(out, ">A</h1>") {
				t.Fatalf("header should render the name: %s", out)
			}
			continue
		}
		if out != "" {
			t.Fatalf("%s: expected no output, got %s", name, out)
		}
	}
}

func TestEditableBlocksExposePaths(t *testing.T) {
	ctx := blocks.NewContext(testsupport.SampleResume(), style.SectionStyleConfig{}, "#123456", true)
	var html strings.Builder
	for _, name := range blocks.Names() {
		html.WriteString(renderBlock(t, name, ctx))
	}
	doc := testsupport.MustDocument(t, html.String())

	for _, path := range []string{
		"personalInfo.fullName",
		"summary",
		"experience.0.position",
		"experience.0.bulletPoints.1",
		"experience.1.endDate",
		"education.0.school",
		"skills.1.name",
		"achievements.2.title",
		"sections.0.title",
		"sections.0.items.0.title",
	} {
		if doc.Find(`[data-edit-path="`+path+`"]`).Length() != 1 {
			t.Fatalf("missing editable field %s", path)
		}
	}

	var lists []string
	doc.Find("button[data-action=add]").Each(func(_ int, s *goquery.Selection) {
		list, _ := s.Attr("data-list")
		lists = append(lists, list)
	})
	want := []string{
		"experience.0.bulletPoints",
		"experience.1.bulletPoints",
		"experience",
		"education",
		"skills",
		"achievements",
		"sections.0.items",
		"sections",
	}
	if diff := cmp.Diff(want, lists); diff != "" {
		t.Fatalf("add affordances mismatch (-want +got):\n%s", diff)
	}
}

func TestReadOnlyExperience(t *testing.T) {
	ctx := blocks.NewContext(testsupport.SampleResume(), style.SectionStyleConfig{}, "", false)
	doc := testsupport.MustDocument(t, renderBlock(t, blocks.NameExperience, ctx))

	if diff := cmp.Diff([]string{"1967 – Present", "1949 – 1967"}, testsupport.Texts(doc.Find(".rg-dates"))); diff != "" {
		t.Fatalf("dates mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Standardised COBOL across the fleet", "Built validation suites"}, testsupport.Texts(doc.Find("[data-key=exp-1] li"))); diff != "" {
		t.Fatalf("bullets mismatch (-want +got):\n%s", diff)
	}
	if doc.Find("button, [contenteditable]").Length() != 0 {
		t.Fatalf("read-only experience must not carry affordances")
	}
}

func TestSummaryIsSanitized(t *testing.T) {
	data := testsupport.SampleResume()
	data.Summary = `Ships <em>compilers</em><script>alert(1)</script>`
	out := renderBlock(t, blocks.NameSummary, blocks.NewContext(data, style.SectionStyleConfig{}, "", false))
	if strings.Contains(out, "<script>") || !strings.Contains(out, "<em>compilers</em>") {
		t.Fatalf("unexpected summary markup: %s", out)
	}
}

func TestVariantBlocksUseRequestedLayouts(t *testing.T) {
	ctx := blocks.NewContext(testsupport.SampleResume(), style.SectionStyleConfig{}, "", false)
	doc := testsupport.MustDocument(t, renderBlock(t, blocks.NameAchievements, ctx)+renderBlock(t, blocks.NameSkills, ctx))
	if v, _ := doc.Find("[data-section=achievements]").Attr("data-variant"); v != "metrics" {
		t.Fatalf("expected metrics achievements, got %q", v)
	}
	if v, _ := doc.Find("[data-section=skills]").Attr("data-variant"); v != "list" {
		t.Fatalf("expected list skills, got %q", v)
	}
}

func TestVariantBlocksBindSession(t *testing.T) {
	session := edit.NewMemorySession(testsupport.SampleResume())
	ctx := blocks.NewContext(session.Data(), style.SectionStyleConfig{}, "", true)
	ctx.Session = session

	var buf bytes.Buffer
	if err := blocks.Achievements(&buf, ctx, "cards"); err != nil {
		t.Fatalf("render: %v", err)
	}
	if session.Version() != 0 {
		t.Fatalf("rendering must not mutate the session")
	}
}

func TestUnknownBlock(t *testing.T) {
	if _, err := blocks.Render("footer", blocks.Context{}, nil); err == nil {
		t.Fatalf("expected error for unknown block")
	}
}
