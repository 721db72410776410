package preview_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-resumegen/pkg/edit"
	"github.com/goliatone/go-resumegen/pkg/preview"
	"github.com/goliatone/go-resumegen/pkg/testsupport"
)

func render(t *testing.T, p *preview.Preview, req preview.Request) (preview.Result, *goquery.Document) {
	t.Helper()
	if req.Resume == nil && req.Session == nil {
		data := testsupport.SampleResume()
		req.Resume = &data
	}
	result, err := p.Render(testsupport.Context(), req)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return result, testsupport.MustDocument(t, string(result.HTML))
}

func TestRenderReadOnlyPage(t *testing.T) {
	_, doc := render(t, preview.New(), preview.Request{TemplateID: "classic"})

	if got := doc.Find("body").AttrOr("data-template", ""); got != "classic" {
		t.Fatalf("data-template = %q", got)
	}
	var blocks []string
	doc.Find("main [data-block]").Each(func(_ int, s *goquery.Selection) {
		blocks = append(blocks, s.AttrOr("data-block", ""))
	})
	want := []string{"summary", "experience", "education", "skills", "achievements", "sections"}
	if diff := cmp.Diff(want, blocks); diff != "" {
		t.Fatalf("block order mismatch (-want +got):\n%s", diff)
	}
	if doc.Find("h1.rg-name").Text() != "Grace Hopper" {
		t.Fatalf("header missing name")
	}
	if n := doc.Find("[data-edit-path], button[data-action], script").Length(); n != 0 {
		t.Fatalf("read-only page has %d edit affordances", n)
	}
	if got := doc.Find("title").Text(); got != "Grace Hopper - Resume" {
		t.Fatalf("title = %q", got)
	}
}

func TestRenderUnknownTemplateFallsBackWithWarning(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	p := preview.New(preview.WithLogger(zap.New(core)))

	result, doc := render(t, p, preview.Request{TemplateID: "nope"})
	if !result.Fallback || result.Template.ID != "classic" {
		t.Fatalf("expected fallback to classic, got %q (fallback=%v)", result.Template.ID, result.Fallback)
	}
	if doc.Find("body").AttrOr("data-template", "") != "classic" {
		t.Fatalf("page should use the default template")
	}
	if logs.FilterMessage("unknown template, using default").Len() != 1 {
		t.Fatalf("expected one fallback warning, got %v", logs.All())
	}
}

func TestRenderEmptyTemplateIDUsesDefaultSilently(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	p := preview.New(preview.WithLogger(zap.New(core)))

	result, _ := render(t, p, preview.Request{})
	if result.Template.ID != "classic" {
		t.Fatalf("template = %q", result.Template.ID)
	}
	if logs.Len() != 0 {
		t.Fatalf("no warning expected for an omitted id, got %v", logs.All())
	}
}

func TestAccentPrecedence(t *testing.T) {
	tests := []struct {
		name string
		req  preview.Request
		want string
	}{
		{name: "template theme token", req: preview.Request{TemplateID: "classic"}, want: "#1f2937"},
		{name: "template theme variant", req: preview.Request{TemplateID: "executive"}, want: "#1e3a8a"},
		{name: "template accent beats template theme", req: preview.Request{TemplateID: "timeline"}, want: "#7c3aed"},
		{name: "requested theme beats template accent", req: preview.Request{TemplateID: "timeline", ThemeName: "modern", ThemeVariant: "emerald"}, want: "#059669"},
		{name: "request color wins", req: preview.Request{TemplateID: "timeline", ThemeName: "modern", ThemeColor: "#ff0000"}, want: "#ff0000"},
	}
	p := preview.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, doc := render(t, p, tt.req)
			if result.Accent != tt.want {
				t.Fatalf("accent = %q, want %q", result.Accent, tt.want)
			}
			if !strings.Contains(doc.Find("style").Text(), "--rg-page-accent:"+tt.want) {
				t.Fatalf("page accent custom property missing")
			}
		})
	}
}

func TestRenderUnknownThemeKeepsRendering(t *testing.T) {
	result, _ := render(t, preview.New(), preview.Request{TemplateID: "classic", ThemeName: "neon"})
	if result.Theme != "" {
		t.Fatalf("theme = %q, want none", result.Theme)
	}
	if result.Accent != "#2563eb" {
		t.Fatalf("accent = %q, want default", result.Accent)
	}
}

func TestRenderSidebarTemplate(t *testing.T) {
	_, doc := render(t, preview.New(), preview.Request{TemplateID: "modern-cards"})

	aside := doc.Find("aside.rg-aside")
	if aside.Find(".rg-monogram").Text() != "GH" {
		t.Fatalf("monogram = %q", aside.Find(".rg-monogram").Text())
	}
	if aside.Find(`[data-block="skills"]`).Length() != 1 {
		t.Fatalf("skills should render in the sidebar")
	}
	if got := doc.Find(`[data-section="achievements"]`).AttrOr("data-variant", ""); got != "cards" {
		t.Fatalf("achievements variant = %q, want cards", got)
	}
}

func TestEveryTemplateRenders(t *testing.T) {
	p := preview.New()
	for _, def := range p.Templates().List() {
		t.Run(def.ID, func(t *testing.T) {
			_, doc := render(t, p, preview.Request{TemplateID: def.ID})
			if doc.Find(`[data-section="achievements"] [data-key]`).Length() != 3 {
				t.Fatalf("expected three keyed achievements")
			}
		})
	}
}

func TestRenderEditableWithSession(t *testing.T) {
	session := edit.NewMemorySession(testsupport.SampleResume())
	_, doc := render(t, preview.New(), preview.Request{
		TemplateID: "classic",
		Session:    session,
		Editable:   true,
		Endpoint:   "/resumes/r1",
	})

	body := doc.Find("body")
	if body.AttrOr("data-endpoint", "") != "/resumes/r1" {
		t.Fatalf("endpoint attribute missing")
	}
	if !body.HasClass("rg-editing") {
		t.Fatalf("editing class missing")
	}
	if doc.Find(`[data-edit-path="achievements.0.title"]`).Length() != 1 {
		t.Fatalf("editable achievement title missing")
	}
	if doc.Find("script").Length() != 1 {
		t.Fatalf("editor runtime should be embedded once")
	}
	if session.Version() != 0 {
		t.Fatalf("rendering must not mutate the session")
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	p := preview.New()
	data := testsupport.SampleResume()
	first, err := p.Render(testsupport.Context(), preview.Request{Resume: &data, TemplateID: "executive", Editable: true})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	second, err := p.Render(testsupport.Context(), preview.Request{Resume: &data, TemplateID: "executive", Editable: true})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if string(first.HTML) != string(second.HTML) {
		t.Fatalf("renders differ")
	}
}

func TestRenderRequiresDocument(t *testing.T) {
	_, err := preview.New().Render(testsupport.Context(), preview.Request{TemplateID: "classic"})
	if err == nil {
		t.Fatalf("expected error without resume or session")
	}
}
