package render

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stubRenderer struct{ name string }

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, Document, RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryServesHTMLByDefault(t *testing.T) {
	registry := NewRegistry()
	renderer, err := registry.Get(" HTML ")
	if err != nil {
		t.Fatalf("get html: %v", err)
	}
	out, err := renderer.Render(context.Background(), Document{HTML: []byte("<p>x</p>")}, RenderOptions{})
	if err != nil || string(out) != "<p>x</p>" {
		t.Fatalf("unexpected html output %q (%v)", out, err)
	}
	if byPath, err := registry.ForPath("out/Resume.HTM"); err != nil || byPath.Name() != "html" {
		t.Fatalf("ForPath(.HTM) = %v, %v", byPath, err)
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(stubRenderer{name: "text"}, "txt"); err != nil {
		t.Fatalf("register text: %v", err)
	}
	if err := registry.Register(stubRenderer{name: "TEXT"}); err == nil {
		t.Fatalf("expected duplicate name error")
	}
	if err := registry.Register(stubRenderer{name: "markdown"}, ".txt"); err == nil {
		t.Fatalf("expected claimed extension error")
	}
	if registry.Has("markdown") {
		t.Fatalf("failed registration must not leave a renderer behind")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}
	if err := registry.Register(stubRenderer{name: " "}); err == nil {
		t.Fatalf("expected blank name error")
	}
	if diff := cmp.Diff([]string{"html", "text"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	renderer, err := registry.ForPath("resume.txt")
	if err != nil || renderer.Name() != "text" {
		t.Fatalf("ForPath(.txt) = %v, %v", renderer, err)
	}
}

func TestRegistryUnknownFormat(t *testing.T) {
	registry := NewRegistry()
	if _, err := registry.Get("docx"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if _, err := registry.ForPath("resume.docx"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat for path, got %v", err)
	}
	if _, err := registry.ForPath("resume"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat for a bare name, got %v", err)
	}
	if registry.Has("docx") {
		t.Fatalf("unexpected docx renderer")
	}
}
