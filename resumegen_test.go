package resumegen

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadResumeAndRender(t *testing.T) {
	data, err := LoadResume(filepath.Join("pkg", "resume", "testdata", "resume.yaml"))
	if err != nil {
		t.Fatalf("LoadResume: %v", err)
	}
	if data.PersonalInfo.FullName != "Ada Lovelace" {
		t.Fatalf("unexpected name %q", data.PersonalInfo.FullName)
	}

	html, err := RenderHTML(context.Background(), data, "modern-cards")
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	page := string(html)
	if !strings.Contains(page, "Ada Lovelace - Resume") {
		t.Fatalf("expected page title in output")
	}
	if strings.Contains(page, "contenteditable") {
		t.Fatalf("read-only render must not carry editing affordances")
	}
}

func TestLoadResumeErrors(t *testing.T) {
	if _, err := LoadResume(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"summary": "no personal info"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadResume(path); err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestEmbeddedAssets(t *testing.T) {
	for _, name := range []string{"base.css", "editor.js"} {
		if _, err := fs.ReadFile(RuntimeAssetsFS(), name); err != nil {
			t.Fatalf("expected runtime asset %s: %v", name, err)
		}
	}
	for _, name := range []string{"single.tmpl", "sidebar.tmpl", "banner.tmpl"} {
		if _, err := fs.ReadFile(EmbeddedShells(), name); err != nil {
			t.Fatalf("expected shell %s: %v", name, err)
		}
	}
}
