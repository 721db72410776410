package templates

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resumegen/pkg/sections/achievements"
	"github.com/goliatone/go-resumegen/pkg/sections/skills"
)

func TestBuiltinCatalogIsValid(t *testing.T) {
	registry, err := NewBuiltinRegistry()
	if err != nil {
		t.Fatalf("NewBuiltinRegistry() error = %v", err)
	}

	list := registry.List()
	if len(list) < 11 {
		t.Fatalf("expected at least 11 templates, got %d", len(list))
	}
	def, ok := registry.Default()
	if !ok || def.ID != "classic" {
		t.Fatalf("default = %q (%v), want classic", def.ID, ok)
	}
}

func TestBuiltinCatalogCoversEveryAchievementsLayout(t *testing.T) {
	registry, err := NewBuiltinRegistry()
	if err != nil {
		t.Fatalf("NewBuiltinRegistry() error = %v", err)
	}

	seen := map[string]bool{}
	for _, def := range registry.List() {
		canonical, ok := achievements.Registry().Canonical(def.AchievementsVariant)
		if !ok {
			t.Errorf("template %s: achievements variant %q does not resolve", def.ID, def.AchievementsVariant)
			continue
		}
		seen[canonical] = true
		if def.SkillsVariant != "" {
			if _, ok := skills.Registry().Canonical(def.SkillsVariant); !ok {
				t.Errorf("template %s: skills variant %q does not resolve", def.ID, def.SkillsVariant)
			}
		}
	}
	for _, tag := range achievements.Registry().Tags() {
		if !seen[tag] {
			t.Errorf("no built-in template uses achievements layout %q", tag)
		}
	}
}

func TestRegistryResolveFallsBackToDefault(t *testing.T) {
	registry, err := NewBuiltinRegistry()
	if err != nil {
		t.Fatalf("NewBuiltinRegistry() error = %v", err)
	}

	def, ok := registry.Resolve("  Modern-Cards ")
	if !ok || def.ID != "modern-cards" {
		t.Fatalf("Resolve(Modern-Cards) = %q, %v", def.ID, ok)
	}

	def, ok = registry.Resolve("does-not-exist")
	if ok {
		t.Fatalf("expected fallback for unknown id")
	}
	if def.ID != "classic" {
		t.Fatalf("fallback = %q, want classic", def.ID)
	}

	if _, err := registry.Get("does-not-exist"); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("Get() error = %v, want ErrTemplateNotFound", err)
	}
}

func TestDefinitionValidate(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
		want string
	}{
		{name: "missing id", def: Definition{Shell: ShellSingle}, want: "id is required"},
		{name: "unknown shell", def: Definition{ID: "x", Shell: "triple"}, want: "unknown shell"},
		{name: "unknown block", def: Definition{ID: "x", Shell: ShellSingle, Order: []string{"hobbies"}}, want: "unknown block"},
		{name: "header in order", def: Definition{ID: "x", Shell: ShellBanner, Order: []string{"header"}}, want: "placed by the shell"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Validate() error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestDefinitionLayout(t *testing.T) {
	def := Definition{
		ID:      "x",
		Shell:   ShellSidebar,
		Order:   []string{"summary", "experience"},
		Sidebar: []string{"skills"},
	}
	main, side := def.Layout()
	if diff := cmp.Diff([]string{"summary", "experience"}, main); diff != "" {
		t.Fatalf("main mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"skills"}, side); diff != "" {
		t.Fatalf("side mismatch (-want +got):\n%s", diff)
	}

	def.Shell = ShellSingle
	main, side = def.Layout()
	if diff := cmp.Diff([]string{"summary", "experience", "skills"}, main); diff != "" {
		t.Fatalf("single main mismatch (-want +got):\n%s", diff)
	}
	if side != nil {
		t.Fatalf("single shell should have no side blocks, got %v", side)
	}
}

func TestLoadDirAddsCatalogs(t *testing.T) {
	catalogs, err := LoadDir(os.DirFS("testdata"), "catalogs")
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if len(catalogs) != 1 {
		t.Fatalf("expected 1 catalog, got %d", len(catalogs))
	}

	registry, err := NewBuiltinRegistry()
	if err != nil {
		t.Fatalf("NewBuiltinRegistry() error = %v", err)
	}
	if err := registry.AddCatalog(catalogs[0]); err != nil {
		t.Fatalf("AddCatalog() error = %v", err)
	}
	def, err := registry.Get("portfolio")
	if err != nil {
		t.Fatalf("Get(portfolio) error = %v", err)
	}
	if def.Name != "portfolio" {
		t.Fatalf("name should default to id, got %q", def.Name)
	}
	if got, _ := registry.Default(); got.ID != "classic" {
		t.Fatalf("catalog without default must keep classic, got %q", got.ID)
	}
}

func TestDecodeCatalogRejectsUnknownFields(t *testing.T) {
	_, err := DecodeCatalog(strings.NewReader("templates:\n  - id: x\n    colour: red\n"))
	if err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestEmbeddedShellsRender(t *testing.T) {
	engine, err := NewEngine("")
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	for _, shell := range []string{ShellSingle, ShellSidebar, ShellBanner} {
		out, err := engine.RenderTemplate(shell, map[string]any{
			"lang":       "en",
			"title":      "Grace <Hopper>",
			"fullName":   "Grace Brewster Hopper",
			"header":     `<header class="rg-header"></header>`,
			"main":       []string{`<section data-block="summary"></section>`},
			"side":       []string{`<section data-block="skills"></section>`},
			"editable":   false,
			"templateID": "classic",
		})
		if err != nil {
			t.Fatalf("%s: RenderTemplate() error = %v", shell, err)
		}
		if !strings.Contains(out, "Grace &lt;Hopper&gt;") {
			t.Errorf("%s: title should be escaped", shell)
		}
		if !strings.Contains(out, `data-block="summary"`) {
			t.Errorf("%s: main blocks missing", shell)
		}
		if strings.Contains(out, "<script>") {
			t.Errorf("%s: read-only page should not embed the editor", shell)
		}
	}
}

func TestRuntimeAssets(t *testing.T) {
	if !strings.Contains(BaseCSS(), ".rg-remove") {
		t.Fatalf("base.css should style remove affordances")
	}
	if !strings.Contains(EditorJS(), "data-edit-path") {
		t.Fatalf("editor.js should bind editable fields")
	}
}
