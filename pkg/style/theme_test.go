package style

import (
	"testing"

	theme "github.com/goliatone/go-theme"
)

func TestManifestSelectorMergesVariantTokens(t *testing.T) {
	selector, err := NewManifestSelector(&theme.Manifest{
		Name:   "acme",
		Tokens: map[string]string{"accent": "#123456", "color-muted": "#888888"},
		Variants: map[string]theme.Variant{
			"dark": {Tokens: map[string]string{"accent": "#654321"}},
		},
	})
	if err != nil {
		t.Fatalf("new selector: %v", err)
	}

	selection, err := selector.Select("", "dark")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if selection.Theme != "acme" || selection.Variant != "dark" {
		t.Fatalf("unexpected selection %s/%s", selection.Theme, selection.Variant)
	}

	tokens := TokensFor(selection)
	if AccentFromTokens(tokens) != "#654321" {
		t.Fatalf("variant accent not applied: %v", tokens)
	}
	if got := Resolve(FromTokens(tokens)).Colors.Text.Muted; got != "#888888" {
		t.Fatalf("muted color = %q", got)
	}
}

func TestManifestSelectorUnknownVariantFallsBack(t *testing.T) {
	selector, _ := NewManifestSelector(&theme.Manifest{Name: "acme", Tokens: map[string]string{"brand": "#abcdef"}})
	selection, err := selector.Select("acme", "nope")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if selection.Variant != "" {
		t.Fatalf("unknown variant kept: %q", selection.Variant)
	}
	if AccentFromTokens(TokensFor(selection)) != "#abcdef" {
		t.Fatalf("brand token should back the accent")
	}
}

func TestManifestSelectorUnknownTheme(t *testing.T) {
	selector, _ := NewManifestSelector()
	if _, err := selector.Select("missing", ""); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}

func TestBuiltinSelector(t *testing.T) {
	selector, err := BuiltinSelector()
	if err != nil {
		t.Fatalf("builtin selector: %v", err)
	}
	selection, err := selector.Select("", "")
	if err != nil {
		t.Fatalf("select default: %v", err)
	}
	if selection.Theme != "classic" {
		t.Fatalf("default theme = %q", selection.Theme)
	}
	if len(selector.Names()) != 3 {
		t.Fatalf("expected 3 builtin themes, got %v", selector.Names())
	}
}

func TestCSSVarsSorted(t *testing.T) {
	got := CSSVars(map[string]string{"b": "2", "a": "1"})
	if got != "--a:1;--b:2" {
		t.Fatalf("unexpected vars %q", got)
	}
}
