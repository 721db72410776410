package sanitize

import (
	"strings"
	"testing"
)

func TestRichTextKeepsFormattingDropsScripts(t *testing.T) {
	got := RichText(`Builds <strong>compilers</strong><script>alert(1)</script> <em onclick="x()">fast</em>`)
	if strings.Contains(got, "script") || strings.Contains(got, "onclick") {
		t.Fatalf("unsafe markup survived: %s", got)
	}
	if !strings.Contains(got, "<strong>compilers</strong>") || !strings.Contains(got, "<em>fast</em>") {
		t.Fatalf("formatting was dropped: %s", got)
	}
}

func TestRichTextLinks(t *testing.T) {
	got := RichText(`<a href="javascript:alert(1)">bad</a> <a href="https://example.com">good</a>`)
	if strings.Contains(got, "javascript") {
		t.Fatalf("javascript url survived: %s", got)
	}
	if !strings.Contains(got, `href="https://example.com"`) || !strings.Contains(got, "nofollow") {
		t.Fatalf("expected safe link with nofollow: %s", got)
	}
}

func TestPlainText(t *testing.T) {
	if got := PlainText("<p>Hello <b>world</b></p>"); got != "Hello world" {
		t.Fatalf("unexpected plain text %q", got)
	}
	if got := PlainText("   "); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestURL(t *testing.T) {
	cases := map[string]string{
		"https://ada.example.com":  "https://ada.example.com",
		"mailto:ada@example.com":   "mailto:ada@example.com",
		"javascript:alert(1)":      "",
		"data:image/png;base64,AA": "data:image/png;base64,AA",
		"":                         "",
	}
	for in, want := range cases {
		if got := URL(in); got != want {
			t.Fatalf("URL(%q) = %q, want %q", in, got, want)
		}
	}
}
