package markup

import (
	"bytes"
	"testing"
)

func TestElementEscapes(t *testing.T) {
	var buf bytes.Buffer
	Element(&buf, "p", `<b>"hi"</b>`, A("class", "x y"), A("title", ""), Flag("hidden"), A("data-v", `a"b`))

	want := `<p class="x y" hidden data-v="a&#34;b">&lt;b&gt;&#34;hi&#34;&lt;/b&gt;</p>`
	if got := buf.String(); got != want {
		t.Fatalf("unexpected markup:\nwant %s\ngot  %s", want, got)
	}
}

func TestClasses(t *testing.T) {
	if got := Classes("a", " ", "", " b "); got != "a b" {
		t.Fatalf("unexpected classes %q", got)
	}
}
