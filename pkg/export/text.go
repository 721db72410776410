// Package export converts rendered resume pages into downloadable formats:
// plain text for applicant tracking systems and PDF through headless Chrome.
package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/goliatone/go-resumegen/pkg/render"
)

// noise is removed before text extraction: page chrome and edit affordances.
const noise = "head, script, style, noscript, button, [aria-hidden='true']"

var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "div": true, "footer": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "header": true, "li": true,
	"main": true, "ol": true, "p": true, "section": true, "ul": true, "br": true,
}

// Text renders pages as plain text.
type Text struct{}

var _ render.Renderer = Text{}

// Name implements render.Renderer.
func (Text) Name() string { return "text" }

// ContentType implements render.Renderer.
func (Text) ContentType() string { return "text/plain; charset=utf-8" }

// Render implements render.Renderer.
func (Text) Render(_ context.Context, doc render.Document, _ render.RenderOptions) ([]byte, error) {
	text, err := PlainText(doc.HTML)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// PlainText extracts the readable text of a rendered page, one block per
// line with upper-cased section headings.
func PlainText(page []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return "", fmt.Errorf("export: parse html: %w", err)
	}
	doc.Find(noise).Remove()

	var w textWriter
	w.walk(doc.Find("body"))
	w.breakLine()
	return strings.Join(w.lines, "\n") + "\n", nil
}

type textWriter struct {
	lines   []string
	current strings.Builder
	space   bool
}

func (w *textWriter) walk(sel *goquery.Selection) {
	sel.Contents().Each(func(_ int, node *goquery.Selection) {
		name := goquery.NodeName(node)
		switch {
		case name == "#text":
			w.text(node.Text())
		case name == "h2":
			w.blank()
			w.text(strings.ToUpper(node.Text()))
			w.breakLine()
		case blockElements[name]:
			w.breakLine()
			if name == "li" {
				w.current.WriteString("- ")
			}
			w.walk(node)
			w.breakLine()
		default:
			w.walk(node)
		}
	})
}

func (w *textWriter) text(raw string) {
	words := strings.Fields(raw)
	if len(words) == 0 {
		if raw != "" {
			w.space = true
		}
		return
	}
	first, _ := utf8.DecodeRuneInString(raw)
	last, _ := utf8.DecodeLastRuneInString(raw)
	if (w.space || unicode.IsSpace(first)) && w.current.Len() > 0 && !strings.HasSuffix(w.current.String(), " ") {
		w.current.WriteByte(' ')
	}
	w.current.WriteString(strings.Join(words, " "))
	w.space = unicode.IsSpace(last)
}

func (w *textWriter) breakLine() {
	line := strings.TrimSpace(w.current.String())
	w.current.Reset()
	w.space = false
	if line == "" || line == "-" {
		return
	}
	w.lines = append(w.lines, line)
}

func (w *textWriter) blank() {
	w.breakLine()
	if len(w.lines) > 0 && w.lines[len(w.lines)-1] != "" {
		w.lines = append(w.lines, "")
	}
}
