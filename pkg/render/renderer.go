// Package render defines the output format seam: a rendered resume page goes
// in, bytes in the requested format (HTML, plain text, PDF) come out.
package render

import (
	"context"
)

// Document is a fully rendered resume page.
type Document struct {
	Title string
	HTML  []byte
}

// Renderer converts a rendered page into an output format.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc Document, options RenderOptions) ([]byte, error)
}

// HTML returns the page unchanged.
type HTML struct{}

// Name implements Renderer.
func (HTML) Name() string { return "html" }

// ContentType implements Renderer.
func (HTML) ContentType() string { return "text/html; charset=utf-8" }

// Render implements Renderer.
func (HTML) Render(_ context.Context, doc Document, _ RenderOptions) ([]byte, error) {
	return doc.HTML, nil
}
