// Package resumegen renders resume documents into styled, optionally
// editable HTML pages.
//
// Most callers only need LoadResume and RenderHTML; the preview, templates and
// sections packages expose the full surface.
package resumegen

import (
	"context"
	"fmt"
	"os"

	"github.com/goliatone/go-resumegen/pkg/preview"
	"github.com/goliatone/go-resumegen/pkg/resume"
)

// Request aliases preview.Request for callers of the root package.
type Request = preview.Request

// Result aliases preview.Result.
type Result = preview.Result

// NewPreview builds a renderer backed by the embedded catalog and themes
// unless options replace them.
func NewPreview(options ...preview.Option) *preview.Preview {
	return preview.New(options...)
}

// LoadResume decodes a JSON or YAML document from disk, picking the format by
// extension. Missing item ids are assigned.
func LoadResume(path string) (resume.ResumeData, error) {
	f, err := os.Open(path)
	if err != nil {
		return resume.ResumeData{}, fmt.Errorf("resumegen: open %s: %w", path, err)
	}
	defer f.Close()
	return resume.Decode(f, resume.DetectFormat(path))
}

// RenderHTML renders a read-only page with the named template. An unknown id
// falls back to the default template.
func RenderHTML(ctx context.Context, data resume.ResumeData, templateID string, options ...preview.Option) ([]byte, error) {
	result, err := preview.New(options...).Render(ctx, preview.Request{
		Resume:     &data,
		TemplateID: templateID,
	})
	if err != nil {
		return nil, err
	}
	return result.HTML, nil
}
