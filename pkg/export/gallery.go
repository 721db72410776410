package export

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-resumegen/pkg/preview"
	"github.com/goliatone/go-resumegen/pkg/render"
	"github.com/goliatone/go-resumegen/pkg/resume"
)

// GalleryConcurrency caps concurrent template renders.
const GalleryConcurrency = 4

// RenderGallery renders data with every template in ids concurrently.
// Results keep the order of ids. An empty ids renders the whole catalog.
func RenderGallery(ctx context.Context, p *preview.Preview, data resume.ResumeData, ids []string) ([]preview.Result, error) {
	if p == nil {
		return nil, fmt.Errorf("export: preview is required")
	}
	if len(ids) == 0 {
		for _, def := range p.Templates().List() {
			ids = append(ids, def.ID)
		}
	}

	results := make([]preview.Result, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(GalleryConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			doc := data
			result, err := p.Render(gctx, preview.Request{Resume: &doc, TemplateID: id})
			if err != nil {
				return fmt.Errorf("export: gallery %s: %w", id, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Register adds the text (.txt) and PDF (.pdf) renderers to registry.
func Register(registry *render.Registry, pdf PDF) error {
	if err := registry.Register(Text{}, ".txt"); err != nil {
		return err
	}
	return registry.Register(pdf, ".pdf")
}
