package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/goliatone/go-resumegen/pkg/render"
)

// DefaultPDFTimeout bounds a single print job.
const DefaultPDFTimeout = 30 * time.Second

// ErrEmptyDocument is returned when there is no HTML to print.
var ErrEmptyDocument = errors.New("export: document is empty")

// PDF prints pages with a headless Chrome. Chrome or Chromium must be
// installed.
type PDF struct {
	Timeout time.Duration
	// ExecPath overrides the browser binary.
	ExecPath string
}

var _ render.Renderer = PDF{}

// Name implements render.Renderer.
func (PDF) Name() string { return "pdf" }

// ContentType implements render.Renderer.
func (PDF) ContentType() string { return "application/pdf" }

// Render implements render.Renderer.
func (p PDF) Render(ctx context.Context, doc render.Document, options render.RenderOptions) ([]byte, error) {
	if len(doc.HTML) == 0 {
		return nil, ErrEmptyDocument
	}

	allocOptions := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p.ExecPath != "" {
		allocOptions = append(allocOptions, chromedp.ExecPath(p.ExecPath))
	}
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOptions...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultPDFTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var out []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, string(doc.HTML)).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := printParams(options).Do(ctx)
			if err != nil {
				return err
			}
			out = data
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("export: print pdf: %w", err)
	}
	return out, nil
}

// PaperSize returns width and height in inches.
func PaperSize(paper string) (float64, float64) {
	if strings.EqualFold(strings.TrimSpace(paper), render.PaperA4) {
		return 8.27, 11.69
	}
	return 8.5, 11
}

func printParams(options render.RenderOptions) *page.PrintToPDFParams {
	width, height := PaperSize(options.Paper)
	margin := options.MarginInches
	if margin <= 0 {
		margin = 0.4
	}
	return page.PrintToPDF().
		WithPrintBackground(true).
		WithPreferCSSPageSize(false).
		WithLandscape(options.Landscape).
		WithPaperWidth(width).
		WithPaperHeight(height).
		WithMarginTop(margin).
		WithMarginBottom(margin).
		WithMarginLeft(margin).
		WithMarginRight(margin)
}
