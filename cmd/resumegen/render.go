package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-resumegen"
	"github.com/goliatone/go-resumegen/pkg/export"
	"github.com/goliatone/go-resumegen/pkg/render"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a resume to a read-only HTML page",
		RunE:  runRender,
	}
	addIOFlags(cmd, "Path to the HTML file (stdout if empty)")
	addLookFlags(cmd)
	return cmd
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := requireInput(cfg); err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	data, err := resumegen.LoadResume(cfg.Input)
	if err != nil {
		return err
	}
	p, err := buildPreview(cfg, logger)
	if err != nil {
		return err
	}
	req := requestFor(cfg)
	req.Resume = &data
	result, err := p.Render(cmd.Context(), req)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, cfg.Output, result.HTML); err != nil {
		return err
	}
	logger.Info("rendered resume",
		zap.String("input", cfg.Input),
		zap.String("template", result.Template.ID),
		zap.Bool("fallback", result.Fallback),
	)
	return nil
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a resume as plain text or PDF",
		Long:  "Export renders the resume with the selected template, then converts the page. PDF output drives a local headless Chrome.",
		RunE:  runExport,
	}
	addIOFlags(cmd, "Path to the output file (stdout if empty)")
	addLookFlags(cmd)
	cmd.Flags().StringP("format", "f", "", "Output format (html, text, pdf); inferred from --output, else text")
	cmd.Flags().String("paper", "", "Paper size for PDF output (letter, a4)")
	cmd.Flags().Duration("timeout", export.DefaultPDFTimeout, "PDF rendering timeout")
	cmd.Flags().String("chrome", "", "Path to the Chrome executable")
	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := requireInput(cfg); err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	format, _ := cmd.Flags().GetString("format")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	chrome, _ := cmd.Flags().GetString("chrome")

	formats := render.NewRegistry()
	if err := export.Register(formats, export.PDF{Timeout: timeout, ExecPath: chrome}); err != nil {
		return err
	}
	renderer, err := pickRenderer(formats, format, cfg.Output)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, formats.List())
	}

	data, err := resumegen.LoadResume(cfg.Input)
	if err != nil {
		return err
	}
	p, err := buildPreview(cfg, logger)
	if err != nil {
		return err
	}
	req := requestFor(cfg)
	req.Resume = &data
	result, err := p.Render(cmd.Context(), req)
	if err != nil {
		return err
	}
	out, err := renderer.Render(cmd.Context(), render.Document{
		Title: data.PersonalInfo.FullName,
		HTML:  result.HTML,
	}, render.RenderOptions{Paper: cfg.Paper})
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, cfg.Output, out); err != nil {
		return err
	}
	logger.Info("exported resume",
		zap.String("format", renderer.Name()),
		zap.String("template", result.Template.ID),
		zap.Int("bytes", len(out)),
	)
	return nil
}

// pickRenderer resolves an explicit format first, then the output extension,
// then falls back to plain text.
func pickRenderer(formats *render.Registry, format, output string) (render.Renderer, error) {
	switch {
	case format != "":
		return formats.Get(format)
	case output != "":
		return formats.ForPath(output)
	default:
		return formats.Get("text")
	}
}

func newGalleryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery [template ids...]",
		Short: "Render one HTML page per template into a directory",
		RunE:  runGallery,
	}
	cmd.Flags().StringP("input", "i", "", "Path to the resume document (.json, .yaml)")
	cmd.Flags().StringP("output", "o", "", "Directory receiving <template>.html files (default \"gallery\")")
	return cmd
}

func runGallery(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := requireInput(cfg); err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	dir := cfg.Output
	if dir == "" {
		dir = "gallery"
	}

	data, err := resumegen.LoadResume(cfg.Input)
	if err != nil {
		return err
	}
	p, err := buildPreview(cfg, logger)
	if err != nil {
		return err
	}
	results, err := export.RenderGallery(cmd.Context(), p, data, args)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create gallery directory: %w", err)
	}
	for _, result := range results {
		path := filepath.Join(dir, result.Template.ID+".html")
		if err := os.WriteFile(path, result.HTML, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
