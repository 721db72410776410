package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-resumegen"
	"github.com/goliatone/go-resumegen/internal/watch"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render the HTML page whenever the resume document changes",
		RunE:  runWatch,
	}
	addIOFlags(cmd, "Path to the HTML file (required)")
	addLookFlags(cmd)
	cmd.Flags().Duration("debounce", watch.DefaultDebounce, "Quiet period before re-rendering")
	return cmd
}

func runWatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := requireInput(cfg); err != nil {
		return err
	}
	if cfg.Output == "" {
		return errOutputRequired
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	p, err := buildPreview(cfg, logger)
	if err != nil {
		return err
	}
	rerender := func(ctx context.Context, path string) error {
		data, err := resumegen.LoadResume(path)
		if err != nil {
			return err
		}
		req := requestFor(cfg)
		req.Resume = &data
		result, err := p.Render(ctx, req)
		if err != nil {
			return err
		}
		if err := writeOutput(cmd, cfg.Output, result.HTML); err != nil {
			return err
		}
		logger.Info("rendered", zap.String("output", cfg.Output), zap.String("template", result.Template.ID))
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rerender(ctx, cfg.Input); err != nil {
		return err
	}

	debounce, _ := cmd.Flags().GetDuration("debounce")
	w, err := watch.New(rerender, watch.WithLogger(logger), watch.WithDebounce(debounce))
	if err != nil {
		return err
	}
	defer w.Stop()
	if err := w.Add(cfg.Input); err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	logger.Info("watching", zap.String("input", cfg.Input))
	<-ctx.Done()
	return nil
}
