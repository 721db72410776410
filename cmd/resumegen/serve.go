package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-resumegen"
	"github.com/goliatone/go-resumegen/internal/server"
	"github.com/goliatone/go-resumegen/internal/store"
	"github.com/goliatone/go-resumegen/internal/watch"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview and inline editing server",
		Long:  "Serve exposes the REST API described at /openapi.json. With --input the document is preloaded under its file name; --watch reloads it on change.",
		RunE:  runServe,
	}
	cmd.Flags().StringP("input", "i", "", "Resume document to preload")
	cmd.Flags().String("addr", "", "Listen address (default \":8080\")")
	cmd.Flags().String("store", "", "Document store: memory, sqlite or postgres")
	cmd.Flags().String("database-url", "", "SQLite path or Postgres URL")
	cmd.Flags().Bool("watch", false, "Reload the preloaded document when the file changes")
	return cmd
}

// documentID derives a store id from a file name: "cv/jane.yaml" -> "jane".
func documentID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.Store, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Warn("close store", zap.Error(err))
		}
	}()

	p, err := buildPreview(cfg, logger)
	if err != nil {
		return err
	}
	srv, err := server.New(ctx, server.Config{
		Addr:    cfg.Addr,
		Store:   st,
		Preview: p,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	if cfg.Input != "" {
		id := documentID(cfg.Input)
		reload := func(ctx context.Context, path string) error {
			data, err := resumegen.LoadResume(path)
			if err != nil {
				return err
			}
			if err := srv.Replace(ctx, id, data); err != nil {
				return err
			}
			logger.Info("document loaded", zap.String("id", id), zap.String("path", path))
			return nil
		}
		if err := reload(ctx, cfg.Input); err != nil {
			return err
		}
		if watching, _ := cmd.Flags().GetBool("watch"); watching {
			w, err := watch.New(reload, watch.WithLogger(logger))
			if err != nil {
				return err
			}
			if err := w.Add(cfg.Input); err != nil {
				w.Stop()
				return err
			}
			if err := w.Start(ctx); err != nil {
				w.Stop()
				return err
			}
			defer w.Stop()
		}
	}

	return srv.ListenAndServe(ctx)
}
