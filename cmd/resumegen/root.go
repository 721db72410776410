package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-resumegen/internal/config"
	"github.com/goliatone/go-resumegen/internal/logging"
	"github.com/goliatone/go-resumegen/pkg/preview"
	"github.com/goliatone/go-resumegen/pkg/templates"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "resumegen",
		Short:         "Render resume documents into styled HTML, text and PDF",
		Long:          "resumegen renders JSON or YAML resume documents with a catalog of templates and serves an inline editing preview.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.String("config", "", "Path to a YAML or JSON config file")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.Bool("dev", false, "Human readable development logging")
	flags.String("templates-dir", "", "Directory with extra catalog files and shell overrides")

	root.AddCommand(
		newRenderCmd(),
		newExportCmd(),
		newGalleryCmd(),
		newServeCmd(),
		newWatchCmd(),
		newValidateCmd(),
		newInitCmd(),
		newTemplatesCmd(),
		newVariantsCmd(),
	)
	return root
}

// flagFields maps flag names to the config fields they override.
func flagFields(cfg *config.Config) map[string]*string {
	return map[string]*string{
		"input":         &cfg.Input,
		"output":        &cfg.Output,
		"template":      &cfg.Template,
		"theme":         &cfg.Theme,
		"variant":       &cfg.ThemeVariant,
		"color":         &cfg.ThemeColor,
		"templates-dir": &cfg.TemplatesDir,
		"paper":         &cfg.Paper,
		"addr":          &cfg.Addr,
		"store":         &cfg.Store,
		"database-url":  &cfg.DatabaseURL,
		"log-level":     &cfg.LogLevel,
	}
}

// loadConfig layers defaults, the config file, RESUMEGEN_* variables and
// explicitly set flags, in increasing precedence.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := &config.Config{}
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return config.Config{}, err
	}
	for name, target := range flagFields(cfg) {
		flag := cmd.Flags().Lookup(name)
		if flag != nil && flag.Changed {
			*target = flag.Value.String()
		}
	}
	if dev, err := cmd.Flags().GetBool("dev"); err == nil && cmd.Flags().Changed("dev") {
		cfg.Development = dev
	}

	merged := cfg.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logging.New(cfg.LogLevel, cfg.Development)
}

// buildTemplates returns the builtin catalog extended with every catalog file
// found in the configured templates directory.
func buildTemplates(cfg config.Config) (*templates.Registry, error) {
	registry, err := templates.NewBuiltinRegistry()
	if err != nil {
		return nil, err
	}
	if cfg.TemplatesDir == "" {
		return registry, nil
	}
	catalogs, err := templates.LoadDir(os.DirFS(cfg.TemplatesDir), ".")
	if err != nil {
		return nil, err
	}
	for _, catalog := range catalogs {
		if err := registry.AddCatalog(catalog); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func buildPreview(cfg config.Config, logger *zap.Logger) (*preview.Preview, error) {
	registry, err := buildTemplates(cfg)
	if err != nil {
		return nil, err
	}
	engine, err := templates.NewEngine(cfg.TemplatesDir)
	if err != nil {
		return nil, err
	}
	return preview.New(
		preview.WithLogger(logger),
		preview.WithTemplates(registry),
		preview.WithEngine(engine),
	), nil
}

func requestFor(cfg config.Config) preview.Request {
	return preview.Request{
		TemplateID:   cfg.Template,
		ThemeName:    cfg.Theme,
		ThemeVariant: cfg.ThemeVariant,
		ThemeColor:   cfg.ThemeColor,
	}
}

// addLookFlags registers the template and theme selection flags.
func addLookFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("template", "t", "", "Template id (see `resumegen templates`)")
	flags.String("theme", "", "Theme name overriding the template theme")
	flags.String("variant", "", "Theme variant")
	flags.String("color", "", "Accent color overriding the theme")
}

func addIOFlags(cmd *cobra.Command, outputHelp string) {
	cmd.Flags().StringP("input", "i", "", "Path to the resume document (.json, .yaml)")
	cmd.Flags().StringP("output", "o", "", outputHelp)
}

func requireInput(cfg config.Config) error {
	if strings.TrimSpace(cfg.Input) == "" {
		return fmt.Errorf("an input document is required (--input or RESUMEGEN_INPUT)")
	}
	return nil
}

// writeOutput writes data to path, or to the command's stdout when path is
// empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
