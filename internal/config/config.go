// Package config loads resumegen settings from a YAML or JSON file and from
// RESUMEGEN_* environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-resumegen/internal/logging"
	"github.com/goliatone/go-resumegen/pkg/render"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RESUMEGEN_"

// Store backends.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Config holds CLI and server settings. Every field is optional; flags and
// defaults fill the gaps.
type Config struct {
	Input  string `json:"input,omitempty" yaml:"input,omitempty"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	Template     string `json:"template,omitempty" yaml:"template,omitempty"`
	Theme        string `json:"theme,omitempty" yaml:"theme,omitempty"`
	ThemeVariant string `json:"theme_variant,omitempty" yaml:"theme_variant,omitempty"`
	ThemeColor   string `json:"theme_color,omitempty" yaml:"theme_color,omitempty"`
	// TemplatesDir holds extra catalog files and shell overrides.
	TemplatesDir string `json:"templates_dir,omitempty" yaml:"templates_dir,omitempty"`
	Paper        string `json:"paper,omitempty" yaml:"paper,omitempty"`

	Addr        string `json:"addr,omitempty" yaml:"addr,omitempty"`
	Store       string `json:"store,omitempty" yaml:"store,omitempty"`
	DatabaseURL string `json:"database_url,omitempty" yaml:"database_url,omitempty"`

	LogLevel    string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	Development bool   `json:"development,omitempty" yaml:"development,omitempty"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Template: "classic",
		Paper:    render.PaperLetter,
		Addr:     ":8080",
		Store:    StoreMemory,
		LogLevel: "info",
	}
}

// Load reads a config file, picking the decoder by extension.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("config: path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".yaml", ".yml", "":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return nil, fmt.Errorf("config: unsupported file type %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyEnv overlays RESUMEGEN_* variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}
	fields := map[string]*string{
		"INPUT":         &c.Input,
		"OUTPUT":        &c.Output,
		"TEMPLATE":      &c.Template,
		"THEME":         &c.Theme,
		"THEME_VARIANT": &c.ThemeVariant,
		"THEME_COLOR":   &c.ThemeColor,
		"TEMPLATES_DIR": &c.TemplatesDir,
		"PAPER":         &c.Paper,
		"ADDR":          &c.Addr,
		"STORE":         &c.Store,
		"DATABASE_URL":  &c.DatabaseURL,
		"LOG_LEVEL":     &c.LogLevel,
	}
	for key, target := range fields {
		if value := getenv(EnvPrefix + key); value != "" {
			*target = value
		}
	}
	if value := getenv(EnvPrefix + "DEVELOPMENT"); value != "" {
		dev, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("config: %sDEVELOPMENT: %w", EnvPrefix, err)
		}
		c.Development = dev
	}
	return nil
}

// Validate checks value ranges and combinations.
func (c *Config) Validate() error {
	switch c.Store {
	case "", StoreMemory, StoreSQLite:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: 'database_url' is required for the postgres store")
		}
	default:
		return fmt.Errorf("config error: unknown store %q", c.Store)
	}
	switch strings.ToLower(c.Paper) {
	case "", render.PaperLetter, render.PaperA4:
	default:
		return fmt.Errorf("config error: unknown paper size %q", c.Paper)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}
	if c.TemplatesDir != "" {
		if info, err := os.Stat(c.TemplatesDir); err != nil || !info.IsDir() {
			return fmt.Errorf("config error: templates_dir is not a directory: %s", c.TemplatesDir)
		}
	}
	return nil
}

// MergeWithDefaults returns a copy with empty fields filled from defaults.
// Booleans are not merged; an unset bool cannot be told from false.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c
	fill := func(value *string, fallback string) {
		if *value == "" {
			*value = fallback
		}
	}
	fill(&result.Input, defaults.Input)
	fill(&result.Output, defaults.Output)
	fill(&result.Template, defaults.Template)
	fill(&result.Theme, defaults.Theme)
	fill(&result.ThemeVariant, defaults.ThemeVariant)
	fill(&result.ThemeColor, defaults.ThemeColor)
	fill(&result.TemplatesDir, defaults.TemplatesDir)
	fill(&result.Paper, defaults.Paper)
	fill(&result.Addr, defaults.Addr)
	fill(&result.Store, defaults.Store)
	fill(&result.DatabaseURL, defaults.DatabaseURL)
	fill(&result.LogLevel, defaults.LogLevel)
	return result
}
