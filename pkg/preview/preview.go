// Package preview turns a resume document into a complete HTML page. It
// resolves the template definition, the theme and the accent color, renders
// the section blocks and hands them to the template's page shell.
package preview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-resumegen/pkg/edit"
	"github.com/goliatone/go-resumegen/pkg/render/template"
	"github.com/goliatone/go-resumegen/pkg/resume"
	"github.com/goliatone/go-resumegen/pkg/sections/blocks"
	"github.com/goliatone/go-resumegen/pkg/style"
	"github.com/goliatone/go-resumegen/pkg/templates"
)

// TokenPageAccent is the custom property shells use for page chrome.
const TokenPageAccent = "rg-page-accent"

// Option customises a Preview.
type Option func(*Preview)

// WithLogger sets the logger used for fallback warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Preview) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithThemeSelector overrides the built-in theme manifests.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(p *Preview) {
		p.selector = selector
	}
}

// WithTemplates overrides the built-in template catalog.
func WithTemplates(registry *templates.Registry) Option {
	return func(p *Preview) {
		p.templates = registry
	}
}

// WithEngine overrides the page shell renderer.
func WithEngine(engine template.TemplateRenderer) Option {
	return func(p *Preview) {
		p.engine = engine
	}
}

// WithLang sets the page language attribute.
func WithLang(lang string) Option {
	return func(p *Preview) {
		if strings.TrimSpace(lang) != "" {
			p.lang = strings.TrimSpace(lang)
		}
	}
}

// Preview renders resume pages. It is safe for concurrent use once built.
type Preview struct {
	logger    *zap.Logger
	selector  theme.ThemeSelector
	templates *templates.Registry
	engine    template.TemplateRenderer
	lang      string

	initErr error
}

// New builds a Preview, filling unset dependencies with the embedded
// catalog, shells and themes.
func New(options ...Option) *Preview {
	p := &Preview{lang: "en"}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	p.applyDefaults()
	return p
}

func (p *Preview) applyDefaults() {
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	if p.templates == nil {
		registry, err := templates.NewBuiltinRegistry()
		if err != nil {
			p.initErr = fmt.Errorf("preview: load templates: %w", err)
			return
		}
		p.templates = registry
	}
	if p.engine == nil {
		engine, err := templates.NewEngine("")
		if err != nil {
			p.initErr = fmt.Errorf("preview: create engine: %w", err)
			return
		}
		p.engine = engine
	}
	if p.selector == nil {
		selector, err := style.BuiltinSelector()
		if err != nil {
			p.initErr = fmt.Errorf("preview: load themes: %w", err)
			return
		}
		p.selector = selector
	}
}

// Templates exposes the catalog in use.
func (p *Preview) Templates() *templates.Registry {
	return p.templates
}

// Request describes one page render.
type Request struct {
	// Resume is rendered as-is. Ignored when Session is set.
	Resume *resume.ResumeData
	// Session supplies the document and backs editable add/remove callbacks.
	Session edit.Session
	// OnError receives mutation failures raised by session callbacks.
	OnError edit.ErrorHandler

	TemplateID   string
	ThemeName    string
	ThemeVariant string
	ThemeColor   string

	// Style overrides individual fields of the resolved style.
	Style style.SectionStyleConfig

	Editable bool
	// Endpoint is where the editor runtime posts edits and actions.
	Endpoint string
}

// Result is a rendered page plus the choices made while rendering it.
type Result struct {
	HTML     []byte
	Template templates.Definition
	// Fallback is true when the requested template id was unknown.
	Fallback bool
	Theme    string
	Variant  string
	Accent   string
}

// Render produces the page for req.
func (p *Preview) Render(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("preview: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if p.initErr != nil {
		return Result{}, p.initErr
	}

	data, err := documentFor(req)
	if err != nil {
		return Result{}, err
	}

	def, ok := p.templates.Resolve(req.TemplateID)
	if def.ID == "" {
		return Result{}, fmt.Errorf("%w: %q and no default", templates.ErrTemplateNotFound, req.TemplateID)
	}
	if !ok && strings.TrimSpace(req.TemplateID) != "" {
		p.logger.Warn("unknown template, using default",
			zap.String("requested", req.TemplateID),
			zap.String("template", def.ID),
		)
	}

	look := p.resolveLook(def, req)
	partial := style.Merge(style.FromTokens(look.tokens), req.Style)
	if def.Font != "" && req.Style.Typography.Body.FontFamily == "" {
		partial.Typography.Body.FontFamily = def.Font
	}

	bctx := blocks.NewContext(data, partial, look.accent, req.Editable)
	if req.Editable && req.Session != nil {
		bctx.Session = req.Session
		bctx.OnError = req.OnError
	}

	header, err := renderBlock(blocks.NameHeader, bctx, def)
	if err != nil {
		return Result{}, err
	}
	mainNames, sideNames := def.Layout()
	main, err := renderBlocks(ctx, mainNames, bctx, def)
	if err != nil {
		return Result{}, err
	}
	side, err := renderBlocks(ctx, sideNames, bctx, def)
	if err != nil {
		return Result{}, err
	}

	vars := make(map[string]string, len(look.tokens)+1)
	for key, value := range look.tokens {
		vars[key] = value
	}
	vars[TokenPageAccent] = look.accent

	page := map[string]any{
		"lang":       p.lang,
		"title":      pageTitle(data),
		"fullName":   data.PersonalInfo.FullName,
		"templateID": def.ID,
		"editable":   req.Editable,
		"endpoint":   req.Endpoint,
		"fontFamily": bctx.Style.Typography.Body.FontFamily,
		"cssVars":    style.CSSVars(vars),
		"baseCSS":    templates.BaseCSS(),
		"editorJS":   templates.EditorJS(),
		"header":     header,
		"main":       main,
		"side":       side,
	}
	html, err := p.engine.RenderTemplate(templates.ShellName(def), page)
	if err != nil {
		return Result{}, &TemplateError{Template: def.ID, Cause: err}
	}

	return Result{
		HTML:     []byte(html),
		Template: def,
		Fallback: !ok,
		Theme:    look.theme,
		Variant:  look.variant,
		Accent:   look.accent,
	}, nil
}

func documentFor(req Request) (resume.ResumeData, error) {
	switch {
	case req.Session != nil:
		return req.Session.Data(), nil
	case req.Resume != nil:
		return *req.Resume, nil
	default:
		return resume.ResumeData{}, errors.New("preview: resume or session is required")
	}
}

func renderBlocks(ctx context.Context, names []string, bctx blocks.Context, def templates.Definition) ([]string, error) {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		html, err := renderBlock(name, bctx, def)
		if err != nil {
			return nil, err
		}
		if html != "" {
			out = append(out, html)
		}
	}
	return out, nil
}

func renderBlock(name string, bctx blocks.Context, def templates.Definition) (string, error) {
	html, err := blocks.Render(name, bctx, def.Variants())
	if err != nil {
		return "", &RenderError{Block: name, Cause: err}
	}
	return html, nil
}

func pageTitle(data resume.ResumeData) string {
	if name := strings.TrimSpace(data.PersonalInfo.FullName); name != "" {
		return name + " - Resume"
	}
	return "Resume"
}
