package preview

import (
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-resumegen/pkg/style"
	"github.com/goliatone/go-resumegen/pkg/templates"
)

type look struct {
	theme   string
	variant string
	tokens  map[string]string
	accent  string
}

// resolveLook selects the theme and accent color. Accent precedence: the
// request color, then the accent of an explicitly requested theme, then the
// template accent, then the template theme, then style.DefaultAccent.
func (p *Preview) resolveLook(def templates.Definition, req Request) look {
	name := strings.TrimSpace(req.ThemeName)
	requested := name != ""
	if !requested {
		name = def.Theme
	}
	variant := strings.TrimSpace(req.ThemeVariant)
	if variant == "" && !requested {
		variant = def.ThemeVariant
	}

	out := look{}
	selection, err := p.selector.Select(name, variant)
	if err != nil {
		p.logger.Warn("theme selection failed, using defaults",
			zap.String("theme", name),
			zap.String("variant", variant),
			zap.Error(err),
		)
	} else if selection != nil {
		out.theme = selection.Theme
		out.variant = selection.Variant
		out.tokens = style.TokensFor(selection)
	}

	themeAccent := style.AccentFromTokens(out.tokens)
	switch {
	case strings.TrimSpace(req.ThemeColor) != "":
		out.accent = strings.TrimSpace(req.ThemeColor)
	case requested && themeAccent != "":
		out.accent = themeAccent
	case def.Accent != "":
		out.accent = def.Accent
	default:
		out.accent = style.Accent(themeAccent)
	}
	return out
}
