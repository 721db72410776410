package blocks

import (
	"bytes"

	"github.com/goliatone/go-resumegen/pkg/markup"
	"github.com/goliatone/go-resumegen/pkg/sections/achievements"
	"github.com/goliatone/go-resumegen/pkg/sections/skills"
)

// Achievements renders the headed achievements section through the variant
// registry.
func Achievements(buf *bytes.Buffer, ctx Context, tag string) error {
	if len(ctx.Data.Achievements) == 0 && !ctx.Editable {
		return nil
	}
	props := achievements.Props{
		Items:          ctx.Data.Achievements,
		Config:         ctx.Style,
		AccentColor:    ctx.Accent,
		Editable:       ctx.Editable,
		ShowIndicators: true,
	}
	if ctx.Session != nil {
		props = props.WithSession(ctx.Session, ctx.OnError)
	}
	openSection(buf, ctx, NameAchievements)
	heading(buf, ctx, "Achievements")
	if err := achievements.Render(buf, tag, props); err != nil {
		return err
	}
	markup.Close(buf, "section")
	return nil
}

// Skills renders the headed skills section through the variant registry.
func Skills(buf *bytes.Buffer, ctx Context, tag string) error {
	if len(ctx.Data.Skills) == 0 && !ctx.Editable {
		return nil
	}
	props := skills.Props{
		Items:       ctx.Data.Skills,
		Config:      ctx.Style,
		AccentColor: ctx.Accent,
		Editable:    ctx.Editable,
		ShowLevels:  true,
	}
	if ctx.Session != nil {
		props = props.WithSession(ctx.Session, ctx.OnError)
	}
	openSection(buf, ctx, NameSkills)
	heading(buf, ctx, "Skills")
	if err := skills.Render(buf, tag, props); err != nil {
		return err
	}
	markup.Close(buf, "section")
	return nil
}
