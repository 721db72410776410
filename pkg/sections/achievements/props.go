// Package achievements renders the achievements section through a family of
// interchangeable layouts. Every layout takes the same Props, supports a
// read-only and an editable mode, and keys items by their stable id.
package achievements

import (
	"fmt"

	"github.com/goliatone/go-resumegen/pkg/edit"
	"github.com/goliatone/go-resumegen/pkg/editable"
	"github.com/goliatone/go-resumegen/pkg/resume"
	"github.com/goliatone/go-resumegen/pkg/style"
)

// DefaultPath is the list path achievements live under in a resume document.
const DefaultPath = "achievements"

// AddLabel is the text of the add affordance.
const AddLabel = "Add Achievement"

// Item is a single achievement.
type Item = resume.Achievement

// Action is a triggered add or remove affordance.
type Action = editable.Action

// Props is the contract every achievements layout renders from. Layouts are
// pure functions of Props; the callbacks are the only way out.
type Props struct {
	Items       []Item
	Config      style.SectionStyleConfig
	AccentColor string
	Editable    bool

	OnAddAchievement    func()
	OnRemoveAchievement func(id string)

	// ShowIndicators adds an accent marker to layouts whose items have no
	// marker of their own.
	ShowIndicators bool

	// PathPrefix is the list path used for editable fields. Defaults to
	// DefaultPath.
	PathPrefix string
}

// WithSession wires the add/remove callbacks to an edit session's list at
// the props' path.
func (p Props) WithSession(session edit.Session, onError edit.ErrorHandler) Props {
	callbacks := edit.Bind(session, p.listPath(), onError)
	p.OnAddAchievement = callbacks.OnAdd
	p.OnRemoveAchievement = callbacks.OnRemove
	return p
}

// Handle routes a triggered affordance to the matching callback. Removal is
// always by id.
func (p Props) Handle(action Action) error {
	switch action.Kind {
	case editable.ActionAdd:
		if p.OnAddAchievement == nil {
			return fmt.Errorf("achievements: add is not wired")
		}
		p.OnAddAchievement()
		return nil
	case editable.ActionRemove:
		if action.ItemID == "" {
			return fmt.Errorf("achievements: remove requires an item id")
		}
		if p.OnRemoveAchievement == nil {
			return fmt.Errorf("achievements: remove is not wired")
		}
		p.OnRemoveAchievement(action.ItemID)
		return nil
	default:
		return fmt.Errorf("achievements: unknown action %q", action.Kind)
	}
}

func (p Props) listPath() string {
	if p.PathPrefix == "" {
		return DefaultPath
	}
	return p.PathPrefix
}

func (p Props) fieldPath(index int, field string) string {
	return resume.JoinPath(p.listPath(), index, field)
}
