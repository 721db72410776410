package editable

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-resumegen/pkg/markup"
)

// Action names carried by affordance buttons.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// AddButton writes the "add item" affordance for the list at listPath.
func AddButton(buf *bytes.Buffer, listPath, label string) {
	markup.Element(buf, "button", label,
		markup.A("type", "button"),
		markup.A("class", "rg-add"),
		markup.A(AttrAction, ActionAdd),
		markup.A(AttrList, listPath),
	)
}

// RemoveButton writes the per-item remove affordance. It is hidden until the
// item is hovered (see the rg-item:hover rule in the base stylesheet) and
// always addresses the item by id.
func RemoveButton(buf *bytes.Buffer, listPath, id string) {
	markup.Element(buf, "button", "×",
		markup.A("type", "button"),
		markup.A("class", "rg-remove"),
		markup.A("aria-label", "Remove"),
		markup.A(AttrAction, ActionRemove),
		markup.A(AttrList, listPath),
		markup.A(AttrItemID, id),
	)
}

// RemoveIndexButton removes an entry from an id-less text list.
func RemoveIndexButton(buf *bytes.Buffer, listPath string, index int) {
	markup.Element(buf, "button", "×",
		markup.A("type", "button"),
		markup.A("class", "rg-remove"),
		markup.A("aria-label", "Remove"),
		markup.A(AttrAction, ActionRemove),
		markup.A(AttrList, listPath),
		markup.A(AttrIndex, strconv.Itoa(index)),
	)
}

// Action is a triggered affordance, decoded from the data attributes of the
// button the user pressed.
type Action struct {
	Kind   string
	List   string
	ItemID string
	// Index is set only for id-less text lists; -1 otherwise.
	Index int
}

// ParseAction decodes an affordance from its data attributes. Keys may be
// given with or without the "data-" prefix and in either kebab or camel case
// (itemId, item-id, data-item-id).
func ParseAction(attrs map[string]string) (Action, error) {
	lookup := make(map[string]string, len(attrs))
	for key, value := range attrs {
		lookup[attrKey(key)] = strings.TrimSpace(value)
	}
	action := Action{
		Kind:   strings.ToLower(lookup["action"]),
		List:   lookup["list"],
		ItemID: lookup["itemid"],
		Index:  -1,
	}
	switch action.Kind {
	case ActionAdd:
	case ActionRemove:
		if raw := lookup["index"]; raw != "" && action.ItemID == "" {
			idx, err := strconv.Atoi(raw)
			if err != nil || idx < 0 {
				return Action{}, fmt.Errorf("editable: invalid index %q", raw)
			}
			action.Index = idx
		}
		if action.ItemID == "" && action.Index < 0 {
			return Action{}, fmt.Errorf("editable: remove action requires an item id")
		}
	case "":
		return Action{}, fmt.Errorf("editable: action is required")
	default:
		return Action{}, fmt.Errorf("editable: unknown action %q", action.Kind)
	}
	return action, nil
}

func attrKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.TrimPrefix(key, "data-")
	return strings.ReplaceAll(key, "-", "")
}
