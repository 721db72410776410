// Package editable provides the click-to-edit primitives every section and
// template composes. Each primitive renders a contenteditable element tagged
// with the data path its value is written back to; the client runtime posts
// {path, value} pairs to the edit session.
package editable

import (
	"bytes"
	"strconv"

	"github.com/goliatone/go-resumegen/pkg/markup"
)

// Data attribute names forming the edit contract with the client runtime.
const (
	AttrPath        = "data-edit-path"
	AttrPlaceholder = "data-placeholder"
	AttrMultiline   = "data-multiline"
	AttrKind        = "data-edit-kind"
	AttrAction      = "data-action"
	AttrList        = "data-list"
	AttrItemID      = "data-item-id"
	AttrIndex       = "data-index"
)

// TextProps configures an editable text field.
type TextProps struct {
	Path        string
	Value       string
	Placeholder string
	Multiline   bool
	// Tag defaults to span, or div when Multiline is set.
	Tag   string
	Class string
	Style string
	Kind  string
}

// Text writes an editable text field.
func Text(buf *bytes.Buffer, props TextProps) {
	tag := props.Tag
	if tag == "" {
		tag = "span"
		if props.Multiline {
			tag = "div"
		}
	}
	kind := props.Kind
	if kind == "" {
		kind = "text"
	}
	markup.Open(buf, tag,
		markup.A("class", markup.Classes("rg-editable", props.Class)),
		markup.A("style", props.Style),
		markup.A(AttrPath, props.Path),
		markup.A(AttrKind, kind),
		markup.A(AttrPlaceholder, props.Placeholder),
		markup.A(AttrMultiline, strconv.FormatBool(props.Multiline)),
		markup.A("contenteditable", "true"),
	)
	markup.Text(buf, props.Value)
	markup.Close(buf, tag)
}

// Date writes an editable date field. Values are free text (e.g. "2021-04"
// or "Present"); formatting is the template's concern.
func Date(buf *bytes.Buffer, path, value, placeholder, class string) {
	if placeholder == "" {
		placeholder = "MM/YYYY"
	}
	Text(buf, TextProps{
		Path:        path,
		Value:       value,
		Placeholder: placeholder,
		Class:       markup.Classes("rg-date", class),
		Kind:        "date",
	})
}
