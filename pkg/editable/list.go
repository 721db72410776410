package editable

import (
	"bytes"

	"github.com/goliatone/go-resumegen/pkg/markup"
	"github.com/goliatone/go-resumegen/pkg/resume"
)

// ListProps configures an editable list of plain strings, such as an
// experience entry's bullet points.
type ListProps struct {
	Path        string
	Items       []string
	Placeholder string
	AddLabel    string
	Class       string
	ItemStyle   string
}

// List writes an editable bullet list. Entries are addressed by index since
// text lists carry no ids.
func List(buf *bytes.Buffer, props ListProps) {
	markup.Open(buf, "ul", markup.A("class", markup.Classes("rg-list", props.Class)), markup.A(AttrList, props.Path))
	for idx, item := range props.Items {
		markup.Open(buf, "li", markup.A("class", "rg-item"), markup.A("style", props.ItemStyle))
		Text(buf, TextProps{
			Path:        resume.JoinPath(props.Path, idx),
			Value:       item,
			Placeholder: props.Placeholder,
		})
		RemoveIndexButton(buf, props.Path, idx)
		markup.Close(buf, "li")
	}
	markup.Close(buf, "ul")
	label := props.AddLabel
	if label == "" {
		label = "Add Item"
	}
	AddButton(buf, props.Path, label)
}

// SkillValue is one entry for the Skills primitive.
type SkillValue struct {
	ID   string
	Name string
}

// SkillsProps configures an editable skill tag list.
type SkillsProps struct {
	Path       string
	Items      []SkillValue
	Class      string
	ChipStyle  string
	ShowRemove bool
}

// Skills writes an editable list of skill chips keyed by id.
func Skills(buf *bytes.Buffer, props SkillsProps) {
	markup.Open(buf, "div", markup.A("class", markup.Classes("rg-skills", props.Class)), markup.A(AttrList, props.Path))
	for idx, item := range props.Items {
		markup.Open(buf, "span", markup.A("class", "rg-item rg-skill"), markup.A("data-key", item.ID), markup.A("style", props.ChipStyle))
		Text(buf, TextProps{
			Path:        resume.JoinPath(props.Path, idx, "name"),
			Value:       item.Name,
			Placeholder: "Skill",
		})
		if props.ShowRemove {
			RemoveButton(buf, props.Path, item.ID)
		}
		markup.Close(buf, "span")
	}
	markup.Close(buf, "div")
	AddButton(buf, props.Path, "Add Skill")
}
