// Package markup holds the small HTML writing helpers shared by the section
// renderers. Everything written is escaped and attributes keep the order they
// were given in, so the same input always produces the same bytes.
package markup

import (
	"bytes"
	"html"
	"strings"
)

// Attr is an HTML attribute. Attributes with an empty value are skipped
// unless Bare is set.
type Attr struct {
	Name  string
	Value string
	Bare  bool
}

// A builds an attribute.
func A(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

// Flag builds a value-less attribute such as hidden.
func Flag(name string) Attr {
	return Attr{Name: name, Bare: true}
}

// Open writes an opening tag.
func Open(buf *bytes.Buffer, tag string, attrs ...Attr) {
	buf.WriteByte('<')
	buf.WriteString(tag)
	writeAttrs(buf, attrs)
	buf.WriteByte('>')
}

// Close writes a closing tag.
func Close(buf *bytes.Buffer, tag string) {
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteByte('>')
}

// Text writes escaped text.
func Text(buf *bytes.Buffer, text string) {
	buf.WriteString(html.EscapeString(text))
}

// Element writes a complete element with escaped text content.
func Element(buf *bytes.Buffer, tag, text string, attrs ...Attr) {
	Open(buf, tag, attrs...)
	Text(buf, text)
	Close(buf, tag)
}

// Raw writes pre-rendered, trusted HTML.
func Raw(buf *bytes.Buffer, fragment string) {
	buf.WriteString(fragment)
}

// Classes joins non-empty class tokens.
func Classes(parts ...string) string {
	keep := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keep = append(keep, trimmed)
		}
	}
	return strings.Join(keep, " ")
}

func writeAttrs(buf *bytes.Buffer, attrs []Attr) {
	for _, attr := range attrs {
		name := strings.TrimSpace(attr.Name)
		if name == "" {
			continue
		}
		if attr.Bare {
			buf.WriteByte(' ')
			buf.WriteString(name)
			continue
		}
		if attr.Value == "" {
			continue
		}
		buf.WriteByte(' ')
		buf.WriteString(name)
		buf.WriteString(`="`)
		buf.WriteString(html.EscapeString(attr.Value))
		buf.WriteByte('"')
	}
}
