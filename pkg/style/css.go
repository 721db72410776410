package style

import "strings"

// Decl is a single CSS declaration.
type Decl struct {
	Property string
	Value    string
}

// Inline renders declarations in the given order, skipping empty values. The
// output is deterministic so repeated renders are byte-identical.
func Inline(decls ...Decl) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		value := strings.TrimSpace(d.Value)
		if d.Property == "" || value == "" {
			continue
		}
		parts = append(parts, d.Property+":"+sanitizeValue(value))
	}
	return strings.Join(parts, ";")
}

// CSS renders the text style as inline CSS.
func (t TextStyle) CSS() string {
	return Inline(
		Decl{"font-family", t.FontFamily},
		Decl{"font-size", t.FontSize},
		Decl{"font-weight", t.FontWeight},
		Decl{"line-height", t.LineHeight},
		Decl{"color", t.Color},
	)
}

// sanitizeValue strips characters that would let a token value escape its
// declaration.
func sanitizeValue(value string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '"', '\\':
			return -1
		}
		return r
	}, value)
}
