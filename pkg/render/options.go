package render

// Paper sizes understood by print renderers.
const (
	PaperLetter = "letter"
	PaperA4     = "a4"
)

// RenderOptions carry per-request output settings. Renderers ignore the
// fields that do not apply to their format.
type RenderOptions struct {
	// Paper is PaperLetter or PaperA4; empty means PaperLetter.
	Paper     string
	Landscape bool
	// MarginInches applies to every side; zero means the renderer default.
	MarginInches float64
}
