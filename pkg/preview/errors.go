package preview

import "fmt"

// TemplateError reports a page shell that could not be loaded or executed.
type TemplateError struct {
	Template string
	Cause    error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("preview: template %q: %v", e.Template, e.Cause)
	}
	return fmt.Sprintf("preview: template %q", e.Template)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError reports a block that failed to render.
type RenderError struct {
	Block string
	Cause error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("preview: render %s: %v", e.Block, e.Cause)
	}
	return fmt.Sprintf("preview: render %s", e.Block)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
