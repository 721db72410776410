package resume

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/resume.schema.json
var documentSchema []byte

// Schema returns the JSON Schema for raw resume documents.
func Schema() []byte {
	out := make([]byte, len(documentSchema))
	copy(out, documentSchema)
	return out
}

// SchemaError reports a failure loading the schema itself or parsing the
// document, as opposed to the document violating the schema.
type SchemaError struct {
	Message string
	Cause   error
}

func (e *SchemaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resume: schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("resume: schema: %s", e.Message)
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// ValidateDocument checks a raw JSON document against the embedded schema.
// Violations are returned as *ValidationError.
func ValidateDocument(raw []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(documentSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return &SchemaError{Message: "validate document", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return verr
}
