package server

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openapiDocument []byte

// LoadOpenAPI parses and validates the embedded API description.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(openapiDocument)
	if err != nil {
		return nil, fmt.Errorf("server: load openapi: %w", err)
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("server: validate openapi: %w", err)
	}
	return spec, nil
}

// documented reports whether the method and ServeMux pattern path appear in
// the OpenAPI document.
func documented(spec *openapi3.T, method, path string) bool {
	if spec == nil || spec.Paths == nil {
		return false
	}
	item := spec.Paths.Value(path)
	if item == nil {
		return false
	}
	return item.GetOperation(strings.ToUpper(method)) != nil
}

func marshalOpenAPI(spec *openapi3.T) ([]byte, error) {
	raw, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("server: encode openapi: %w", err)
	}
	return raw, nil
}
