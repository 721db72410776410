package resume

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DetectFormat picks the encoding from a file extension, defaulting to JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode reads a document, validates the raw payload against the schema,
// assigns missing ids and runs struct validation.
func Decode(r io.Reader, format Format) (ResumeData, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return ResumeData{}, fmt.Errorf("resume: read document: %w", err)
	}

	payload := raw
	if format == FormatYAML {
		payload, err = yamlToJSON(raw)
		if err != nil {
			return ResumeData{}, err
		}
	}

	if err := ValidateDocument(payload); err != nil {
		return ResumeData{}, err
	}

	var data ResumeData
	if err := json.Unmarshal(payload, &data); err != nil {
		return ResumeData{}, fmt.Errorf("resume: decode document: %w", err)
	}
	data.EnsureIDs()
	if err := data.Validate(); err != nil {
		return ResumeData{}, err
	}
	return data, nil
}

// DecodeBytes is Decode over an in-memory payload.
func DecodeBytes(raw []byte, format Format) (ResumeData, error) {
	return Decode(bytes.NewReader(raw), format)
}

// Encode writes the document in the requested format.
func Encode(w io.Writer, data ResumeData, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("resume: encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("resume: encode json: %w", err)
		}
		return nil
	}
}

// yamlToJSON normalises YAML input so the same schema gate applies to both
// encodings.
func yamlToJSON(raw []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("resume: decode yaml: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("resume: convert yaml: %w", err)
	}
	return out, nil
}
