package resume

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// PathError reports a path that cannot be resolved against a document.
type PathError struct {
	Path    string
	Segment string
	Message string
}

func (e *PathError) Error() string {
	if e.Segment != "" {
		return fmt.Sprintf("resume: path %q: segment %q: %s", e.Path, e.Segment, e.Message)
	}
	return fmt.Sprintf("resume: path %q: %s", e.Path, e.Message)
}

// ParsePath splits a dotted or bracketed path into segments. Both
// "experience[2].bulletPoints[0]" and "experience.2.bulletPoints.0" yield
// [experience 2 bulletPoints 0].
func ParsePath(path string) ([]string, error) {
	clean := strings.TrimSpace(path)
	clean = strings.TrimPrefix(clean, "$.")
	clean = strings.TrimPrefix(clean, "#/")

	replacer := strings.NewReplacer("[", ".", "]", "", "/", ".")
	clean = replacer.Replace(clean)
	clean = strings.Trim(clean, ".")
	if clean == "" {
		return nil, &PathError{Path: path, Message: "path is empty"}
	}

	parts := strings.Split(clean, ".")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			return nil, &PathError{Path: path, Message: "empty segment"}
		}
		out = append(out, segment)
	}
	return out, nil
}

// JoinPath builds the dotted path used by editable fields, e.g.
// JoinPath("achievements", 2, "title") == "achievements.2.title".
func JoinPath(parts ...any) string {
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		switch v := part.(type) {
		case string:
			if v = strings.Trim(strings.TrimSpace(v), "."); v != "" {
				segments = append(segments, v)
			}
		case int:
			segments = append(segments, strconv.Itoa(v))
		default:
			segments = append(segments, fmt.Sprint(v))
		}
	}
	return strings.Join(segments, ".")
}

// Get returns the text value stored at path.
func Get(data ResumeData, path string) (string, error) {
	target, err := resolve(reflect.ValueOf(&data).Elem(), path)
	if err != nil {
		return "", err
	}
	if target.Kind() != reflect.String {
		return "", &PathError{Path: path, Message: "not a text field"}
	}
	return target.String(), nil
}

// Set writes value into the text field addressed by path. Containers,
// non-text leaves and item ids are rejected.
func Set(data *ResumeData, path, value string) error {
	if data == nil {
		return &PathError{Path: path, Message: "document is nil"}
	}
	if segments, err := ParsePath(path); err == nil && segments[len(segments)-1] == "id" {
		return &PathError{Path: path, Segment: "id", Message: "ids are immutable"}
	}
	target, err := resolve(reflect.ValueOf(data).Elem(), path)
	if err != nil {
		return err
	}
	if target.Kind() != reflect.String || !target.CanSet() {
		return &PathError{Path: path, Message: "not a text field"}
	}
	target.SetString(value)
	return nil
}

// resolve walks the document by json field names and slice indices.
func resolve(root reflect.Value, path string) (reflect.Value, error) {
	segments, err := ParsePath(path)
	if err != nil {
		return reflect.Value{}, err
	}
	current := root
	for _, segment := range segments {
		next, err := step(current, segment)
		if err != nil {
			return reflect.Value{}, &PathError{Path: path, Segment: segment, Message: err.Error()}
		}
		current = next
	}
	return current, nil
}

func step(v reflect.Value, segment string) (reflect.Value, error) {
	switch v.Kind() {
	case reflect.Struct:
		field, ok := fieldByJSONName(v, segment)
		if !ok {
			return reflect.Value{}, fmt.Errorf("unknown field")
		}
		return field, nil
	case reflect.Slice:
		idx, err := strconv.Atoi(segment)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("expected list index")
		}
		if idx < 0 || idx >= v.Len() {
			return reflect.Value{}, fmt.Errorf("index %d out of range (len %d)", idx, v.Len())
		}
		return v.Index(idx), nil
	default:
		return reflect.Value{}, fmt.Errorf("cannot descend into %s", v.Kind())
	}
}

func fieldByJSONName(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if jsonName(field) == name {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func jsonName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return field.Name
	}
	return name
}
