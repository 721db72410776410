package resume

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

// ErrItemNotFound is returned when an id or index does not address an item.
var ErrItemNotFound = errors.New("resume: item not found")

// Placeholder describes the field seeded when a new item is appended to a
// list.
type Placeholder struct {
	Field string
	Text  string
}

// Placeholders maps list names (the last path segment) to the text a fresh
// item starts with.
var Placeholders = map[string]Placeholder{
	"achievements": {Field: "title", Text: "New Achievement"},
	"experience":   {Field: "position", Text: "New Position"},
	"education":    {Field: "school", Text: "New School"},
	"skills":       {Field: "name", Text: "New Skill"},
	"sections":     {Field: "title", Text: "New Section"},
	"items":        {Field: "title", Text: "New Item"},
	"bulletPoints": {Text: "New bullet point"},
}

// NewID returns a fresh stable item id.
func NewID() string {
	return uuid.NewString()
}

// AppendItem adds an item to the list at listPath and returns its id. Lists of
// plain text (bullet points) return an empty id.
func AppendItem(data *ResumeData, listPath string) (string, error) {
	list, err := listAt(data, listPath)
	if err != nil {
		return "", err
	}
	segments, _ := ParsePath(listPath)
	placeholder := Placeholders[segments[len(segments)-1]]

	elem := reflect.New(list.Type().Elem()).Elem()
	id := ""
	switch elem.Kind() {
	case reflect.String:
		elem.SetString(placeholder.Text)
	case reflect.Struct:
		id = NewID()
		if field, ok := fieldByJSONName(elem, "id"); ok {
			field.SetString(id)
		}
		if placeholder.Field != "" {
			if field, ok := fieldByJSONName(elem, placeholder.Field); ok && field.Kind() == reflect.String {
				field.SetString(placeholder.Text)
			}
		}
	}
	list.Set(reflect.Append(list, elem))
	return id, nil
}

// RemoveItem deletes the item whose id matches from the list at listPath.
func RemoveItem(data *ResumeData, listPath, id string) error {
	list, err := listAt(data, listPath)
	if err != nil {
		return err
	}
	for i := 0; i < list.Len(); i++ {
		item := list.Index(i)
		if item.Kind() != reflect.Struct {
			break
		}
		field, ok := fieldByJSONName(item, "id")
		if ok && field.String() == id {
			return removeAt(list, i)
		}
	}
	return fmt.Errorf("%w: %s[id=%s]", ErrItemNotFound, listPath, id)
}

// RemoveIndex deletes the item at index from the list at listPath. It is the
// only way to remove entries from id-less text lists.
func RemoveIndex(data *ResumeData, listPath string, index int) error {
	list, err := listAt(data, listPath)
	if err != nil {
		return err
	}
	if index < 0 || index >= list.Len() {
		return fmt.Errorf("%w: %s[%d]", ErrItemNotFound, listPath, index)
	}
	return removeAt(list, index)
}

// IndexOf returns the position of the item with id in the list at listPath,
// or -1.
func IndexOf(data ResumeData, listPath, id string) int {
	list, err := listAt(&data, listPath)
	if err != nil {
		return -1
	}
	for i := 0; i < list.Len(); i++ {
		item := list.Index(i)
		if item.Kind() != reflect.Struct {
			return -1
		}
		if field, ok := fieldByJSONName(item, "id"); ok && field.String() == id {
			return i
		}
	}
	return -1
}

func listAt(data *ResumeData, listPath string) (reflect.Value, error) {
	if data == nil {
		return reflect.Value{}, &PathError{Path: listPath, Message: "document is nil"}
	}
	list, err := resolve(reflect.ValueOf(data).Elem(), listPath)
	if err != nil {
		return reflect.Value{}, err
	}
	if list.Kind() != reflect.Slice {
		return reflect.Value{}, &PathError{Path: listPath, Message: "not a list"}
	}
	return list, nil
}

func removeAt(list reflect.Value, index int) error {
	n := list.Len()
	out := reflect.MakeSlice(list.Type(), 0, n-1)
	out = reflect.AppendSlice(out, list.Slice(0, index))
	out = reflect.AppendSlice(out, list.Slice(index+1, n))
	list.Set(out)
	return nil
}
