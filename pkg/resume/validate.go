package resume

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single validation failure at a document path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every failure found in a document.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

var (
	validateOnce    sync.Once
	structValidator *validator.Validate
)

func documentValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			return jsonName(field)
		})
		structValidator = v
	})
	return structValidator
}

// Validate checks struct constraints and that ids are unique within every
// list. All problems are reported together.
func (r ResumeData) Validate() error {
	var problems []FieldError

	if err := documentValidator().Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("resume: validate: %w", err)
		}
		for _, fe := range verrs {
			problems = append(problems, FieldError{
				Field:   trimNamespace(fe.Namespace()),
				Message: validationMessage(fe),
			})
		}
	}

	problems = append(problems, duplicateIDs(r)...)
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Errors: problems}
}

// EnsureIDs assigns fresh ids to list items that have none. It returns the
// number of ids assigned.
func (r *ResumeData) EnsureIDs() int {
	assigned := 0
	fill := func(id *string) {
		if strings.TrimSpace(*id) == "" {
			*id = NewID()
			assigned++
		}
	}
	for i := range r.Experience {
		fill(&r.Experience[i].ID)
	}
	for i := range r.Education {
		fill(&r.Education[i].ID)
	}
	for i := range r.Skills {
		fill(&r.Skills[i].ID)
	}
	for i := range r.Achievements {
		fill(&r.Achievements[i].ID)
	}
	for i := range r.Sections {
		fill(&r.Sections[i].ID)
		for j := range r.Sections[i].Items {
			fill(&r.Sections[i].Items[j].ID)
		}
	}
	return assigned
}

func duplicateIDs(r ResumeData) []FieldError {
	var out []FieldError
	check := func(list string, ids []string) {
		seen := make(map[string]int, len(ids))
		for idx, id := range ids {
			if id == "" {
				out = append(out, FieldError{Field: JoinPath(list, idx, "id"), Message: "id is required"})
				continue
			}
			if first, ok := seen[id]; ok {
				out = append(out, FieldError{
					Field:   JoinPath(list, idx, "id"),
					Message: fmt.Sprintf("duplicate id %q (first used at %s)", id, JoinPath(list, first)),
				})
				continue
			}
			seen[id] = idx
		}
	}

	check("experience", collectIDs(r.Experience, func(e Experience) string { return e.ID }))
	check("education", collectIDs(r.Education, func(e Education) string { return e.ID }))
	check("skills", collectIDs(r.Skills, func(s Skill) string { return s.ID }))
	check("achievements", collectIDs(r.Achievements, func(a Achievement) string { return a.ID }))
	check("sections", collectIDs(r.Sections, func(s Section) string { return s.ID }))
	for i, section := range r.Sections {
		check(JoinPath("sections", i, "items"), collectIDs(section.Items, func(s SectionItem) string { return s.ID }))
	}
	return out
}

func collectIDs[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = id(item)
	}
	return out
}

// trimNamespace turns "ResumeData.experience[0].company" into
// "experience.0.company".
func trimNamespace(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		ns = rest
	}
	segments, err := ParsePath(ns)
	if err != nil {
		return ns
	}
	return strings.Join(segments, ".")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
