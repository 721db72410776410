package resume

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateDuplicateIDs(t *testing.T) {
	data := sampleData()
	data.Achievements = append(data.Achievements, Achievement{ID: "a", Title: "Dup"})

	err := data.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Errors) != 1 || verr.Errors[0].Field != "achievements.3.id" {
		t.Fatalf("unexpected errors: %#v", verr.Errors)
	}
}

func TestValidateStructTags(t *testing.T) {
	data := sampleData()
	data.PersonalInfo.Email = "not-an-email"
	data.Skills = []Skill{{ID: "s", Name: "Go", Level: 9}}

	err := data.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	fields := make(map[string]string)
	for _, fe := range verr.Errors {
		fields[fe.Field] = fe.Message
	}
	if fields["personalInfo.email"] == "" {
		t.Fatalf("missing email error: %#v", verr.Errors)
	}
	if fields["skills.0.level"] == "" {
		t.Fatalf("missing level error: %#v", verr.Errors)
	}
	if !strings.Contains(err.Error(), "validation failed") {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestEnsureIDs(t *testing.T) {
	data := ResumeData{
		Achievements: []Achievement{{Title: "no id"}, {ID: "kept", Title: "id"}},
		Sections:     []Section{{Title: "P", Items: []SectionItem{{Title: "x"}}}},
	}
	if n := data.EnsureIDs(); n != 3 {
		t.Fatalf("assigned %d ids", n)
	}
	if data.Achievements[1].ID != "kept" {
		t.Fatalf("existing id replaced")
	}
	if err := data.Validate(); err != nil {
		t.Fatalf("validate after EnsureIDs: %v", err)
	}
}
