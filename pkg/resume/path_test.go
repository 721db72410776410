package resume

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePath(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"achievements.2.title", []string{"achievements", "2", "title"}},
		{"experience[2].bulletPoints[0]", []string{"experience", "2", "bulletPoints", "0"}},
		{"$.personalInfo.fullName", []string{"personalInfo", "fullName"}},
		{" sections[0].items[1].title ", []string{"sections", "0", "items", "1", "title"}},
	}
	for _, tc := range cases {
		got, err := ParsePath(tc.in)
		if err != nil {
			t.Fatalf("ParsePath(%q): %v", tc.in, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("ParsePath(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestParsePathRejectsEmpty(t *testing.T) {
	for _, in := range []string{"", "  ", "a..b"} {
		if _, err := ParsePath(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestJoinPath(t *testing.T) {
	if got := JoinPath("achievements", 2, "title"); got != "achievements.2.title" {
		t.Fatalf("unexpected path %q", got)
	}
	if got := JoinPath("experience", 0, "bulletPoints", 3); got != "experience.0.bulletPoints.3" {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestGetAndSet(t *testing.T) {
	data := sampleData()

	if err := Set(&data, "achievements.1.title", "Shipped v2"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := Set(&data, "experience[0].bulletPoints[1]", "Mentored 4 engineers"); err != nil {
		t.Fatalf("set bracket path: %v", err)
	}
	if err := Set(&data, "achievements.0.description", "now described"); err != nil {
		t.Fatalf("set empty optional field: %v", err)
	}

	got, err := Get(data, "achievements.1.title")
	if err != nil || got != "Shipped v2" {
		t.Fatalf("get title = %q, %v", got, err)
	}
	if data.Experience[0].BulletPoints[1] != "Mentored 4 engineers" {
		t.Fatalf("bullet not updated: %#v", data.Experience[0].BulletPoints)
	}
	if data.Achievements[0].Description != "now described" {
		t.Fatalf("description not updated")
	}
}

func TestSetErrors(t *testing.T) {
	data := sampleData()
	cases := []string{
		"achievements.9.title",
		"achievements.x.title",
		"achievements.0.unknown",
		"achievements",
		"experience.0.current",
		"achievements.1.id",
		"experience[0].id",
	}
	for _, path := range cases {
		err := Set(&data, path, "v")
		var perr *PathError
		if !errors.As(err, &perr) {
			t.Fatalf("Set(%q): expected *PathError, got %v", path, err)
		}
	}
}

func TestSetKeepsIDs(t *testing.T) {
	data := sampleData()
	err := Set(&data, "achievements.1.id", "a")
	var perr *PathError
	if !errors.As(err, &perr) || perr.Segment != "id" {
		t.Fatalf("expected id PathError, got %v", err)
	}
	if data.Achievements[1].ID != "b" {
		t.Fatalf("id rewritten to %q", data.Achievements[1].ID)
	}
}

func sampleData() ResumeData {
	return ResumeData{
		PersonalInfo: PersonalInfo{FullName: "Ada"},
		Experience: []Experience{{
			ID:           "e1",
			Company:      "Engines",
			Position:     "Engineer",
			BulletPoints: []string{"one", "two"},
		}},
		Achievements: []Achievement{
			{ID: "a", Title: "First"},
			{ID: "b", Title: "Second"},
			{ID: "c", Title: "Third"},
		},
	}
}
