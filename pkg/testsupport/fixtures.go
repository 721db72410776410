package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resumegen/pkg/resume"
)

// LoadResume decodes a JSON or YAML fixture, picking the format from the
// extension.
func LoadResume(t *testing.T, path string) resume.ResumeData {
	t.Helper()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read resume fixture: %v", err)
	}
	data, err := resume.DecodeBytes(raw, resume.DetectFormat(path))
	if err != nil {
		t.Fatalf("decode resume fixture: %v", err)
	}
	return data
}

// SampleAchievements returns three achievements with ids a, b and c.
func SampleAchievements() []resume.Achievement {
	return []resume.Achievement{
		{ID: "a", Title: "40% increase in throughput", Description: "Rebuilt the ingest pipeline"},
		{ID: "b", Title: "Led a team"},
		{ID: "c", Title: "$50K in savings", Description: "Consolidated vendors & <contracts>"},
	}
}

// SampleResume returns a small but complete document for render tests.
func SampleResume() resume.ResumeData {
	return resume.ResumeData{
		PersonalInfo: resume.PersonalInfo{
			FullName: "Grace Hopper",
			Title:    "Rear Admiral",
			Email:    "grace@example.com",
			Location: "Arlington, VA",
		},
		Summary: "Pioneer of <em>machine-independent</em> languages.",
		Experience: []resume.Experience{
			{ID: "exp-1", Company: "US Navy", Position: "Director", StartDate: "1967", Current: true,
				BulletPoints: []string{"Standardised COBOL across the fleet", "Built validation suites"}},
			{ID: "exp-2", Company: "Remington Rand", Position: "Senior Mathematician", StartDate: "1949", EndDate: "1967"},
		},
		Education: []resume.Education{
			{ID: "edu-1", School: "Yale University", Degree: "PhD", Field: "Mathematics", EndDate: "1934"},
		},
		Skills: []resume.Skill{
			{ID: "sk-1", Name: "COBOL", Level: 5},
			{ID: "sk-2", Name: "Compilers", Level: 4},
		},
		Achievements: SampleAchievements(),
		Sections: []resume.Section{
			{ID: "sec-1", Title: "Awards", Items: []resume.SectionItem{
				{ID: "item-1", Title: "Computer Sciences Man of the Year", Date: "1969"},
			}},
		},
	}
}

// MustDocument parses rendered HTML for selector based assertions.
func MustDocument(t *testing.T, html string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// Texts returns the trimmed text of every node in sel.
func Texts(sel *goquery.Selection) []string {
	out := make([]string, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.TrimSpace(s.Text()))
	})
	return out
}

// Attrs returns the attributes of the first node in sel.
func Attrs(sel *goquery.Selection) map[string]string {
	out := map[string]string{}
	if sel.Length() == 0 {
		return out
	}
	for _, attr := range sel.Get(0).Attr {
		out[attr.Key] = attr.Val
	}
	return out
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return string(data)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
