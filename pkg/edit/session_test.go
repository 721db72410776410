package edit

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resumegen/pkg/resume"
)

func newSession() *MemorySession {
	return NewMemorySession(resume.ResumeData{
		Achievements: []resume.Achievement{
			{ID: "a", Title: "First"},
			{ID: "b", Title: "Second"},
		},
	})
}

func TestSessionSetValue(t *testing.T) {
	s := newSession()
	if err := s.SetValue("achievements.1.title", "Updated"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := s.Data().Achievements[1].Title; got != "Updated" {
		t.Fatalf("title = %q", got)
	}
	if s.Version() != 1 {
		t.Fatalf("version = %d", s.Version())
	}
}

func TestSessionSetValueInvalidPath(t *testing.T) {
	s := newSession()
	err := s.SetValue("achievements.7.title", "x")
	var perr *resume.PathError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *resume.PathError, got %v", err)
	}
	if s.Version() != 0 {
		t.Fatalf("failed mutation bumped version")
	}
}

func TestSessionSetValueRejectsIDs(t *testing.T) {
	s := newSession()
	err := s.SetValue("achievements.1.id", "a")
	var perr *resume.PathError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *resume.PathError, got %v", err)
	}
	if s.Version() != 0 {
		t.Fatalf("rejected id write bumped version")
	}

	if err := s.RemoveItem("achievements", "a"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	want := []resume.Achievement{{ID: "b", Title: "Second"}}
	if diff := cmp.Diff(want, s.Data().Achievements); diff != "" {
		t.Fatalf("achievements mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionDataIsSnapshot(t *testing.T) {
	s := newSession()
	snapshot := s.Data()
	snapshot.Achievements[0].Title = "mutated"
	if s.Data().Achievements[0].Title != "First" {
		t.Fatalf("snapshot aliases session state")
	}
}

func TestSessionAddRemoveNotifies(t *testing.T) {
	s := newSession()
	var changes []Change
	s.Subscribe(func(c Change) { changes = append(changes, c) })

	id, err := s.AddItem("achievements")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.RemoveItem("achievements", "a"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	want := []Change{
		{Kind: ChangeAdd, Path: "achievements", ItemID: id, Version: 1},
		{Kind: ChangeRemove, Path: "achievements", ItemID: "a", Version: 2},
	}
	if diff := cmp.Diff(want, changes); diff != "" {
		t.Fatalf("changes mismatch (-want +got):\n%s", diff)
	}
	ids := []string{}
	for _, item := range s.Data().Achievements {
		ids = append(ids, item.ID)
	}
	if diff := cmp.Diff([]string{"b", id}, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestBindReportsErrors(t *testing.T) {
	s := newSession()
	var reported []error
	callbacks := Bind(s, "achievements", func(err error) { reported = append(reported, err) })

	callbacks.OnRemove("missing")
	callbacks.OnAdd()

	if len(reported) != 1 || !errors.Is(reported[0], resume.ErrItemNotFound) {
		t.Fatalf("unexpected reported errors: %v", reported)
	}
	if len(s.Data().Achievements) != 3 {
		t.Fatalf("add callback did not append")
	}
}

func TestBindNilSession(t *testing.T) {
	callbacks := Bind(nil, "achievements", nil)
	if callbacks.OnAdd != nil || callbacks.OnRemove != nil {
		t.Fatalf("expected nil callbacks for nil session")
	}
}

func TestBindTypedNilSession(t *testing.T) {
	var session *MemorySession
	callbacks := Bind(session, "achievements", nil)
	if callbacks.OnAdd != nil || callbacks.OnRemove != nil {
		t.Fatalf("expected nil callbacks for nil *MemorySession")
	}
}

func TestSessionConcurrentEdits(t *testing.T) {
	s := newSession()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.SetValue("achievements.0.title", "x")
			_ = s.Data()
		}()
	}
	wg.Wait()
	if s.Version() != 20 {
		t.Fatalf("version = %d", s.Version())
	}
}

func TestSessionRemoveIndex(t *testing.T) {
	s := NewMemorySession(resume.ResumeData{
		Experience: []resume.Experience{{ID: "e", BulletPoints: []string{"one", "two", "three"}}},
	})
	var got []Change
	s.Subscribe(func(c Change) { got = append(got, c) })

	if err := s.RemoveIndex("experience.0.bulletPoints", 1); err != nil {
		t.Fatalf("RemoveIndex() error = %v", err)
	}
	if diff := cmp.Diff([]string{"one", "three"}, s.Data().Experience[0].BulletPoints); diff != "" {
		t.Fatalf("bullets mismatch (-want +got):\n%s", diff)
	}
	if len(got) != 1 || got[0].Path != "experience.0.bulletPoints.1" || got[0].Kind != ChangeRemove {
		t.Fatalf("unexpected changes %+v", got)
	}

	err := s.RemoveIndex("experience.0.bulletPoints", 5)
	if !errors.Is(err, resume.ErrItemNotFound) {
		t.Fatalf("err = %v, want ErrItemNotFound", err)
	}
}
