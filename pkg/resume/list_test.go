package resume

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAppendItemSeedsPlaceholder(t *testing.T) {
	data := sampleData()

	id, err := AppendItem(&data, "achievements")
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if id == "" {
		t.Fatalf("expected fresh id")
	}
	last := data.Achievements[len(data.Achievements)-1]
	if last.ID != id || last.Title != "New Achievement" {
		t.Fatalf("unexpected new item: %#v", last)
	}
}

func TestAppendItemTextList(t *testing.T) {
	data := sampleData()

	id, err := AppendItem(&data, "experience.0.bulletPoints")
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if id != "" {
		t.Fatalf("text lists have no ids, got %q", id)
	}
	if got := data.Experience[0].BulletPoints; len(got) != 3 || got[2] != "New bullet point" {
		t.Fatalf("unexpected bullets: %#v", got)
	}
}

func TestRemoveItemByID(t *testing.T) {
	data := sampleData()

	if err := RemoveItem(&data, "achievements", "b"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	want := []Achievement{{ID: "a", Title: "First"}, {ID: "c", Title: "Third"}}
	if diff := cmp.Diff(want, data.Achievements); diff != "" {
		t.Fatalf("achievements mismatch (-want +got):\n%s", diff)
	}

	err := RemoveItem(&data, "achievements", "missing")
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestRemoveDoesNotAliasClone(t *testing.T) {
	data := sampleData()
	clone := data.Clone()

	if err := RemoveItem(&clone, "achievements", "a"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(data.Achievements) != 3 || data.Achievements[0].ID != "a" {
		t.Fatalf("original mutated: %#v", data.Achievements)
	}
}

func TestRemoveIndex(t *testing.T) {
	data := sampleData()
	if err := RemoveIndex(&data, "experience.0.bulletPoints", 0); err != nil {
		t.Fatalf("remove index: %v", err)
	}
	if diff := cmp.Diff([]string{"two"}, data.Experience[0].BulletPoints); diff != "" {
		t.Fatalf("bullets mismatch (-want +got):\n%s", diff)
	}
	if err := RemoveIndex(&data, "experience.0.bulletPoints", 5); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestIndexOf(t *testing.T) {
	data := sampleData()
	if got := IndexOf(data, "achievements", "c"); got != 2 {
		t.Fatalf("IndexOf = %d", got)
	}
	if got := IndexOf(data, "achievements", "zz"); got != -1 {
		t.Fatalf("IndexOf missing = %d", got)
	}
}
