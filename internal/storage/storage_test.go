package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/taliafield/simple-volunteer-log/internal/storage"
)

func newStore(t *testing.T) *storage.Store {
	t.Helper()
	st, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return st
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	if _, err := storage.New(dir); err != nil {
		t.Fatalf("New: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat after New: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", dir)
	}
}

func TestListEmptyWhenNoFile(t *testing.T) {
	st := newStore(t)
	entries := st.List()
	if len(entries) != 0 {
		t.Errorf("List on fresh store = %d entries, want 0", len(entries))
	}
}

func TestListEmptyOnCorruptFile(t *testing.T) {
	dir := t.TempDir()
	st, err := storage.New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	path := filepath.Join(dir, "volunteer_log.json")
	if err := os.WriteFile(path, []byte("{bad json"), 0o600); err != nil {
		t.Fatal(err)
	}

	entries := st.List()
	if len(entries) != 0 {
		t.Errorf("List on corrupt file = %d entries, want 0", len(entries))
	}

	// The corrupt file is backed up rather than left to be overwritten.
	if _, err := os.Stat(path + ".corrupt"); os.IsNotExist(err) {
		t.Error("expected backup file to exist after corrupt JSON")
	}
}

func TestAddAppendsAndPersists(t *testing.T) {
	st := newStore(t)

	entries, err := st.Add("Community Food Bank", "2024-03-15", 3.5, "Sorted donations")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Add returned %d entries, want 1", len(entries))
	}

	e := entries[0]
	if e.ID == "" {
		t.Error("Add assigned empty ID")
	}
	if e.Place != "Community Food Bank" || e.Date != "2024-03-15" || e.Hours != 3.5 || e.Notes != "Sorted donations" {
		t.Errorf("Add stored %+v, want input fields verbatim", e)
	}

	// Round-trip through the file.
	loaded := st.List()
	if len(loaded) != 1 {
		t.Fatalf("List after Add = %d entries, want 1", len(loaded))
	}
	if loaded[0] != e {
		t.Errorf("List after Add = %+v, want %+v", loaded[0], e)
	}
}

func TestAddPreservesOrderAndUniqueIDs(t *testing.T) {
	st := newStore(t)

	places := []string{"Library", "Shelter", "Food Bank", "Library"}
	for i, p := range places {
		if _, err := st.Add(p, "2024-01-10", float64(i), ""); err != nil {
			t.Fatalf("Add %d: %v", i, err)
		}
	}

	entries := st.List()
	if len(entries) != len(places) {
		t.Fatalf("List = %d entries, want %d", len(entries), len(places))
	}

	seen := map[string]bool{}
	for i, e := range entries {
		if e.Place != places[i] {
			t.Errorf("entry %d place = %q, want %q (insertion order)", i, e.Place, places[i])
		}
		if seen[e.ID] {
			t.Errorf("duplicate ID %q", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestDeleteRemovesMatch(t *testing.T) {
	st := newStore(t)

	first, err := st.Add("Library", "2024-01-10", 2, "")
	if err != nil {
		t.Fatal(err)
	}
	target := first[0].ID
	if _, err := st.Add("Shelter", "2024-01-11", 1, ""); err != nil {
		t.Fatal(err)
	}

	entries, err := st.Delete(target)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Delete left %d entries, want 1", len(entries))
	}
	if entries[0].Place != "Shelter" {
		t.Errorf("remaining entry place = %q, want %q", entries[0].Place, "Shelter")
	}
}

func TestDeleteIdempotent(t *testing.T) {
	st := newStore(t)
	if _, err := st.Add("Library", "2024-01-10", 2, ""); err != nil {
		t.Fatal(err)
	}

	entries, err := st.Delete("no-such-id")
	if err != nil {
		t.Fatalf("Delete unknown ID: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Delete unknown ID left %d entries, want 1", len(entries))
	}

	again, err := st.Delete("no-such-id")
	if err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if len(again) != 1 {
		t.Errorf("second Delete left %d entries, want 1", len(again))
	}
}

func TestUpdateMutatesExactlyOne(t *testing.T) {
	st := newStore(t)

	first, err := st.Add("Library", "2024-01-10", 2, "shelving")
	if err != nil {
		t.Fatal(err)
	}
	target := first[0].ID
	if _, err := st.Add("Shelter", "2024-01-11", 1, "meals"); err != nil {
		t.Fatal(err)
	}

	entries, err := st.Update(target, "Main Library", "2024-01-12", 2.5, "shelving, sorting")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Update returned %d entries, want 2", len(entries))
	}

	got := entries[0]
	if got.ID != target {
		t.Errorf("updated entry ID = %q, want %q (immutable)", got.ID, target)
	}
	if got.Place != "Main Library" || got.Date != "2024-01-12" || got.Hours != 2.5 || got.Notes != "shelving, sorting" {
		t.Errorf("updated entry = %+v, want replacement values", got)
	}
	if entries[1].Place != "Shelter" || entries[1].Notes != "meals" {
		t.Errorf("untouched entry changed: %+v", entries[1])
	}
}

func TestUpdateNoOpOnMiss(t *testing.T) {
	st := newStore(t)
	before, err := st.Add("Library", "2024-01-10", 2, "")
	if err != nil {
		t.Fatal(err)
	}

	entries, err := st.Update("no-such-id", "X", "X", 99, "X")
	if err != nil {
		t.Fatalf("Update unknown ID: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Update unknown ID returned %d entries, want 1", len(entries))
	}
	if entries[0] != before[0] {
		t.Errorf("Update unknown ID changed entry: got %+v, want %+v", entries[0], before[0])
	}
}

func TestAddUpdateDeleteScenario(t *testing.T) {
	st := newStore(t)

	entries, err := st.Add("Library", "2024-01-10", 2.0, "Shelved books")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("after add: %d entries, want 1", len(entries))
	}
	id := entries[0].ID

	entries, err = st.Update(id, "Library", "2024-01-11", 2.5, "Shelved books, sorted")
	if err != nil {
		t.Fatal(err)
	}
	e := entries[0]
	if e.ID != id || e.Date != "2024-01-11" || e.Hours != 2.5 || e.Notes != "Shelved books, sorted" {
		t.Errorf("after update: %+v", e)
	}

	entries, err = st.Delete(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("after delete: %d entries, want 0", len(entries))
	}
	if got := st.List(); len(got) != 0 {
		t.Errorf("List after delete: %d entries, want 0", len(got))
	}
}
