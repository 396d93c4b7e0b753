package internal

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"secassist/testutil"
)

func TestRegistry_List(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	h := NewHistory(dir)
	r := NewRegistry(h)

	want := testutil.CreateHistoryFixture(t, dir)

	got := r.List()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestRegistry_ListIgnoresOtherFiles(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	h := NewHistory(dir)
	r := NewRegistry(h)

	testutil.WriteThreadFile(t, dir, "real-thread", []map[string]interface{}{})
	for name, content := range map[string]string{
		"archive.db": "not a transcript",
		"notes.txt":  "scratch",
		"README":     "docs",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "subdir.json"), 0755); err != nil {
		t.Fatalf("Failed to create subdir: %v", err)
	}

	got := r.List()
	want := []string{"real-thread"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestRegistry_ListMissingDir(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	// point the store at a directory that does not exist, without creating it
	h := &History{root: dir + "/does-not-exist"}
	r := NewRegistry(h)

	got := r.List()
	if len(got) != 0 {
		t.Errorf("List() on missing dir = %v, want empty", got)
	}
}

func TestRegistry_ListPrimary(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	h := NewHistory(dir)
	r := NewRegistry(h)

	testutil.WriteThreadFile(t, dir, "chat_a", []map[string]interface{}{
		testutil.UserMessage("hi"),
	})
	testutil.WriteThreadFile(t, dir, "chat_a"+DefaultVulnThreadTag, []map[string]interface{}{
		testutil.UserMessage("patch this"),
	})
	testutil.WriteThreadFile(t, dir, "chat_b", []map[string]interface{}{})

	got := r.ListPrimary()
	want := []string{"chat_a", "chat_b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListPrimary() = %v, want %v", got, want)
	}

	// the full listing still includes the derived transcript
	if all := r.List(); len(all) != 3 {
		t.Errorf("List() = %v, want all 3 transcripts", all)
	}
}

func TestRegistry_ListStable(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	h := NewHistory(dir)
	r := NewRegistry(h)
	testutil.CreateHistoryFixture(t, dir)

	first := r.List()
	second := r.List()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("List() not stable: %v vs %v", first, second)
	}
}

func TestNewThreadID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewThreadID()
		if !strings.HasPrefix(id, "chat_") {
			t.Fatalf("NewThreadID() = %q, want chat_ prefix", id)
		}
		if seen[id] {
			t.Fatalf("NewThreadID() returned duplicate id %q", id)
		}
		seen[id] = true

		// ids must already be safe file names
		if SanitizeThreadID(id) != id {
			t.Fatalf("NewThreadID() = %q is not a safe file name", id)
		}
	}
}
