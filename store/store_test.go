package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scoreboard/board"
)

func newStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "numbers_dict.json"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newStore(t)
	b := board.New()
	for _, in := range []string{"1025", "45123", "0100"} {
		if _, err := b.Apply(in); err != nil {
			t.Fatalf("Apply(%q): %v", in, err)
		}
	}
	if err := s.Save(b.Entries()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	m, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m) != len(board.ValidKeys) {
		t.Fatalf("loaded %d keys, want %d", len(m), len(board.ValidKeys))
	}
	restored := board.New()
	restored.Restore(m)
	want, got := b.Entries(), restored.Entries()
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSaveFormat(t *testing.T) {
	s := newStore(t)
	b := board.New()
	_, _ = b.Apply("0250")
	if err := s.Save(b.Entries()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	text := string(data)
	if !strings.HasPrefix(text, "{\n  \"1\": null,\n  \"2\": 50,\n") {
		t.Fatalf("unexpected file head:\n%s", text[:40])
	}
	if !strings.HasSuffix(text, "  \"64\": null\n}\n") {
		t.Fatalf("unexpected file tail:\n%s", text[len(text)-30:])
	}
	var raw map[string]*int
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("file is not valid JSON: %v", err)
	}
}

func TestLoadOrFreshOnFailure(t *testing.T) {
	s := newStore(t)
	if m := s.LoadOrFresh(); len(m) != 0 {
		t.Fatalf("missing file: got %d keys, want 0", len(m))
	}

	for _, bad := range []string{"not json", `{"x": 1}`, `{"1": "ten"}`, `[1,2]`} {
		if err := os.WriteFile(s.Path(), []byte(bad), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := s.Load(); err == nil {
			t.Fatalf("Load(%q) succeeded, want error", bad)
		}
		if m := s.LoadOrFresh(); len(m) != 0 {
			t.Fatalf("LoadOrFresh(%q) = %v, want empty", bad, m)
		}
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	s := newStore(t)
	for i := 0; i < 3; i++ {
		if err := s.Save(board.New().Entries()); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("dir has %d entries, want 1", len(entries))
	}
}

func TestSaveIntoMissingDirFails(t *testing.T) {
	s, _ := NewFileStore(filepath.Join(t.TempDir(), "missing", "numbers_dict.json"))
	if err := s.Save(board.New().Entries()); err == nil {
		t.Fatalf("Save into missing dir succeeded, want error")
	}
}

func TestNewFileStoreRequiresPath(t *testing.T) {
	if _, err := NewFileStore(""); err == nil {
		t.Fatalf("NewFileStore(\"\") succeeded, want error")
	}
}
