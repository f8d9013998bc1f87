package session

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"scoreboard/board"
	"scoreboard/store"
)

type memSaver struct {
	saves int
	last  []board.Entry
	err   error
}

func (m *memSaver) Save(entries []board.Entry) error {
	m.saves++
	if m.err != nil {
		return m.err
	}
	m.last = append([]board.Entry(nil), entries...)
	return nil
}

func TestSubmitPersistsWholeBoard(t *testing.T) {
	saver := &memSaver{}
	s := New(nil, saver)

	e, err := s.Submit("1025")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if e.Key != 10 || e.Value != 25 || !e.Set {
		t.Fatalf("entry = %+v, want seat 10 = 25", e)
	}
	if saver.saves != 1 {
		t.Fatalf("saves = %d, want 1", saver.saves)
	}
	if len(saver.last) != len(board.ValidKeys) {
		t.Fatalf("saved %d entries, want full board of %d", len(saver.last), len(board.ValidKeys))
	}
}

func TestSubmitRejectedDoesNotSave(t *testing.T) {
	saver := &memSaver{}
	s := New(nil, saver)
	for _, in := range []string{"99001", "12a3", "123"} {
		if _, err := s.Submit(in); err == nil {
			t.Fatalf("Submit(%q) succeeded, want error", in)
		}
	}
	if saver.saves != 0 {
		t.Fatalf("saves = %d after rejected input, want 0", saver.saves)
	}
	if s.State().Filled != 0 {
		t.Fatalf("board changed after rejected input")
	}
}

func TestSaveFailureKeepsMutation(t *testing.T) {
	saver := &memSaver{err: errors.New("disk full")}
	s := New(nil, saver)

	_, err := s.Submit("4512")
	if !IsSaveError(err) {
		t.Fatalf("Submit err = %v, want SaveError", err)
	}
	if s.State().Filled != 1 {
		t.Fatalf("Filled = %d, want 1 even though save failed", s.State().Filled)
	}
	if !IsSaveError(s.Clear()) {
		t.Fatalf("Clear did not report the save failure")
	}
}

func TestClearPersists(t *testing.T) {
	saver := &memSaver{}
	s := New(nil, saver)
	_, _ = s.Submit("1025")
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	for _, e := range saver.last {
		if e.Set {
			t.Fatalf("seat %d still set in saved board", e.Key)
		}
	}
	if _, err := s.Export(); !errors.Is(err, board.ErrNothingToCopy) {
		t.Fatalf("Export after clear err = %v, want ErrNothingToCopy", err)
	}
}

func TestStartupClearsPreviousRun(t *testing.T) {
	fs, err := store.NewFileStore(filepath.Join(t.TempDir(), "numbers_dict.json"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	first := Startup(fs)
	if _, err := first.Submit("1025"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	m, err := fs.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if v := m[10]; v == nil || *v != 25 {
		t.Fatalf("file seat 10 = %v, want 25", v)
	}

	second := Startup(fs)
	if second.State().Filled != 0 {
		t.Fatalf("new launch kept %d scores, want 0", second.State().Filled)
	}
	m, err = fs.Load()
	if err != nil {
		t.Fatalf("Load after restart: %v", err)
	}
	if m[10] != nil {
		t.Fatalf("file still holds seat 10 = %d after restart", *m[10])
	}
}
