package session

import (
	"log"

	"github.com/pkg/errors"

	"scoreboard/board"
	"scoreboard/protocol"
)

// Saver persists the full board after every change.
type Saver interface {
	Save(entries []board.Entry) error
}

// SaveError reports that a change was applied in memory but could not be
// written to disk.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string {
	return "scores kept in memory but not saved: " + e.Err.Error()
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// ErrStopped is returned by Hub helpers once the hub has shut down.
var ErrStopped = errors.New("hub stopped")

// IsSaveError reports whether err (or anything it wraps) is a *SaveError.
func IsSaveError(err error) bool {
	var se *SaveError
	return errors.As(err, &se)
}

// Session ties a board to its persistence. Not safe for concurrent use; the
// web front end goes through a Hub.
type Session struct {
	board *board.Board
	saver Saver
}

func New(b *board.Board, saver Saver) *Session {
	if b == nil {
		b = board.New()
	}
	return &Session{board: b, saver: saver}
}

// Submit applies one typed code. Parse and seat errors leave the board as it
// was. A *SaveError means the entry was stored but the file is stale.
func (s *Session) Submit(input string) (board.Entry, error) {
	e, err := s.board.Apply(input)
	if err != nil {
		return board.Entry{}, err
	}
	return e, s.persist()
}

// Clear unsets every seat and persists the empty board.
func (s *Session) Clear() error {
	s.board.Clear()
	return s.persist()
}

// Save writes the current board without changing it.
func (s *Session) Save() error {
	return s.persist()
}

func (s *Session) Entries() []board.Entry {
	return s.board.Entries()
}

func (s *Session) State() protocol.State {
	return protocol.NewState(s.board.Entries())
}

func (s *Session) Export() (string, error) {
	return s.board.Export()
}

func (s *Session) persist() error {
	if s.saver == nil {
		return nil
	}
	if err := s.saver.Save(s.board.Entries()); err != nil {
		log.Printf("save failed: %v", err)
		return &SaveError{Err: errors.WithStack(err)}
	}
	return nil
}
