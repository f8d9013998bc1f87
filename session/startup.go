package session

import (
	"log"

	"scoreboard/board"
)

// Loader reads back what an earlier run persisted.
type Loader interface {
	LoadOrFresh() map[int]*int
}

type Store interface {
	Saver
	Loader
}

// Startup builds the session for a new launch. Whatever the file held is
// discarded: every seat starts unset and the cleared board is written back.
func Startup(st Store) *Session {
	prev := board.New()
	prev.Restore(st.LoadOrFresh())
	if n := prev.Filled(); n > 0 {
		log.Printf("discarding %d scores from the previous run", n)
	}

	s := New(board.New(), st)
	if err := s.Save(); err != nil {
		log.Printf("could not write cleared board: %v", err)
	}
	return s
}
