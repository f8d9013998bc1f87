package protocol

import "scoreboard/board"

type State struct {
	Entries []EntrySnapshot `json:"entries"`
	Total   int             `json:"total"`
	Filled  int             `json:"filled"`
}

type EntrySnapshot struct {
	Key   int  `json:"key"`
	Value *int `json:"value"` // null when unset
}

type Result struct {
	OK      bool   `json:"ok"`
	Warning bool   `json:"warning,omitempty"` // applied but not saved
	Message string `json:"message"`
	Key     int    `json:"key,omitempty"`
	Value   *int   `json:"value,omitempty"`
}

// Unfilled is the number of seats still waiting for a score.
func (s State) Unfilled() int {
	return s.Total - s.Filled
}

func NewState(entries []board.Entry) State {
	st := State{
		Entries: make([]EntrySnapshot, 0, len(entries)),
		Total:   len(entries),
	}
	for _, e := range entries {
		snap := EntrySnapshot{Key: e.Key}
		if e.Set {
			v := e.Value
			snap.Value = &v
			st.Filled++
		}
		st.Entries = append(st.Entries, snap)
	}
	return st
}
