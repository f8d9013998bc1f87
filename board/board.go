package board

import (
	"strconv"
	"strings"
)

// Entry is one seat and its score. Set is false while the seat has no score.
type Entry struct {
	Key   int
	Value int
	Set   bool
}

// Board maps every seat in ValidKeys to an optional score.
// It is not safe for concurrent use; callers serialise access.
type Board struct {
	scores map[int]int
}

func New() *Board {
	return &Board{scores: make(map[int]int, len(ValidKeys))}
}

// Set stores value for key, replacing any earlier score.
func (b *Board) Set(key, value int) error {
	if !IsValidKey(key) {
		return &UnknownKeyError{Key: key}
	}
	b.scores[key] = value
	return nil
}

// Apply parses input and stores the result. The board is untouched on error.
func (b *Board) Apply(input string) (Entry, error) {
	key, value, err := Parse(input)
	if err != nil {
		return Entry{}, err
	}
	if err := b.Set(key, value); err != nil {
		return Entry{}, err
	}
	return Entry{Key: key, Value: value, Set: true}, nil
}

func (b *Board) Get(key int) (int, bool) {
	v, ok := b.scores[key]
	return v, ok
}

// Entries returns every seat in ascending key order.
func (b *Board) Entries() []Entry {
	out := make([]Entry, 0, len(ValidKeys))
	for _, k := range ValidKeys {
		v, ok := b.scores[k]
		out = append(out, Entry{Key: k, Value: v, Set: ok})
	}
	return out
}

func (b *Board) Clear() {
	clear(b.scores)
}

// Restore replaces the board contents with m. Keys outside ValidKeys are
// dropped and seats missing from m end up unset.
func (b *Board) Restore(m map[int]*int) {
	clear(b.scores)
	for k, v := range m {
		if v == nil || !IsValidKey(k) {
			continue
		}
		b.scores[k] = *v
	}
}

func (b *Board) Total() int { return len(ValidKeys) }

func (b *Board) Filled() int { return len(b.scores) }

// Values lists one string per seat in key order, "" for unset seats.
func (b *Board) Values() []string {
	out := make([]string, 0, len(ValidKeys))
	for _, e := range b.Entries() {
		if !e.Set {
			out = append(out, "")
			continue
		}
		out = append(out, strconv.Itoa(e.Value))
	}
	return out
}

// Export joins Values with newlines for pasting into a spreadsheet column.
func (b *Board) Export() (string, error) {
	if b.Filled() == 0 {
		return "", ErrNothingToCopy
	}
	return strings.Join(b.Values(), "\n"), nil
}
