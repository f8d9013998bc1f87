package board

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseValidCodes(t *testing.T) {
	cases := []struct {
		in         string
		key, value int
	}{
		{"1025", 10, 25},
		{"45123", 45, 123},
		{"0102", 1, 2},
		{"  6400 ", 64, 0},
		{"99001", 99, 1},
	}
	for _, c := range cases {
		key, value, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", c.in, err)
		}
		if key != c.key || value != c.value {
			t.Fatalf("Parse(%q) = (%d, %d), want (%d, %d)", c.in, key, value, c.key, c.value)
		}
	}
}

func TestParseRejectsBadFormat(t *testing.T) {
	for _, in := range []string{"", "1", "102", "102345", "12a3", "-102", "10 25", "１０２５", "1.25"} {
		_, _, err := Parse(in)
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("Parse(%q) err = %v, want *FormatError", in, err)
		}
	}
}
