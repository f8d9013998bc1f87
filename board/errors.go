package board

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNothingToCopy is returned by Export when no seat has a score.
var ErrNothingToCopy = errors.New("no values to copy")

// FormatError means the input is not a 4-5 digit code.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid code %q: want %d-%d digits (2-digit seat, then score)", e.Input, MinCodeLen, MaxCodeLen)
}

// UnknownKeyError means the seat number is outside ValidKeys.
type UnknownKeyError struct {
	Key int
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("seat %02d is not on the board", e.Key)
}
