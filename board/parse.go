package board

import (
	"strconv"
	"strings"
)

// Parse decodes a code like "1025" into seat 10 and score 25.
func Parse(s string) (key, value int, err error) {
	s = strings.TrimSpace(s)
	if len(s) < MinCodeLen || len(s) > MaxCodeLen || !allDigits(s) {
		return 0, 0, &FormatError{Input: s}
	}
	// all digits and at most 5 of them, so Atoi cannot fail
	key, _ = strconv.Atoi(s[:KeyDigits])
	value, _ = strconv.Atoi(s[KeyDigits:])
	return key, value, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
