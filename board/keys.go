package board

// ValidKeys is the closed set of seat numbers, in ascending order.
var ValidKeys = []int{
	1, 2, 5, 8, 10, 11, 12, 13, 14, 15, 17, 18, 19, 20,
	23, 24, 25, 26, 27, 28, 30, 31, 32, 33, 34, 35, 36, 37, 38,
	40, 41, 42, 43, 44, 45, 46, 47, 49, 50, 51, 52, 53,
	55, 56, 57, 58, 59, 60, 61, 62, 63, 64,
}

var validKeySet = func() map[int]struct{} {
	m := make(map[int]struct{}, len(ValidKeys))
	for _, k := range ValidKeys {
		m[k] = struct{}{}
	}
	return m
}()

const (
	KeyDigits  = 2
	MinCodeLen = 4
	MaxCodeLen = 5
)

// IsValidKey reports whether key belongs to the seat set.
func IsValidKey(key int) bool {
	_, ok := validKeySet[key]
	return ok
}
