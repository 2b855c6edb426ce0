package util

import (
	"strconv"
)

// MustParseUint converts a string to an unsigned integer, returning 0 on failure.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// MustParseInt converts a string to an integer, returning 0 on failure.
func MustParseInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// Truncate cuts s to at most max runes.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
