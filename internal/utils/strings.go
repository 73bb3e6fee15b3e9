package utils

import (
	"strings"
	"unicode/utf8"
)

// TrimAndTruncate trims surrounding whitespace and cuts s to at most max runes.
func TrimAndTruncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
