package common

import "strings"

// SplitLast splits s around the last occurrence of sep. When sep is absent
// the whole string is the left part and the remainder is empty.
func SplitLast(s, sep string) (string, string) {
	idx := strings.LastIndex(s, sep)
	if idx < 0 {
		return s, ""
	}

	return s[:idx], s[idx+len(sep):]
}
