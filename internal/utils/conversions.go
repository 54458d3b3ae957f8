package utils

import "strings"

// SplitTrim splits s on sep and trims surrounding whitespace from every element.
// Order and duplicates are kept, so "a, ,a" yields ["a", "", "a"].
func SplitTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// CloneSlice returns a shallow copy of s that never aliases the original.
func CloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
