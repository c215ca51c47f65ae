// Package formatting provides text shaping utilities for bounded summaries
// and capped event bodies.
package formatting

import "strings"

// Truncate returns s cut to at most limit runes. A limit of zero or less
// returns s unchanged. The cut is rune-safe, so multi-byte characters are
// never split.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}

	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit])
}

// CollapseSpace reduces runs of whitespace (including newlines) to a single
// space and trims the ends. Used when folding multi-line event bodies into
// single summary lines.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
