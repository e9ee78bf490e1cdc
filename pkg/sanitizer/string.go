// Package sanitizer normalizes free-text input before validation and
// storage. Functions are idempotent and never return errors; invalid
// input degrades to an empty string.
package sanitizer

import (
	"strings"
	"unicode"
)

func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

// NormalizeBatchName collapses whitespace and uppercases batch names so
// "cs 2024" and "CS  2024" refer to the same batch document.
func NormalizeBatchName(name string) string {
	return strings.ToUpper(TrimAndNormalize(name))
}

func NormalizeCampus(campus string) string {
	return TrimAndNormalize(campus)
}
