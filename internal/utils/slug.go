package utils

import (
	"strings"
	"unicode"
)

// Slugify derives a URL-safe code from a human-readable title: lower
// case, ASCII letters and digits kept, everything else collapsed into
// single hyphens.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
