package analysis

import (
	"strings"
	"unicode"
)

// SentenceCase lower-cases text and upper-cases the first letter of every
// sentence. Sentences end at '.', '!' or '?'.
func SentenceCase(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	capitalize := true
	for _, r := range strings.ToLower(text) {
		switch {
		case capitalize && unicode.IsLetter(r):
			b.WriteRune(unicode.ToUpper(r))
			capitalize = false
		case r == '.' || r == '!' || r == '?':
			b.WriteRune(r)
			capitalize = true
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Trim removes leading and trailing whitespace and collapses every inner run
// of whitespace into a single space.
func Trim(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
