package csvmap

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeHeader canonicalizes a raw CSV header for alias lookup: strips a
// UTF-8 BOM, lowercases, turns anything that is not a letter, digit,
// whitespace or underscore into a space, then collapses whitespace runs into
// a single underscore. Idempotent and pure.
func NormalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\uFEFF")
	h = strings.ToLower(strings.TrimSpace(h))

	var b strings.Builder
	b.Grow(len(h))
	for _, r := range h {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '_' {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(' ')
	}

	return whitespaceRun.ReplaceAllString(b.String(), "_")
}
