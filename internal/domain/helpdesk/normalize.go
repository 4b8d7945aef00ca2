package helpdesk

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases text, turns everything except letters, digits and
// underscores into spaces and collapses whitespace. Input is NFC-composed
// first so decomposed accents stay attached to their letter.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	lowered := strings.ToLower(norm.NFC.String(text))
	var builder strings.Builder
	builder.Grow(len(lowered))
	lastSpace := true
	for _, r := range lowered {
		if isWordRune(r) {
			builder.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			builder.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(builder.String())
}

// NormalizeRouteToken reduces a route number to its comparable form:
// alphanumerics only, lowercased, leading zeros removed. "00" becomes "",
// the same value as an unparsed token, so callers treat "" as no match.
func NormalizeRouteToken(token string) string {
	var builder strings.Builder
	builder.Grow(len(token))
	for _, r := range strings.ToLower(token) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
		}
	}
	return strings.TrimLeft(builder.String(), "0")
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
