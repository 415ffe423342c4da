// Package normalize folds free text into the canonical form the
// keyword matcher operates on: lowercase, accent-stripped ASCII.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases the input, decomposes it (NFKD) and drops combining
// marks, then discards any rune still outside ASCII. Total and
// idempotent: folding already-folded text returns it unchanged, and
// the empty string maps to itself.
func Fold(text string) string {
	if text == "" {
		return ""
	}

	lowered := strings.ToLower(text)

	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(t, lowered)
	if err != nil {
		stripped = lowered
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}
