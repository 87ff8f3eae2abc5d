// Package langid implements the language identification pipeline: text
// normalization, n-gram vectorization, label encoding, a multinomial naive
// Bayes classifier, and persistence of the fitted components.
package langid

import (
	"strings"
	"unicode"
)

// Normalize lowercases text, strips everything that is not a Latin letter,
// and collapses whitespace runs into single spaces. The trained model only
// knows Latin-script features, so digits, punctuation, and non-Latin letters
// carry no signal and are removed before vectorization.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	pendingSpace := false
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z':
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			pendingSpace = true
		}
	}

	return b.String()
}
