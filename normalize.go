package spellkit

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize maps an arbitrary input string to its canonical lookup key:
// compatibility decomposition (NFKD), stripping of control and whitespace
// code points, and full Unicode lowercasing of what remains. It is pure,
// deterministic, and total, and is used for dictionary keys, query keys, and
// as one of the three forms Guards stores for a protected term.
func Normalize(s string) string {
	decomposed := norm.NFKD.String(s)

	var b strings.Builder
	b.Grow(len(decomposed))

	for _, r := range decomposed {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}

	return strings.ToLower(b.String())
}
