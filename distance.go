package spellkit

import "github.com/eskriett/strmet"

// Distance returns the Levenshtein distance between a and b over Unicode
// code points (not bytes), with unit cost for insertion, deletion, and
// substitution. It uses two rolling rows: O(|a|*|b|) time, O(min(|a|,|b|))
// extra space. Transposition is not part of the contract — this is plain
// Levenshtein, not Damerau-Levenshtein.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j
		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			del := prev[i] + 1
			ins := curr[i-1] + 1
			sub := prev[i-1] + cost

			curr[i] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// BoundedDistance returns the Levenshtein distance between a and b if it is
// no greater than maxDist, or -1 otherwise. It delegates to
// github.com/eskriett/strmet, the distance library the teacher package
// wires LookupOption.DistanceFunc to, which is able to abandon the
// comparison early once every cell in the active row already exceeds
// maxDist. BoundedDistance must agree with Distance for every pair within
// maxDist.
func BoundedDistance(a, b string, maxDist int) int {
	return strmet.Levenshtein(a, b, maxDist)
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
