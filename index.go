package spellkit

// WordEntry stores metadata about one dictionary word. canonical is the
// original-cased form as loaded; frequency is a non-negative count, higher
// meaning more common. WordEntry values are created once at dictionary load
// and never mutated afterward.
type WordEntry struct {
	Canonical string
	Frequency uint64
}

// DictionaryEntry is the (term, frequency) tuple a caller hands to Load. File
// I/O that produces these tuples is glue (see LoadDictionaryFile) living
// outside the core index.
type DictionaryEntry struct {
	Term      string
	Frequency uint64
}

// sdIndex is the symmetric-delete dictionary: a (normalized -> WordEntry) map
// plus a (delete-variant -> set of normalized dictionary words that yield it)
// map. It is built once by newSDIndex and never mutated afterward; every
// query observes a consistent, immutable snapshot (§3 I4).
type sdIndex struct {
	words           map[string]WordEntry
	deletes         map[string]map[string]struct{}
	maxEditDistance int
}

// newSDIndex builds the index from a sequence of dictionary tuples at the
// given max edit distance (1 or 2). Tuples that normalize to the empty
// string are skipped. When two tuples normalize to the same key, the entry
// with the higher frequency is kept; ties keep the first-seen entry (§4.3,
// an explicit resolution of the "sum or max frequency" open question).
func newSDIndex(entries []DictionaryEntry, maxEditDistance int) *sdIndex {
	idx := &sdIndex{
		words:           make(map[string]WordEntry, len(entries)),
		deletes:         make(map[string]map[string]struct{}),
		maxEditDistance: maxEditDistance,
	}

	for _, e := range entries {
		idx.add(e.Term, e.Frequency)
	}

	return idx
}

func (idx *sdIndex) add(canonical string, frequency uint64) {
	k := Normalize(canonical)
	if k == "" {
		return
	}

	if existing, ok := idx.words[k]; ok {
		if frequency <= existing.Frequency {
			return
		}
	}

	idx.words[k] = WordEntry{Canonical: canonical, Frequency: frequency}

	for d := range deleteSet(k, idx.maxEditDistance) {
		if d == k {
			continue
		}
		set, ok := idx.deletes[d]
		if !ok {
			set = make(map[string]struct{})
			idx.deletes[d] = set
		}
		set[k] = struct{}{}
	}
}

// deleteSet returns the set of strings obtainable from w by deleting 1..D
// code points in any position, computed by breadth-first expansion over
// successive deletion levels. Empty strings are included in the result but
// not propagated to the next frontier (§4.3).
func deleteSet(w string, d int) map[string]struct{} {
	result := make(map[string]struct{})
	if d <= 0 {
		return result
	}

	frontier := []string{w}
	seenFrontier := map[string]struct{}{w: {}}

	for level := 0; level < d; level++ {
		var next []string

		for _, s := range frontier {
			runes := []rune(s)
			for i := range runes {
				variant := string(runes[:i]) + string(runes[i+1:])
				result[variant] = struct{}{}

				if variant == "" {
					continue
				}
				if _, dup := seenFrontier[variant]; dup {
					continue
				}
				seenFrontier[variant] = struct{}{}
				next = append(next, variant)
			}
		}

		frontier = next
	}

	return result
}
