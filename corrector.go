package spellkit

// passesFrequencyGate is the single predicate the frequency gate in §4.6 step
// 5 is built from, shared verbatim by the single-token and batch correction
// paths so they cannot silently diverge (§9 design note: "the source
// repository contains several drafts where the batch path silently drops the
// f0 branch"). f0 is the original token's dictionary frequency, or nil if the
// token is unknown.
func passesFrequencyGate(candidateFreq uint64, threshold float64, f0 *uint64) bool {
	if f0 == nil {
		return float64(candidateFreq) >= threshold
	}
	return float64(candidateFreq) >= threshold*float64(*f0)
}

// correctIfUnknown implements §4.6: if use_guard and the token is protected,
// return it unchanged. Otherwise rank suggestions; an exact dictionary hit
// returns the token unchanged (keeping its original casing). Among
// distance-1 candidates, the first to pass the frequency gate replaces the
// token; if none pass, the token is returned unchanged.
func correctIfUnknown(idx *sdIndex, g *guards, threshold float64, token string, useGuard bool) string {
	normalized := Normalize(token)

	if useGuard && g.isProtectedNormalized(token, normalized) {
		return token
	}

	suggestions := suggest(idx, token, 5)

	if len(suggestions) > 0 && suggestions[0].Distance == 0 {
		return token
	}

	var f0 *uint64
	if entry, ok := idx.words[normalized]; ok {
		f := entry.Frequency
		f0 = &f
	}

	for _, s := range suggestions {
		if s.Distance > 1 {
			continue
		}
		if passesFrequencyGate(s.Frequency, threshold, f0) {
			return s.Term
		}
	}

	return token
}

// correctTokens applies correctIfUnknown to every element of tokens,
// preserving order and length. Callers holding a shared read lock for the
// whole batch (rather than per token) do so one level up, in Engine, since
// the lock discipline lives with the snapshot, not with this pure function.
func correctTokens(idx *sdIndex, g *guards, threshold float64, tokens []string, useGuard bool) []string {
	result := make([]string, len(tokens))
	for i, t := range tokens {
		result[i] = correctIfUnknown(idx, g, threshold, t, useGuard)
	}
	return result
}

// isKnown reports whether normalize(word) is a key in idx.words.
func isKnown(idx *sdIndex, word string) bool {
	_, ok := idx.words[Normalize(word)]
	return ok
}
