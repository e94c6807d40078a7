package spellkit

import "sort"

// Suggestion represents one candidate correction for a query: the canonical
// form of a dictionary word, its edit distance from the query's normalized
// form, and its dictionary frequency. Suggestions are transient: built per
// query and discarded once the caller consumes them.
type Suggestion struct {
	Term      string
	Distance  int
	Frequency uint64
}

// SuggestionList is a ranked slice of Suggestion, sorted by (distance asc,
// frequency desc, term asc) with no duplicate Term values (§4.4 step 7, §8
// P3).
type SuggestionList []Suggestion

// Terms returns the Term field of every suggestion, in rank order.
func (s SuggestionList) Terms() []string {
	terms := make([]string, len(s))
	for i, sg := range s {
		terms[i] = sg.Term
	}
	return terms
}

// suggest produces a ranked list of Suggestion for query, probing idx. max
// bounds the length of the returned list; max <= 0 returns an empty list,
// matching the contract for the public Engine.Suggest.
func suggest(idx *sdIndex, query string, max int) SuggestionList {
	if max <= 0 {
		return SuggestionList{}
	}

	q := Normalize(query)
	if q == "" {
		return SuggestionList{}
	}

	var results SuggestionList
	seen := make(map[string]struct{})

	if entry, ok := idx.words[q]; ok {
		results = append(results, Suggestion{Term: entry.Canonical, Distance: 0, Frequency: entry.Frequency})
		seen[q] = struct{}{}
	}

	considerCandidate := func(candidate string) {
		if _, already := seen[candidate]; already {
			return
		}
		entry, ok := idx.words[candidate]
		if !ok {
			return
		}

		dist := BoundedDistance(q, candidate, idx.maxEditDistance)
		if dist == -1 {
			return
		}

		seen[candidate] = struct{}{}
		results = append(results, Suggestion{Term: entry.Canonical, Distance: dist, Frequency: entry.Frequency})
	}

	for d := range deleteSet(q, idx.maxEditDistance) {
		considerCandidate(d)

		if bucket, ok := idx.deletes[d]; ok {
			for candidate := range bucket {
				considerCandidate(candidate)
			}
		}
	}

	if bucket, ok := idx.deletes[q]; ok {
		for candidate := range bucket {
			considerCandidate(candidate)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if a.Frequency != b.Frequency {
			return a.Frequency > b.Frequency
		}
		return a.Term < b.Term
	})

	if len(results) > max {
		results = results[:max]
	}

	return results
}
