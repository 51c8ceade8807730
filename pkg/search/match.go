// Package search implements exact and approximate lookups over a compiled
// trie (pkg/trie), plus an LRU cache memoizing recent approximate queries.
package search

import "sort"

// Match is one approximate search result.
type Match struct {
	Word     string
	Freq     uint32
	Distance int
}

// sortMatches orders results by descending frequency, then ascending
// distance, then lexicographically — the tie-break order the query
// front-end's output is expected to be stable under.
func sortMatches(matches []Match) {
	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Freq != b.Freq {
			return a.Freq > b.Freq
		}
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		return a.Word < b.Word
	})
}
