package search

import (
	"sort"
	"testing"

	"github.com/kjhall/vaguetrie/pkg/patricia"
	"github.com/kjhall/vaguetrie/pkg/trie"
)

func buildTestReader(t *testing.T, words map[string]uint32) *trie.Reader {
	t.Helper()
	pt := patricia.New()
	for w, f := range words {
		pt.Insert([]rune(w), f)
	}
	data := trie.Flatten(pt, 2)
	r, err := trie.NewReader(data)
	if err != nil {
		t.Fatalf("trie.NewReader: %v", err)
	}
	return r
}

var dictionary = map[string]uint32{
	"the":     2000,
	"there":   1000,
	"their":   950,
	"they":    900,
	"car":     500,
	"cart":    480,
	"care":    470,
	"cat":     490,
	"cats":    100,
	"dog":     300,
	"dogs":    80,
}

func TestExactFindsPresentWords(t *testing.T) {
	r := buildTestReader(t, dictionary)
	for w, f := range dictionary {
		got, ok := Exact(r, w)
		if !ok {
			t.Errorf("Exact(%q): not found", w)
			continue
		}
		if got != f {
			t.Errorf("Exact(%q): got freq %d, want %d", w, got, f)
		}
	}
}

func TestExactRejectsAbsentWords(t *testing.T) {
	r := buildTestReader(t, dictionary)
	for _, w := range []string{"ca", "theres", "zzz", "do"} {
		if _, ok := Exact(r, w); ok {
			t.Errorf("Exact(%q): expected not found", w)
		}
	}
}

func TestApproxIncludesExactMatchAtDistanceZero(t *testing.T) {
	r := buildTestReader(t, dictionary)
	matches := Approx(r, "cat", 0)
	if len(matches) != 1 || matches[0].Word != "cat" || matches[0].Distance != 0 {
		t.Fatalf("expected exactly the exact match at distance 0, got %+v", matches)
	}
}

func TestApproxFindsOneEditNeighbors(t *testing.T) {
	r := buildTestReader(t, dictionary)
	matches := Approx(r, "cats", 1)

	byWord := map[string]Match{}
	for _, m := range matches {
		byWord[m.Word] = m
	}
	for _, want := range []string{"cats", "cat"} {
		m, ok := byWord[want]
		if !ok {
			t.Errorf("expected %q among 1-edit neighbors of 'cats', got %+v", want, matches)
			continue
		}
		if m.Distance > 1 {
			t.Errorf("%q: distance %d exceeds requested bound", want, m.Distance)
		}
	}
}

func TestApproxHonorsTranspositionCostTwo(t *testing.T) {
	// "teh" -> "the" is a single adjacent transposition; plain Levenshtein
	// (no Damerau term) must cost 2, not 1.
	r := buildTestReader(t, dictionary)
	if matches := Approx(r, "teh", 1); len(matches) != 0 {
		for _, m := range matches {
			if m.Word == "the" {
				t.Fatalf("expected transposition 'teh'->'the' to cost 2, found within distance 1: %+v", m)
			}
		}
	}
	matches := Approx(r, "teh", 2)
	found := false
	for _, m := range matches {
		if m.Word == "the" {
			found = true
			if m.Distance != 2 {
				t.Errorf("expected distance 2 for 'teh'->'the', got %d", m.Distance)
			}
		}
	}
	if !found {
		t.Fatalf("expected 'the' within distance 2 of 'teh', got %+v", matches)
	}
}

func TestApproxResultsAreSorted(t *testing.T) {
	r := buildTestReader(t, dictionary)
	matches := Approx(r, "ca", 3)
	if !sort.SliceIsSorted(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Freq != b.Freq {
			return a.Freq > b.Freq
		}
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		return a.Word < b.Word
	}) {
		t.Errorf("expected results ordered by (freq desc, distance asc, word asc), got %+v", matches)
	}
}

func TestSortMatchesTieBreakOrder(t *testing.T) {
	matches := []Match{
		{Word: "zeta", Freq: 10, Distance: 1},
		{Word: "alpha", Freq: 10, Distance: 1},
		{Word: "beta", Freq: 10, Distance: 0},
		{Word: "gamma", Freq: 20, Distance: 2},
	}
	sortMatches(matches)

	want := []string{"gamma", "beta", "alpha", "zeta"}
	for i, w := range want {
		if matches[i].Word != w {
			t.Fatalf("position %d: got %q, want %q (full order: %+v)", i, matches[i].Word, w, matches)
		}
	}
}
