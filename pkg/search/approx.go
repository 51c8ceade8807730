package search

import (
	"github.com/kjhall/vaguetrie/internal/utils"
	"github.com/kjhall/vaguetrie/pkg/layerstack"
	"github.com/kjhall/vaguetrie/pkg/trie"
)

// Approx returns every dictionary word within maxDistance Levenshtein edits
// of word, ordered by descending frequency, then ascending distance, then
// lexicographically. Transpositions are not special-cased: swapping two
// adjacent scalars costs 2 edits, same as plain Levenshtein gives for two
// substitutions.
func Approx(r *trie.Reader, word string, maxDistance int) []Match {
	target := utils.Scalars(word)
	base := make([]int, len(target)+1)
	for j := range base {
		base[j] = j
	}

	stack := layerstack.New[[]int]()
	stack.Push(base)

	var path []rune
	var results []Match

	walk(r, r.Root(), target, maxDistance, stack, &path, &results)

	sortMatches(results)
	return results
}

func walk(r *trie.Reader, node trie.Node, target []rune, maxDistance int, stack *layerstack.Stack[[]int], path *[]rune, results *[]Match) {
	if node.HasFreq {
		row, _ := stack.Peek()
		dist := row[len(row)-1]
		if dist <= maxDistance {
			*results = append(*results, Match{Word: string(*path), Freq: node.Freq, Distance: dist})
		}
	}
	if !node.HasChild {
		return
	}

	for _, child := range r.Children(node) {
		if child.Shape == trie.ShapeRange {
			for ch := child.Lo; ch <= child.Hi; ch++ {
				present, hasFreq, freq, hasChild, firstChild := child.RangeSlot(ch)
				if !present {
					continue
				}
				descendOne(r, ch, trie.Node{HasFreq: hasFreq, Freq: freq, HasChild: hasChild, FirstChild: firstChild},
					target, maxDistance, stack, path, results)
			}
			continue
		}

		pushed := 0
		pruned := false
		for _, ch := range child.Label {
			prevRow, _ := stack.Peek()
			row := nextRow(prevRow, ch, target)
			stack.Push(row)
			*path = append(*path, ch)
			pushed++
			if minRow(row) > maxDistance {
				pruned = true
				break
			}
		}
		if !pruned {
			walk(r, child, target, maxDistance, stack, path, results)
		}
		for k := 0; k < pushed; k++ {
			stack.Pop()
			*path = (*path)[:len(*path)-1]
		}
	}
}

// descendOne handles a single-scalar edge (one resolved character of a
// range node): compute one row, and unless it is pruned push it, recurse,
// and pop.
func descendOne(r *trie.Reader, ch rune, leaf trie.Node, target []rune, maxDistance int, stack *layerstack.Stack[[]int], path *[]rune, results *[]Match) {
	prevRow, _ := stack.Peek()
	row := nextRow(prevRow, ch, target)
	if minRow(row) > maxDistance {
		return
	}
	stack.Push(row)
	*path = append(*path, ch)

	walk(r, leaf, target, maxDistance, stack, path, results)

	stack.Pop()
	*path = (*path)[:len(*path)-1]
}

// nextRow computes the DP row for matching prefix+ch against every prefix
// of target, given prevRow (the row for prefix alone).
func nextRow(prevRow []int, ch rune, target []rune) []int {
	n := len(target)
	row := make([]int, n+1)
	row[0] = prevRow[0] + 1
	for j := 1; j <= n; j++ {
		cost := 1
		if target[j-1] == ch {
			cost = 0
		}
		del := prevRow[j] + 1
		ins := row[j-1] + 1
		sub := prevRow[j-1] + cost
		best := del
		if ins < best {
			best = ins
		}
		if sub < best {
			best = sub
		}
		row[j] = best
	}
	return row
}

func minRow(row []int) int {
	m := row[0]
	for _, v := range row[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
