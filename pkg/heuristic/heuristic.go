// Package heuristic implements the node-shape decision (spec §4.C) applied
// to each sibling group of the build-time Patricia trie during flattening.
// It never mutates the Patricia trie; it only classifies each sibling group
// into the sequence of compiled-trie node shapes that will reproduce it.
package heuristic

import "github.com/kjhall/vaguetrie/pkg/patricia"

// Shape identifies which compiled trie node variant a Slot should become.
type Shape int

const (
	ShapeNaive Shape = iota
	ShapePatricia
	ShapeRange
)

// Slot is one emitted unit of a planned sibling group, in the same
// lexicographic order as the original siblings.
type Slot struct {
	Shape Shape

	// Valid when Shape is ShapeNaive or ShapePatricia.
	Node *patricia.Node

	// Valid when Shape is ShapeRange. Members has length Hi-Lo+1; a nil
	// entry marks a character absent from the dictionary at this position.
	Lo, Hi  rune
	Members []*patricia.Node
}

// Byte costs of the compiled trie's fixed-size records (pkg/trie). Kept
// here rather than imported from pkg/trie to avoid a heuristic<->trie
// import cycle: pkg/trie's Flatten executes the shape decisions this
// package makes, so trie's record sizes and these constants must be kept in
// lockstep (see DESIGN.md).
const (
	naiveNodeCost = 17 // tag + rune + hasFreq + freq + siblingCount + hasChild + firstChildIndex
	rangeHeaderCost = 11 // tag + chLo + chHi + siblingCount
	rangeSlotCost   = 9  // flags + freq + firstChildIndex
)

// Plan decides the shape of every sibling in a group. siblings must already
// be in the Patricia trie's sibling order (ascending by first rune).
// minRangeSpan is the smallest character span (Hi-Lo+1) a range node is
// allowed to cover even when cheaper than the naive encoding — spec
// requires at least 2; a larger config value makes the heuristic more
// conservative about folding sparse windows into ranges.
func Plan(siblings []*patricia.Node, minRangeSpan int) []Slot {
	if minRangeSpan < 2 {
		minRangeSpan = 2
	}
	if len(siblings) == 0 {
		return nil
	}

	anyMultiChar := false
	for _, s := range siblings {
		if len(s.Label) >= 2 {
			anyMultiChar = true
			break
		}
	}
	if anyMultiChar {
		return planMixed(siblings)
	}
	return planRanges(siblings, minRangeSpan)
}

// planMixed handles a group containing at least one label of length >= 2:
// per spec every sibling is emitted individually (Patricia if its label has
// length >= 2, Naive if length 1); range consolidation never applies here.
func planMixed(siblings []*patricia.Node) []Slot {
	slots := make([]Slot, len(siblings))
	for i, s := range siblings {
		if len(s.Label) == 1 {
			slots[i] = Slot{Shape: ShapeNaive, Node: s}
		} else {
			slots[i] = Slot{Shape: ShapePatricia, Node: s}
		}
	}
	return slots
}

// planRanges handles a group where every sibling's label is a single
// character: it greedily folds maximal dense runs into range nodes and
// emits everything else as naive nodes.
func planRanges(siblings []*patricia.Node, minRangeSpan int) []Slot {
	var slots []Slot
	i := 0
	for i < len(siblings) {
		j := i
		// Greedily extend the window while the range encoding stays
		// cheaper than individually naive-encoding the covered siblings.
		for j+1 < len(siblings) {
			lo := siblings[i].Label[0]
			hi := siblings[j+1].Label[0]
			span := int(hi-lo) + 1
			presentCount := j + 2 - i
			rangeCost := rangeHeaderCost + rangeSlotCost*span
			naiveCost := presentCount * naiveNodeCost
			if rangeCost <= naiveCost {
				j++
				continue
			}
			break
		}

		lo := siblings[i].Label[0]
		hi := siblings[j].Label[0]
		span := int(hi-lo) + 1
		if j > i && span >= minRangeSpan {
			members := make([]*patricia.Node, span)
			k := i
			for ch := lo; ch <= hi; ch++ {
				if k <= j && siblings[k].Label[0] == ch {
					members[ch-lo] = siblings[k]
					k++
				}
			}
			slots = append(slots, Slot{Shape: ShapeRange, Lo: lo, Hi: hi, Members: members})
			i = j + 1
			continue
		}

		// Window of one (or a non-beneficial pair): emit as naive and
		// advance by a single sibling so later siblings still get a
		// chance to form their own range.
		slots = append(slots, Slot{Shape: ShapeNaive, Node: siblings[i]})
		i++
	}
	return slots
}
