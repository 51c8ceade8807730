package search

import (
	"github.com/kjhall/vaguetrie/internal/utils"
	"github.com/kjhall/vaguetrie/pkg/trie"
)

// Exact looks up word in the compiled trie with zero tolerance for
// mismatch, returning its stored frequency and true, or (0, false) if the
// dictionary has no such entry.
func Exact(r *trie.Reader, word string) (uint32, bool) {
	scalars := utils.Scalars(word)
	node := r.Root()
	i := 0
	for i < len(scalars) {
		child, ok := r.FindChild(node, scalars[i])
		if !ok {
			return 0, false
		}

		if child.Shape == trie.ShapeRange {
			present, hasFreq, freq, hasChild, firstChild := child.RangeSlot(scalars[i])
			if !present {
				return 0, false
			}
			i++
			if i == len(scalars) {
				if !hasFreq {
					return 0, false
				}
				return freq, true
			}
			if !hasChild {
				return 0, false
			}
			node = trie.Node{HasChild: hasChild, FirstChild: firstChild}
			continue
		}

		label := child.Label
		if i+len(label) > len(scalars) {
			return 0, false
		}
		for k, lc := range label {
			if scalars[i+k] != lc {
				return 0, false
			}
		}
		i += len(label)
		if i == len(scalars) {
			if !child.HasFreq {
				return 0, false
			}
			return child.Freq, true
		}
		if !child.HasChild {
			return 0, false
		}
		node = child
	}

	if node.HasFreq {
		return node.Freq, true
	}
	return 0, false
}
