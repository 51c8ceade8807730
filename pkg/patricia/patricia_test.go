package patricia

import "testing"

func insertAll(t *Trie, words map[string]uint32) {
	for w, f := range words {
		t.Insert([]rune(w), f)
	}
}

func TestInsertAndWalkCount(t *testing.T) {
	trie := New()
	words := map[string]uint32{
		"cat":   10,
		"car":   20,
		"care":  30,
		"card":  40,
		"dog":   50,
		"do":    5,
		"doge":  1,
		"":      0, // root gets a frequency too
	}
	insertAll(trie, words)

	found := map[string]uint32{}
	var walk func(n *Node, prefix []rune)
	walk = func(n *Node, prefix []rune) {
		word := append(append([]rune(nil), prefix...), n.Label...)
		if n.HasFreq {
			found[string(word)] = n.Freq
		}
		for _, c := range n.Children {
			walk(c, word)
		}
	}
	walk(trie.Root, nil)

	for w, f := range words {
		got, ok := found[w]
		if !ok {
			t.Errorf("word %q not found after insert", w)
			continue
		}
		if got != f {
			t.Errorf("word %q: got freq %d, want %d", w, got, f)
		}
	}
}

func TestInsertOverwritesFrequency(t *testing.T) {
	trie := New()
	trie.Insert([]rune("hello"), 1)
	trie.Insert([]rune("hello"), 2)

	var got uint32
	trie.Walk(func(n *Node, depth int, parent *Node, siblingIndex int) {
		if n.HasFreq && n.Label != nil {
			got = n.Freq
		}
	})
	if got != 2 {
		t.Errorf("expected overwritten freq 2, got %d", got)
	}
}

func TestChildrenStaySortedByFirstRune(t *testing.T) {
	trie := New()
	for _, w := range []string{"zebra", "apple", "mango", "banana"} {
		trie.Insert([]rune(w), 1)
	}
	var last rune = -1
	for _, c := range trie.Root.Children {
		if c.Label[0] <= last {
			t.Fatalf("children not sorted: %c came after %c", c.Label[0], last)
		}
		last = c.Label[0]
	}
}

func TestSplitOnPartialMatch(t *testing.T) {
	trie := New()
	trie.Insert([]rune("cart"), 2)
	trie.Insert([]rune("car"), 1)

	if len(trie.Root.Children) != 1 {
		t.Fatalf("expected a single top-level child starting with 'c', got %d", len(trie.Root.Children))
	}
	carNode := trie.Root.Children[0]
	if string(carNode.Label) != "car" {
		t.Fatalf("expected split node labeled %q, got %q", "car", string(carNode.Label))
	}
	if !carNode.HasFreq || carNode.Freq != 1 {
		t.Fatalf("split node should carry 'car's frequency, got hasFreq=%v freq=%d", carNode.HasFreq, carNode.Freq)
	}
	if len(carNode.Children) != 1 || string(carNode.Children[0].Label) != "t" {
		t.Fatalf("expected a single 't' suffix child under 'car'")
	}
}

func TestWalkVisitsRootFirst(t *testing.T) {
	trie := New()
	trie.Insert([]rune("a"), 1)

	var order []string
	trie.Walk(func(n *Node, depth int, parent *Node, siblingIndex int) {
		order = append(order, string(n.Label))
	})
	if len(order) == 0 || order[0] != "" {
		t.Fatalf("expected root (empty label) to be visited first, got %v", order)
	}
}
