package search

import "testing"

func TestCacheGetMissThenHit(t *testing.T) {
	c := NewResultCache(4)
	if _, ok := c.Get("cat", 1); ok {
		t.Fatalf("expected miss on empty cache")
	}
	want := []Match{{Word: "cat", Freq: 10, Distance: 0}}
	c.Put("cat", 1, want)

	got, ok := c.Get("cat", 1)
	if !ok {
		t.Fatalf("expected hit after Put")
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestCacheKeyDistinguishesDistance(t *testing.T) {
	c := NewResultCache(4)
	c.Put("cat", 1, []Match{{Word: "cat", Distance: 1}})
	c.Put("cat", 2, []Match{{Word: "cat", Distance: 2}})

	m1, ok := c.Get("cat", 1)
	if !ok || m1[0].Distance != 1 {
		t.Fatalf("expected distance-1 entry untouched by distance-2 Put, got %+v", m1)
	}
	m2, ok := c.Get("cat", 2)
	if !ok || m2[0].Distance != 2 {
		t.Fatalf("expected distinct distance-2 entry, got %+v", m2)
	}
}

func TestCacheZeroSizeDisablesMemoization(t *testing.T) {
	c := NewResultCache(0)
	c.Put("cat", 1, []Match{{Word: "cat"}})
	if _, ok := c.Get("cat", 1); ok {
		t.Fatalf("expected a zero-size cache to never hit")
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewResultCache(2)
	c.Put("a", 1, []Match{{Word: "a"}})
	c.Put("b", 1, []Match{{Word: "b"}})

	// touch "a" so "b" becomes the least recently used entry
	if _, ok := c.Get("a", 1); !ok {
		t.Fatalf("expected hit for 'a'")
	}
	c.Put("c", 1, []Match{{Word: "c"}})

	if _, ok := c.Get("b", 1); ok {
		t.Errorf("expected 'b' to be evicted as least recently used")
	}
	if _, ok := c.Get("a", 1); !ok {
		t.Errorf("expected 'a' to survive eviction")
	}
	if _, ok := c.Get("c", 1); !ok {
		t.Errorf("expected newly inserted 'c' to be present")
	}
}

func TestApproxCachedReturnsSameResultAsApprox(t *testing.T) {
	r := buildTestReader(t, dictionary)
	cache := NewResultCache(8)

	first := ApproxCached(r, cache, "cat", 1)
	second := ApproxCached(r, cache, "cat", 1)

	if len(first) != len(second) {
		t.Fatalf("expected cached call to return the same result set, got %+v vs %+v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("index %d: got %+v, want %+v", i, second[i], first[i])
		}
	}
}

func TestApproxCachedWithNilCache(t *testing.T) {
	r := buildTestReader(t, dictionary)
	matches := ApproxCached(r, nil, "cat", 1)
	if len(matches) == 0 {
		t.Fatalf("expected ApproxCached to still work with a nil cache")
	}
}
