package search

import (
	"strconv"
	"sync"

	"github.com/kjhall/vaguetrie/pkg/trie"
)

// ResultCache memoizes Approx results for recently seen (word, maxDistance)
// queries, evicting the least recently used entry once it reaches its
// configured size. Safe for concurrent use. Both front-ends, the IPC server
// (pkg/server) and the stdin query loop (internal/cli), send approximate
// queries through it rather than call Approx directly.
type ResultCache struct {
	mu          sync.RWMutex
	maxEntries  int
	results     map[string][]Match
	accessTime  map[string]int64
	accessCount int64
}

// NewResultCache returns a cache holding up to maxEntries distinct
// (word, maxDistance) queries. maxEntries <= 0 disables memoization: Get
// always misses and Put is a no-op.
func NewResultCache(maxEntries int) *ResultCache {
	return &ResultCache{
		maxEntries: maxEntries,
		results:    make(map[string][]Match),
		accessTime: make(map[string]int64),
	}
}

func cacheKey(word string, maxDistance int) string {
	return word + "\x00" + strconv.Itoa(maxDistance)
}

// Get returns the cached matches for (word, maxDistance), if present.
func (c *ResultCache) Get(word string, maxDistance int) ([]Match, bool) {
	if c.maxEntries <= 0 {
		return nil, false
	}
	key := cacheKey(word, maxDistance)

	c.mu.Lock()
	defer c.mu.Unlock()
	matches, ok := c.results[key]
	if ok {
		c.accessCount++
		c.accessTime[key] = c.accessCount
	}
	return matches, ok
}

// Put stores matches for (word, maxDistance), evicting the least recently
// used entry first if the cache is already full.
func (c *ResultCache) Put(word string, maxDistance int, matches []Match) {
	if c.maxEntries <= 0 {
		return
	}
	key := cacheKey(word, maxDistance)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.results[key]; !exists && len(c.results) >= c.maxEntries {
		c.evictLRU()
	}
	c.results[key] = matches
	c.accessCount++
	c.accessTime[key] = c.accessCount
}

func (c *ResultCache) evictLRU() {
	var oldestKey string
	var oldestTime int64 = int64(^uint64(0) >> 1)
	for key, t := range c.accessTime {
		if t < oldestTime {
			oldestTime = t
			oldestKey = key
		}
	}
	if oldestKey != "" {
		delete(c.results, oldestKey)
		delete(c.accessTime, oldestKey)
	}
}

// ApproxCached is Approx with ResultCache memoization in front of it.
func ApproxCached(r *trie.Reader, cache *ResultCache, word string, maxDistance int) []Match {
	if cache != nil {
		if cached, ok := cache.Get(word, maxDistance); ok {
			return cached
		}
	}
	matches := Approx(r, word, maxDistance)
	if cache != nil {
		cache.Put(word, maxDistance, matches)
	}
	return matches
}
