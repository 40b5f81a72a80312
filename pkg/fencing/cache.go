package fencing

import (
	"sync"

	"github.com/golang/groupcache/lru"
)

const defaultCacheEntries = 32

type cacheKey struct {
	pattern string
	text    string
}

// matchCache memoises pattern matches by (pattern, text). Matching is a pure
// function of its inputs, so entries never go stale.
type matchCache struct {
	mu    sync.Mutex
	cache *lru.Cache
}

func newMatchCache(entries int) *matchCache {
	return &matchCache{cache: lru.New(entries)}
}

func (c *matchCache) get(pattern, text string) ([]Match, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.cache.Get(cacheKey{pattern: pattern, text: text})
	if !ok {
		return nil, false
	}
	return v.([]Match), true
}

func (c *matchCache) add(pattern, text string, ms []Match) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Add(cacheKey{pattern: pattern, text: text}, ms)
}

func (c *matchCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.Len()
}
