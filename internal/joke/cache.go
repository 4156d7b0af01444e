package joke

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// AnalysisCache holds the LRU cache of finished analyses keyed by message ID,
// so repeated reaction triggers on the same message do not re-bill the API.
type AnalysisCache struct {
	*lru.Cache[string, string]
}

// NewAnalysisCache creates a new AnalysisCache with the given size.
func NewAnalysisCache(size int) AnalysisCache {
	lruCache, err := lru.New[string, string](size)
	if err != nil {
		// Only reachable with a non-positive size, which the provider guards.
		panic(err)
	}

	return AnalysisCache{Cache: lruCache}
}

// IgnoreCache holds the LRU cache of message IDs that cannot be analyzed
// (empty content, bot author, over the length cap).
type IgnoreCache struct {
	*lru.Cache[string, bool]
}

// NewIgnoreCache creates a new IgnoreCache with the given size.
func NewIgnoreCache(size int) IgnoreCache {
	lruCache, err := lru.New[string, bool](size)
	if err != nil {
		panic(err)
	}

	return IgnoreCache{Cache: lruCache}
}

// Add adds a message ID to the cache.
func (ic *IgnoreCache) Add(messageID string) {
	ic.Cache.Add(messageID, true)
}

// Contains checks if a message ID is in the cache.
func (ic *IgnoreCache) Contains(messageID string) bool {
	_, ok := ic.Get(messageID)

	return ok
}
