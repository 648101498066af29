package img2ascii

import "sync"

// BlockKey identifies a block by its grid position. A key is only
// meaningful together with the resolution the cache was built for.
type BlockKey struct {
	Row int
	Col int
}

// CacheStats reports block cache activity. Misses equal the number of
// entries inserted since the cache was created.
type CacheStats struct {
	Hits       int
	Misses     int
	Entries    int
	Resolution int
}

// BlockCache maps block positions to their average luminance at one
// resolution. Changing the resolution discards every entry; that is the
// only eviction rule, since the entry count is bounded by the number of
// blocks at the current resolution.
type BlockCache struct {
	mu         sync.Mutex
	resolution int
	entries    map[BlockKey]float64
	hits       int
	misses     int
}

// NewBlockCache returns an empty cache with no resolution recorded.
func NewBlockCache() *BlockCache {
	return &BlockCache{
		entries: make(map[BlockKey]float64),
	}
}

// Reset records resolution as current. If it differs from the previous
// one, all entries are dropped first and Reset returns true.
func (c *BlockCache) Reset(resolution int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if resolution == c.resolution {
		return false
	}
	clear(c.entries)
	c.resolution = resolution
	return true
}

// Resolution returns the resolution the entries belong to, or 0 if none
// has been recorded.
func (c *BlockCache) Resolution() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolution
}

// GetOrCompute returns the cached value for key, or calls compute, stores
// its result and returns it. The lookup and the insert happen under a
// single lock. The boolean reports a cache hit.
func (c *BlockCache) GetOrCompute(key BlockKey, compute func() float64) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.entries[key]; ok {
		c.hits++
		return v, true
	}
	v := compute()
	c.entries[key] = v
	c.misses++
	return v, false
}

// Len returns the number of cached entries.
func (c *BlockCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns a snapshot of the cache counters.
func (c *BlockCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{
		Hits:       c.hits,
		Misses:     c.misses,
		Entries:    len(c.entries),
		Resolution: c.resolution,
	}
}
