package catalog

import (
	"container/list"
	"sync"
	"time"

	"github.com/golang/snappy"
)

// ResultCache is a TTL + LRU cache for raw lineage payloads. Entries
// expire after the TTL; at capacity the least recently used entry is
// evicted. Payloads are held snappy-compressed, since raw lineage
// responses for wide graphs run to hundreds of kilobytes of JSON.
//
// The cache is an injected collaborator with an explicit TTL, never
// process-wide mutable state.
type ResultCache struct {
	mu        sync.Mutex
	entries   map[string]*list.Element
	order     *list.List // front = most recently used
	maxSize   int
	ttl       time.Duration
	hits      uint64
	misses    uint64
	evictions uint64
	now       func() time.Time
}

type cacheEntry struct {
	key        string
	compressed []byte
	cachedAt   time.Time
}

// CacheStats reports cache effectiveness for health checks and metrics.
type CacheStats struct {
	Size      int     `json:"size"`
	MaxSize   int     `json:"maxSize"`
	TTL       string  `json:"ttl"`
	Hits      uint64  `json:"hits"`
	Misses    uint64  `json:"misses"`
	Evictions uint64  `json:"evictions"`
	HitRate   float64 `json:"hitRate"`
}

// NewResultCache creates a cache holding at most maxSize entries for at
// most ttl each.
func NewResultCache(maxSize int, ttl time.Duration) *ResultCache {
	if maxSize <= 0 {
		maxSize = 256
	}
	return &ResultCache{
		entries: make(map[string]*list.Element),
		order:   list.New(),
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the decompressed payload for key, or ok=false on a miss or
// an expired entry. Expired entries are removed on access.
func (c *ResultCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	element, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}

	entry := element.Value.(*cacheEntry)
	if c.now().Sub(entry.cachedAt) > c.ttl {
		c.removeLocked(element)
		c.misses++
		return nil, false
	}

	payload, err := snappy.Decode(nil, entry.compressed)
	if err != nil {
		// Corrupt entry; drop it and report a miss
		c.removeLocked(element)
		c.misses++
		return nil, false
	}

	c.order.MoveToFront(element)
	c.hits++
	return payload, true
}

// Set stores a payload under key, evicting LRU entries at capacity.
func (c *ResultCache) Set(key string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, ok := c.entries[key]; ok {
		entry := element.Value.(*cacheEntry)
		entry.compressed = snappy.Encode(nil, payload)
		entry.cachedAt = c.now()
		c.order.MoveToFront(element)
		return
	}

	for len(c.entries) >= c.maxSize {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.removeLocked(oldest)
		c.evictions++
	}

	entry := &cacheEntry{
		key:        key,
		compressed: snappy.Encode(nil, payload),
		cachedAt:   c.now(),
	}
	c.entries[key] = c.order.PushFront(entry)
}

// Invalidate removes one entry. Returns true if it existed.
func (c *ResultCache) Invalidate(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	element, ok := c.entries[key]
	if !ok {
		return false
	}
	c.removeLocked(element)
	return true
}

// Clear removes every entry and returns how many were dropped.
func (c *ResultCache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := len(c.entries)
	c.entries = make(map[string]*list.Element)
	c.order.Init()
	return count
}

// Stats returns a snapshot of cache statistics.
func (c *ResultCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := CacheStats{
		Size:      len(c.entries),
		MaxSize:   c.maxSize,
		TTL:       c.ttl.String(),
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		stats.HitRate = float64(c.hits) / float64(total)
	}
	return stats
}

func (c *ResultCache) removeLocked(element *list.Element) {
	entry := element.Value.(*cacheEntry)
	delete(c.entries, entry.key)
	c.order.Remove(element)
}
