package sheetcache

import (
	"sync"
	"time"
)

// DefaultTTL is used when no TTL is configured. The row store throttles
// requests, so even a short window absorbs most repeated reads.
const DefaultTTL = 30 * time.Second

type entry struct {
	rows       []map[string]string
	capturedAt time.Time
}

// Cache is a process-wide TTL cache of decoded sheet rows keyed by
// collection name. Entries expire lazily: a stale entry is simply not
// returned, it stays in the map until overwritten or invalidated.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

// New creates a cache with the given TTL. A non-positive TTL falls back
// to DefaultTTL.
func New(ttl time.Duration) *Cache {
	return NewWithClock(ttl, time.Now)
}

// NewWithClock creates a cache with an injected clock so expiry can be
// tested deterministically.
func NewWithClock(ttl time.Duration, now func() time.Time) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]entry),
	}
}

// Get returns the cached rows for name if an entry exists and has not
// outlived the TTL. A stale entry behaves as absent.
func (c *Cache) Get(name string) ([]map[string]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[name]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.capturedAt) >= c.ttl {
		return nil, false
	}
	return e.rows, true
}

// Set unconditionally replaces the entry for name with rows captured now.
// There are no merge semantics: callers that patched a single row must
// pass the full row sequence.
func (c *Cache) Set(name string, rows []map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[name] = entry{rows: rows, capturedAt: c.now()}
}

// Invalidate removes the entry for name if present.
func (c *Cache) Invalidate(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, name)
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}
