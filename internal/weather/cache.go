package weather

import (
	"sync"
	"time"
)

// Key identifies one cached lookup: a place (coordinates or city string) and
// the unit system it was requested in.
type Key struct {
	Place string
	Units string
}

// Reading is a cached weather result.
type Reading struct {
	Temp      int
	Condition string
	FetchedAt time.Time
}

// Cache is an explicit TTL cache for weather lookups. It is a constructed
// value, not a package global, so tests build isolated instances with their
// own clock. Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[Key]Reading
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[Key]Reading),
	}
}

// NewCacheWithClock builds a cache with an injected clock.
func NewCacheWithClock(ttl time.Duration, now func() time.Time) *Cache {
	c := NewCache(ttl)
	c.now = now
	return c
}

// Get returns a reading that is still within its TTL. Stale entries are
// removed on the way out.
func (c *Cache) Get(k Key) (Reading, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r, ok := c.entries[k]
	if !ok {
		return Reading{}, false
	}
	if c.now().Sub(r.FetchedAt) > c.ttl {
		delete(c.entries, k)
		return Reading{}, false
	}
	return r, true
}

func (c *Cache) Put(k Key, temp int, condition string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[k] = Reading{Temp: temp, Condition: condition, FetchedAt: c.now()}
}

// Expire drops every entry older than the TTL and returns how many were
// removed.
func (c *Cache) Expire() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	cutoff := c.now()
	for k, r := range c.entries {
		if cutoff.Sub(r.FetchedAt) > c.ttl {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}
