// Package cache implements the process-local inbox page cache.
package cache

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Key identifies one cached inbox page. Two queries share an entry only
// when the member, the page size, and the unread filter all match.
type Key struct {
	UserID     uuid.UUID
	Limit      int
	UnreadOnly bool
}

type entry struct {
	data     any
	storedAt time.Time
}

// InboxCache is a bounded TTL cache for inbox pages. It shields the
// store from repeated list queries; it is not a source of truth and is
// never consulted to mask a store outage.
//
// The cache is process-local. In a multi-instance deployment each
// instance holds its own map and a write on one instance does not
// invalidate another's; the short TTL bounds the resulting staleness.
type InboxCache struct {
	mu         sync.Mutex
	entries    map[Key]entry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// NewInboxCache creates a cache with the given TTL and size bound.
// The clock is injected so tests can advance time deterministically;
// pass nil to use time.Now.
func NewInboxCache(ttl time.Duration, maxEntries int, now func() time.Time) *InboxCache {
	if now == nil {
		now = time.Now
	}

	return &InboxCache{
		entries:    make(map[Key]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        now,
	}
}

// Get returns the cached page for key, or (nil, false) on a miss.
// A stale entry is deleted on access.
func (c *InboxCache) Get(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(ent.storedAt) >= c.ttl {
		delete(c.entries, key)

		return nil, false
	}

	return ent.data, true
}

// Put inserts or replaces the entry for key, evicting the single oldest
// entry when the size bound is exceeded. Last writer wins on concurrent
// puts for the same key.
func (c *InboxCache) Put(key Key, data any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{data: data, storedAt: c.now()}

	if len(c.entries) <= c.maxEntries {
		return
	}

	var oldestKey Key
	var oldestAt time.Time
	first := true
	for k, ent := range c.entries {
		if first || ent.storedAt.Before(oldestAt) {
			oldestKey = k
			oldestAt = ent.storedAt
			first = false
		}
	}
	delete(c.entries, oldestKey)
}

// Invalidate removes every entry belonging to the member. It is called
// synchronously after any mutation touching that member's notifications,
// before control returns to the caller, so the next list is never served
// pre-write data.
func (c *InboxCache) Invalidate(userID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k := range c.entries {
		if k.UserID == userID {
			delete(c.entries, k)
		}
	}
}

// Len reports the number of live entries, stale ones included.
func (c *InboxCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
