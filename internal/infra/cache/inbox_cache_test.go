package cache

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestCache(ttl time.Duration, maxEntries int) (*InboxCache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	return NewInboxCache(ttl, maxEntries, clock.Now), clock
}

func TestInboxCache_GetPut(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(2*time.Minute, 100)
	key := Key{UserID: uuid.New(), Limit: 20}

	_, ok := c.Get(key)
	assert.False(t, ok)

	c.Put(key, "page-1")

	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, "page-1", got)
}

func TestInboxCache_KeyDimensions(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(2*time.Minute, 100)
	userID := uuid.New()

	c.Put(Key{UserID: userID, Limit: 20, UnreadOnly: false}, "all")
	c.Put(Key{UserID: userID, Limit: 20, UnreadOnly: true}, "unread")
	c.Put(Key{UserID: userID, Limit: 40, UnreadOnly: false}, "wide")

	got, ok := c.Get(Key{UserID: userID, Limit: 20, UnreadOnly: true})
	require.True(t, ok)
	assert.Equal(t, "unread", got)

	got, ok = c.Get(Key{UserID: userID, Limit: 40, UnreadOnly: false})
	require.True(t, ok)
	assert.Equal(t, "wide", got)
}

func TestInboxCache_TTLExpiry(t *testing.T) {
	t.Parallel()

	c, clock := newTestCache(2*time.Minute, 100)
	key := Key{UserID: uuid.New(), Limit: 20}

	c.Put(key, "page")

	clock.Advance(2*time.Minute - time.Second)
	_, ok := c.Get(key)
	assert.True(t, ok, "entry just under the TTL should still be served")

	clock.Advance(time.Second)
	_, ok = c.Get(key)
	assert.False(t, ok, "entry at the TTL boundary is stale")
	assert.Equal(t, 0, c.Len(), "stale entry is deleted on access")
}

func TestInboxCache_EvictsOldestWhenFull(t *testing.T) {
	t.Parallel()

	c, clock := newTestCache(10*time.Minute, 3)

	oldest := Key{UserID: uuid.New(), Limit: 20}
	c.Put(oldest, "a")
	clock.Advance(time.Second)
	c.Put(Key{UserID: uuid.New(), Limit: 20}, "b")
	clock.Advance(time.Second)
	c.Put(Key{UserID: uuid.New(), Limit: 20}, "c")
	clock.Advance(time.Second)
	c.Put(Key{UserID: uuid.New(), Limit: 20}, "d")

	assert.Equal(t, 3, c.Len())
	_, ok := c.Get(oldest)
	assert.False(t, ok, "oldest entry is the one evicted")
}

func TestInboxCache_PutSameKeyDoesNotEvict(t *testing.T) {
	t.Parallel()

	c, clock := newTestCache(10*time.Minute, 2)

	key := Key{UserID: uuid.New(), Limit: 20}
	other := Key{UserID: uuid.New(), Limit: 20}
	c.Put(key, "v1")
	clock.Advance(time.Second)
	c.Put(other, "other")
	clock.Advance(time.Second)
	c.Put(key, "v2")

	assert.Equal(t, 2, c.Len())

	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, "v2", got)

	_, ok = c.Get(other)
	assert.True(t, ok)
}

func TestInboxCache_InvalidateRemovesAllUserEntries(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(10*time.Minute, 100)
	target := uuid.New()
	bystander := uuid.New()

	c.Put(Key{UserID: target, Limit: 20, UnreadOnly: false}, "a")
	c.Put(Key{UserID: target, Limit: 20, UnreadOnly: true}, "b")
	c.Put(Key{UserID: target, Limit: 40, UnreadOnly: false}, "c")
	c.Put(Key{UserID: bystander, Limit: 20, UnreadOnly: false}, "d")

	c.Invalidate(target)

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get(Key{UserID: bystander, Limit: 20, UnreadOnly: false})
	assert.True(t, ok, "other members' entries survive invalidation")
}
