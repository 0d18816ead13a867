package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheAddGetNoExpiration(t *testing.T) {
	c := New[string, int]()
	c.Add("a", 1, NoExpiration{})

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestCacheAbsoluteExpirationStrictInequality(t *testing.T) {
	c := New[string, int]()
	base := time.Unix(1_700_000_000, 0)
	c.now = func() time.Time { return base }
	c.Add("a", 1, AbsoluteExpiration(10*time.Second))

	c.now = func() time.Time { return base.Add(10 * time.Second) }
	_, ok := c.Get("a")
	assert.False(t, ok, "entry must be invalid at exactly created+ttl")

	c2 := New[string, int]()
	c2.now = func() time.Time { return base }
	c2.Add("a", 1, AbsoluteExpiration(10*time.Second))
	c2.now = func() time.Time { return base.Add(9999 * time.Millisecond) }
	_, ok = c2.Get("a")
	assert.True(t, ok)
}

func TestCacheZeroDurationExpiresImmediately(t *testing.T) {
	c := New[string, int]()
	base := time.Unix(1_700_000_000, 0)
	c.now = func() time.Time { return base }
	c.Add("a", 1, AbsoluteExpiration(0))

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestCacheGetBumpsLastUsed(t *testing.T) {
	c := New[string, int]()
	base := time.Unix(1_700_000_000, 0)
	c.now = func() time.Time { return base }
	c.Add("a", 1, NoExpiration{})

	c.now = func() time.Time { return base.Add(30 * time.Minute) }
	_, ok := c.Get("a")
	require.True(t, ok)

	c.now = func() time.Time { return base.Add(30*time.Minute + dropUnusedAfter - time.Second) }
	c.DropUnusedFor(dropUnusedAfter)
	_, ok = c.Get("a")
	assert.True(t, ok, "get at 30m should have refreshed last-used, keeping the entry alive past the original hour mark")
}

func TestCacheDropUnusedForRetainsRecentlyUsed(t *testing.T) {
	c := New[string, int]()
	base := time.Unix(1_700_000_000, 0)
	c.now = func() time.Time { return base }
	c.Add("fresh", 1, NoExpiration{})
	c.Add("stale", 2, NoExpiration{})

	c.now = func() time.Time { return base.Add(30 * time.Minute) }
	c.Get("fresh")

	c.now = func() time.Time { return base.Add(90 * time.Minute) }
	c.DropUnusedFor(time.Hour)

	_, freshOK := c.Get("fresh")
	_, staleOK := c.Get("stale")
	assert.True(t, freshOK)
	assert.False(t, staleOK)
}

func TestCacheAddSweepsExpiredFirst(t *testing.T) {
	c := New[string, int]()
	base := time.Unix(1_700_000_000, 0)
	c.now = func() time.Time { return base }
	c.Add("old", 1, AbsoluteExpiration(time.Second))

	c.now = func() time.Time { return base.Add(time.Minute) }
	c.Add("new", 2, NoExpiration{})

	assert.Equal(t, 1, c.Len(), "insert should have dropped the expired entry")
}

func TestCacheDropExpired(t *testing.T) {
	c := New[string, int]()
	base := time.Unix(1_700_000_000, 0)
	c.now = func() time.Time { return base }
	c.Add("expiring", 1, AbsoluteExpiration(time.Second))
	c.Add("forever", 2, NoExpiration{})

	c.now = func() time.Time { return base.Add(2 * time.Second) }
	c.DropExpired()

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("forever")
	assert.True(t, ok)
}
