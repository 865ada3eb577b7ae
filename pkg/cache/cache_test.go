package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestLRUCache(t *testing.T) {
	testCases := []struct {
		name     string
		capacity int
		actions  func(t *testing.T, c *LRUCache, clock *fakeClock)
	}{
		{
			name:     "set and get within ttl",
			capacity: 2,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				clock.advance(59 * time.Second)

				v, ok := c.Get("a")
				require.True(t, ok)
				assert.Equal(t, []byte("1"), v)
			},
		},
		{
			name:     "expires after ttl",
			capacity: 2,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				clock.advance(time.Minute)

				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Size())
			},
		},
		{
			name:     "evicts least recently used",
			capacity: 2,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				_, _ = c.Get("a")
				c.Set("c", []byte("3"))

				_, ok := c.Get("b")
				assert.False(t, ok, "b should be evicted")
				_, ok = c.Get("a")
				assert.True(t, ok)
				_, ok = c.Get("c")
				assert.True(t, ok)
			},
		},
		{
			name:     "overwrite extends ttl",
			capacity: 2,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				clock.advance(40 * time.Second)
				c.Set("a", []byte("2"))
				clock.advance(40 * time.Second)

				v, ok := c.Get("a")
				require.True(t, ok)
				assert.Equal(t, []byte("2"), v)
				assert.Equal(t, 1, c.Size())
			},
		},
		{
			name:     "read does not extend ttl",
			capacity: 2,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				clock.advance(40 * time.Second)
				_, _ = c.Get("a")
				clock.advance(40 * time.Second)

				_, ok := c.Get("a")
				assert.False(t, ok)
			},
		},
		{
			name:     "delete",
			capacity: 2,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				c.Delete("a")
				c.Delete("missing")

				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Equal(t, 1, c.Size())
			},
		},
		{
			name:     "purge drops only expired entries",
			capacity: 3,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("old", []byte("1"))
				clock.advance(30 * time.Second)
				c.Set("new", []byte("2"))
				clock.advance(30 * time.Second)

				c.purgeExpired()

				assert.Equal(t, 1, c.Size())
				_, ok := c.Get("new")
				assert.True(t, ok)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
			c := NewLRUCache(tc.capacity, time.Minute, WithName("test"), WithClock(clock.now))
			tc.actions(t, c, clock)
		})
	}
}

func TestLRUCache_Janitor(t *testing.T) {
	c := NewLRUCache(2, 10*time.Millisecond, WithJanitorInterval(5*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, c.Start(ctx))
	c.Set("a", []byte("1"))

	assert.Eventually(t, func() bool { return c.Size() == 0 }, time.Second, 5*time.Millisecond)
}
