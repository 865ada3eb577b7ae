package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "store_service",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Cache lookups by result.",
	}, []string{"cache", "result"})

	cacheEvictions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "store_service",
		Subsystem: "cache",
		Name:      "evictions_total",
		Help:      "Entries removed by the cache itself, by reason.",
	}, []string{"cache", "reason"})
)

type item struct {
	key       string
	value     []byte
	expiresAt time.Time
}

// LRUCache keeps at most capacity entries, each valid for ttl after its last
// write. Reads refresh recency but not expiry.
type LRUCache struct {
	mu       sync.Mutex
	order    *list.List
	items    map[string]*list.Element
	capacity int
	ttl      time.Duration

	name     string
	interval time.Duration
	now      func() time.Time
}

type Option func(*LRUCache)

// WithName sets the "cache" label of the cache metrics.
func WithName(name string) Option {
	return func(c *LRUCache) { c.name = name }
}

func WithJanitorInterval(d time.Duration) Option {
	return func(c *LRUCache) { c.interval = d }
}

func WithClock(now func() time.Time) Option {
	return func(c *LRUCache) { c.now = now }
}

func NewLRUCache(capacity int, ttl time.Duration, opts ...Option) *LRUCache {
	c := &LRUCache{
		order:    list.New(),
		items:    make(map[string]*list.Element, capacity),
		capacity: capacity,
		ttl:      ttl,
		name:     "default",
		interval: 2 * time.Minute,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		cacheLookups.WithLabelValues(c.name, "miss").Inc()
		return nil, false
	}

	it := el.Value.(*item)
	if c.expired(it) {
		c.remove(el, "expired")
		cacheLookups.WithLabelValues(c.name, "miss").Inc()
		return nil, false
	}

	c.order.MoveToFront(el)
	cacheLookups.WithLabelValues(c.name, "hit").Inc()
	return it.value, true
}

func (c *LRUCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		it := el.Value.(*item)
		it.value = value
		it.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&item{key: key, value: value, expiresAt: expiresAt})
	for c.order.Len() > c.capacity {
		c.remove(c.order.Back(), "capacity")
	}
}

func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.remove(el, "")
	}
}

func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Start launches the janitor. It stops when ctx is done.
func (c *LRUCache) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.purgeExpired()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (c *LRUCache) purgeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if c.expired(el.Value.(*item)) {
			c.remove(el, "expired")
		}
		el = prev
	}
}

func (c *LRUCache) expired(it *item) bool {
	return !c.now().Before(it.expiresAt)
}

// remove drops el. An empty reason means an explicit delete, which is not
// counted as an eviction.
func (c *LRUCache) remove(el *list.Element, reason string) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*item).key)
	if reason != "" {
		cacheEvictions.WithLabelValues(c.name, reason).Inc()
	}
}
