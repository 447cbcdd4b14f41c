package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/openclaw/openclaw-core/internal/clock"
)

// DefaultTimedCacheCapacity is substituted when TimedCacheConfig names
// a non-positive capacity. The upstream cache behaved the same way
// instead of failing construction; callers who care should validate
// before constructing (the gateway logs a warning).
const DefaultTimedCacheCapacity = 100

// TimedCacheConfig controls a TimedCache. Capacity and TTL are fixed
// for the life of the cache.
type TimedCacheConfig struct {
	// Capacity bounds the number of entries; <= 0 is replaced with
	// DefaultTimedCacheCapacity.
	Capacity int
	// TTL applies uniformly to every entry, measured from its most
	// recent Set. <= 0 means entries never expire.
	TTL time.Duration
	// Clock nil means the system clock.
	Clock clock.Clock
}

// TimedCache is a capacity-bounded LRU map whose entries additionally
// expire a fixed TTL after insertion.
//
// The mechanics are a map for O(1) lookup plus a doubly-linked list
// for recency order (front = most recently used). Expiry here is
// purely lazy: only Get removes a dead entry, so Len may overcount
// entries that expired but were never read again.
//
// A plain mutex guards both structures; every operation, reads
// included, mutates recency order or the map.
type TimedCache struct {
	mu sync.Mutex

	clk      clock.Clock
	capacity int
	ttl      time.Duration
	items    map[string]*list.Element
	order    *list.List

	metrics *Metrics
}

// timedEntry keeps the key alongside the value because eviction starts
// from list nodes.
type timedEntry struct {
	key        string
	value      []byte
	insertedAt time.Time
}

// NewTimedCache constructs an empty cache. It never returns nil.
func NewTimedCache(cfg TimedCacheConfig) *TimedCache {
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = DefaultTimedCacheCapacity
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &TimedCache{
		clk:      clk,
		capacity: capacity,
		ttl:      cfg.TTL,
		items:    make(map[string]*list.Element),
		order:    list.New(),
		metrics:  DefaultMetrics,
	}
}

// Capacity returns the effective bound, after any substitution.
func (c *TimedCache) Capacity() int { return c.capacity }

// Get returns the value for key if present and younger than the TTL,
// marking the key most recently used. An expired hit removes the entry
// and reports a miss without touching recency order; a plain miss
// mutates nothing.
func (c *TimedCache) Get(key string) ([]byte, bool) {
	now := c.clk.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.metrics.Misses.WithLabelValues(storeLRU).Inc()
		return nil, false
	}
	e := el.Value.(*timedEntry)
	if c.ttl > 0 && now.Sub(e.insertedAt) >= c.ttl {
		delete(c.items, key)
		c.order.Remove(el)
		c.metrics.Evictions.WithLabelValues(storeLRU).Inc()
		c.metrics.Misses.WithLabelValues(storeLRU).Inc()
		return nil, false
	}
	c.order.MoveToFront(el)
	c.metrics.Hits.WithLabelValues(storeLRU).Inc()
	return cloneBytes(e.value), true
}

// Set inserts or overwrites key with a fresh insertion time and marks
// it most recently used. Inserting a new key into a full cache first
// evicts the single least-recently-used entry, regardless of how close
// any entry is to expiring.
func (c *TimedCache) Set(key string, value []byte) {
	now := c.clk.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		e := el.Value.(*timedEntry)
		e.value = cloneBytes(value)
		e.insertedAt = now
		c.order.MoveToFront(el)
		return
	}

	if len(c.items) >= c.capacity {
		if back := c.order.Back(); back != nil {
			cold := back.Value.(*timedEntry)
			delete(c.items, cold.key)
			c.order.Remove(back)
			c.metrics.Evictions.WithLabelValues(storeLRU).Inc()
		}
	}

	el := c.order.PushFront(&timedEntry{
		key:        key,
		value:      cloneBytes(value),
		insertedAt: now,
	})
	c.items[key] = el
}

// Len returns the number of stored entries, including any that have
// expired but have not been read since.
func (c *TimedCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear removes all entries.
func (c *TimedCache) Clear() {
	c.mu.Lock()
	c.items = make(map[string]*list.Element)
	c.order.Init()
	c.mu.Unlock()
}
