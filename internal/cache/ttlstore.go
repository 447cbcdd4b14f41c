package cache

import (
	"sync"
	"time"

	"github.com/openclaw/openclaw-core/internal/clock"
)

// TTLStoreConfig controls a TTLStore.
//
//   - DefaultTTL <= 0 means entries written without an explicit TTL
//     never expire (can be changed later via SetDefaultTTL)
//   - Clock nil means the system clock
type TTLStoreConfig struct {
	DefaultTTL time.Duration
	Clock      clock.Clock
}

// TTLStore is an unbounded, concurrency-safe key–value map where each
// entry expires individually. Expiry is enforced lazily: a read that
// finds an expired entry removes it, and Keys/CleanupExpired perform a
// full sweep. Nothing runs in the background; pair the store with a
// Sweeper if scheduled cleanup is wanted.
type TTLStore struct {
	mu sync.RWMutex

	clk        clock.Clock
	entries    map[string]*entry
	defaultTTL time.Duration

	metrics *Metrics
}

// NewTTLStore constructs an empty store. It never returns nil.
func NewTTLStore(cfg TTLStoreConfig) *TTLStore {
	clk := cfg.Clock
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &TTLStore{
		clk:        clk,
		entries:    make(map[string]*entry),
		defaultTTL: cfg.DefaultTTL,
		metrics:    DefaultMetrics,
	}
}

// SetDefaultTTL replaces the fallback TTL applied to future Set calls
// that pass ttl <= 0. Existing entries keep their expiry. ttl <= 0
// clears the fallback so such entries never expire.
func (s *TTLStore) SetDefaultTTL(ttl time.Duration) {
	s.mu.Lock()
	s.defaultTTL = ttl
	s.mu.Unlock()
}

// Set inserts or overwrites a key. Overwriting replaces the entry
// wholesale; the old expiry is discarded.
//
// Effective expiry: now+ttl when ttl > 0, else now+DefaultTTL when a
// fallback is set, else none.
func (s *TTLStore) Set(key string, value []byte, ttl time.Duration) {
	now := s.clk.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	e := &entry{
		value:     cloneBytes(value),
		createdAt: now,
	}
	if ttl > 0 {
		e.hasExpiry = true
		e.expiresAt = now.Add(ttl)
	}
	s.entries[key] = e
}

// Get returns the value for key if present and unexpired.
//
// Reading an expired entry removes it before reporting a miss, so
// expired data is never returned and never outlives one more read.
//
// The fast path holds the read lock only; the expired path upgrades to
// the write lock and re-checks, because another goroutine may have
// replaced the entry between the two locks.
func (s *TTLStore) Get(key string) ([]byte, bool) {
	now := s.clk.Now()

	s.mu.RLock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.RUnlock()
		s.metrics.Misses.WithLabelValues(storeTTL).Inc()
		return nil, false
	}
	if !e.expired(now) {
		v := cloneBytes(e.value)
		s.mu.RUnlock()
		s.metrics.Hits.WithLabelValues(storeTTL).Inc()
		return v, true
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok = s.entries[key]
	if !ok {
		s.metrics.Misses.WithLabelValues(storeTTL).Inc()
		return nil, false
	}
	if e.expired(now) {
		delete(s.entries, key)
		s.metrics.Evictions.WithLabelValues(storeTTL).Inc()
		s.metrics.Misses.WithLabelValues(storeTTL).Inc()
		return nil, false
	}
	// Replaced with a live entry while we upgraded the lock.
	s.metrics.Hits.WithLabelValues(storeTTL).Inc()
	return cloneBytes(e.value), true
}

// Has reports whether key holds a live value. It shares Get's expiry
// semantics, including the lazy removal side effect.
func (s *TTLStore) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Delete removes key if present and reports whether a removal occurred.
func (s *TTLStore) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.entries[key]
	if ok {
		delete(s.entries, key)
	}
	return ok
}

// Keys sweeps expired entries, then returns the remaining keys.
// Sweep-then-list, never list-then-check: returned keys are live at
// the time of the call.
func (s *TTLStore) Keys() []string {
	now := s.clk.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeExpiredLocked(now)
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys
}

// Clear removes all entries. Safe to call on an empty store.
func (s *TTLStore) Clear() {
	s.mu.Lock()
	s.entries = make(map[string]*entry)
	s.mu.Unlock()
}

// Size returns the number of physically stored entries. Expired
// entries that no access has removed yet are included; only Keys and
// CleanupExpired guarantee a swept count.
func (s *TTLStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// CleanupExpired removes every entry whose expiry has passed and
// returns how many were removed. Intended to be driven on a schedule
// by the owning process (see Sweeper).
func (s *TTLStore) CleanupExpired() int {
	now := s.clk.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.removeExpiredLocked(now)
	s.metrics.Sweeps.Inc()
	return n
}

// removeExpiredLocked is O(n) and intentionally simple; callers hold
// the write lock.
func (s *TTLStore) removeExpiredLocked(now time.Time) int {
	removed := 0
	for k, e := range s.entries {
		if e.expired(now) {
			delete(s.entries, k)
			removed++
		}
	}
	if removed > 0 {
		s.metrics.Evictions.WithLabelValues(storeTTL).Add(float64(removed))
	}
	return removed
}
