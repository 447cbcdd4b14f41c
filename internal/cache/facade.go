package cache

import (
	"time"

	"github.com/openclaw/openclaw-core/internal/clock"
)

// Config carries the construction parameters for one Facade. Zero
// values fall back the same way the individual constructors do.
type Config struct {
	// DefaultTTL is the TTLStore fallback; <= 0 means entries without
	// an explicit TTL never expire.
	DefaultTTL time.Duration
	// LRUCapacity and LRUTTL configure the TimedCache.
	LRUCapacity int
	LRUTTL      time.Duration
	// HistoryMaxEntries bounds each group's log.
	HistoryMaxEntries int
	// Clock is shared by all three stores; nil means the system clock.
	Clock clock.Clock
}

// Facade bundles one independently configured instance of each store.
// It is a plain composition root: the stores share nothing, and a
// process may hold any number of Facades (or bare stores) with no
// hidden registry between them.
type Facade struct {
	TTL     *TTLStore
	LRU     *TimedCache
	History *GroupHistory
}

// New constructs the three stores from cfg. It never returns nil.
func New(cfg Config) *Facade {
	return &Facade{
		TTL: NewTTLStore(TTLStoreConfig{
			DefaultTTL: cfg.DefaultTTL,
			Clock:      cfg.Clock,
		}),
		LRU: NewTimedCache(TimedCacheConfig{
			Capacity: cfg.LRUCapacity,
			TTL:      cfg.LRUTTL,
			Clock:    cfg.Clock,
		}),
		History: NewGroupHistory(cfg.HistoryMaxEntries),
	}
}

// Clear empties all three stores.
func (f *Facade) Clear() {
	f.TTL.Clear()
	f.LRU.Clear()
	f.History.clearAll()
}
