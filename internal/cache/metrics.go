package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Store label values used on the cache metric vectors.
const (
	storeTTL     = "ttl"
	storeLRU     = "lru"
	storeHistory = "history"
)

// Metrics holds the Prometheus metrics shared by all store instances
// in the process. Instances are distinguished only by store kind; a
// process holding several TTLStores aggregates them under one label.
type Metrics struct {
	Hits      *prometheus.CounterVec
	Misses    *prometheus.CounterVec
	Evictions *prometheus.CounterVec
	Sweeps    prometheus.Counter
}

// DefaultMetrics is registered once on the default registry.
var DefaultMetrics = NewMetrics("openclaw")

// NewMetrics creates a Metrics instance with the given namespace.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		Hits: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Cache lookups that returned a live value",
		}, []string{"store"}),
		Misses: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Cache lookups that found no live value",
		}, []string{"store"}),
		Evictions: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "evictions_total",
			Help:      "Entries removed by expiry, capacity, or history truncation",
		}, []string{"store"}),
		Sweeps: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "sweeps_total",
			Help:      "Explicit expiry sweeps executed",
		}),
	}
}
