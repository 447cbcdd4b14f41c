package cache

import "sync"

// DefaultHistoryMaxEntries is substituted when NewGroupHistory is
// given a non-positive bound, mirroring the capacity substitution on
// TimedCache.
const DefaultHistoryMaxEntries = 100

// HistoryEntry is one timestamped record in a group's log. Timestamp
// is caller-supplied payload (Unix seconds); the store never sorts or
// validates it.
type HistoryEntry struct {
	Timestamp int64  `json:"timestamp"`
	Content   string `json:"content"`
}

// GroupHistory maps group keys to bounded, ordered logs of entries.
// Order is strictly arrival order: append at the tail, truncate at the
// head on overflow (FIFO, not LRU). Entries inserted with out-of-order
// timestamps are stored out of order.
type GroupHistory struct {
	mu sync.RWMutex

	maxPerGroup int
	groups      map[string][]HistoryEntry

	metrics *Metrics
}

// NewGroupHistory constructs an empty store bounding each group's log
// at maxEntriesPerGroup. It never returns nil.
func NewGroupHistory(maxEntriesPerGroup int) *GroupHistory {
	if maxEntriesPerGroup <= 0 {
		maxEntriesPerGroup = DefaultHistoryMaxEntries
	}
	return &GroupHistory{
		maxPerGroup: maxEntriesPerGroup,
		groups:      make(map[string][]HistoryEntry),
		metrics:     DefaultMetrics,
	}
}

// MaxEntriesPerGroup returns the effective bound, after any
// substitution.
func (h *GroupHistory) MaxEntriesPerGroup() int { return h.maxPerGroup }

// Add appends entry to the group's log, creating the log if needed.
// When the append exceeds the bound, exactly the oldest entry is
// dropped; a single Add never removes more than one.
func (h *GroupHistory) Add(group string, e HistoryEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	seq := append(h.groups[group], e)
	if len(seq) > h.maxPerGroup {
		// Shift in place rather than reslicing from 1: the evicted
		// entry is overwritten immediately instead of staying
		// reachable through the backing array.
		copy(seq, seq[1:])
		seq = seq[:len(seq)-1]
		h.metrics.Evictions.WithLabelValues(storeHistory).Inc()
	}
	h.groups[group] = seq
}

// Get returns a copy of the group's log in arrival order. Unknown
// groups yield an empty slice, never an error.
func (h *GroupHistory) Get(group string) []HistoryEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	seq := h.groups[group]
	out := make([]HistoryEntry, len(seq))
	copy(out, seq)
	return out
}

// ClearGroup removes the group's entire log; a no-op if absent.
func (h *GroupHistory) ClearGroup(group string) {
	h.mu.Lock()
	delete(h.groups, group)
	h.mu.Unlock()
}

// clearAll drops every group in one transition.
func (h *GroupHistory) clearAll() {
	h.mu.Lock()
	h.groups = make(map[string][]HistoryEntry)
	h.mu.Unlock()
}

// Groups returns the number of groups currently holding entries.
func (h *GroupHistory) Groups() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.groups)
}
