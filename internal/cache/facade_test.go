package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_IndependentInstances(t *testing.T) {
	a := New(Config{LRUCapacity: 2, LRUTTL: time.Hour, HistoryMaxEntries: 3})
	b := New(Config{LRUCapacity: 2, LRUTTL: time.Hour, HistoryMaxEntries: 3})

	a.TTL.Set("k", []byte("v"), 0)
	a.LRU.Set("k", []byte("v"))
	a.History.Add("g", HistoryEntry{Timestamp: 1, Content: "x"})

	// No hidden global registry: b sees none of a's state.
	_, ok := b.TTL.Get("k")
	assert.False(t, ok)
	_, ok = b.LRU.Get("k")
	assert.False(t, ok)
	assert.Empty(t, b.History.Get("g"))
}

func TestFacade_Clear(t *testing.T) {
	f := New(Config{LRUCapacity: 4, LRUTTL: time.Hour, HistoryMaxEntries: 4})

	f.TTL.Set("k", []byte("v"), 0)
	f.LRU.Set("k", []byte("v"))
	f.History.Add("g", HistoryEntry{Timestamp: 1, Content: "x"})

	f.Clear()

	assert.Equal(t, 0, f.TTL.Size())
	assert.Equal(t, 0, f.LRU.Len())
	assert.Equal(t, 0, f.History.Groups())
}

func TestFacade_SharedClock(t *testing.T) {
	clk := newFakeClock()
	f := New(Config{
		DefaultTTL:  50 * time.Millisecond,
		LRUCapacity: 4,
		LRUTTL:      50 * time.Millisecond,
		Clock:       clk,
	})

	f.TTL.Set("k", []byte("v"), 0)
	f.LRU.Set("k", []byte("v"))

	clk.Advance(time.Second)

	_, ok := f.TTL.Get("k")
	require.False(t, ok)
	_, ok = f.LRU.Get("k")
	require.False(t, ok)
}
