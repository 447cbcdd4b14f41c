// Package clock abstracts time for the caching subsystem.
//
// Stores read the current time once per operation, outside any
// comparison loop, so expiry decisions are consistent within a single
// critical section. Injecting a Clock lets tests exercise expiry
// without sleeping.
package clock

import (
	"sync"
	"time"
)

// Clock supplies the current time. Implementations must be safe for
// concurrent use and must never go backwards within a process.
type Clock interface {
	Now() time.Time
}

// System reads the real clock. time.Now carries a monotonic reading,
// which is what the stores compare against.
type System struct{}

// NewSystem returns the process clock.
func NewSystem() System { return System{} }

func (System) Now() time.Time { return time.Now() }

// Fake is a manually advanced clock for tests.
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

// NewFake returns a Fake pinned to start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Advance moves the clock forward by d. Negative d is ignored so the
// never-decreases contract holds.
func (f *Fake) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}
