package cache

import (
	"context"
	"sync"
	"time"
)

// Sweeper drives TTLStore.CleanupExpired on a fixed interval.
//
// The store itself never starts goroutines; scheduled cleanup is the
// owning process's choice, and Sweeper is the packaged form of that
// choice. Lazy expiration keeps the read-path contract with or without
// one; the sweep exists so keys that are written once and never read
// again do not pin memory forever.
//
// Sweeper owns its goroutine. Call Close to stop it.
type Sweeper struct {
	store    *TTLStore
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewSweeper starts a sweep loop over store. interval <= 0 is replaced
// with one minute.
func NewSweeper(store *TTLStore, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	ctx, cancel := context.WithCancel(context.Background())

	s := &Sweeper{
		store:    store,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
	s.wg.Add(1)
	go s.loop()
	return s
}

// Close stops the sweep loop and waits for it to exit. Safe to call
// multiple times.
func (s *Sweeper) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
	return nil
}

func (s *Sweeper) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.store.CleanupExpired()
		}
	}
}
