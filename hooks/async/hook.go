// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{GrownEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	cache, _ := tricache.New(tricache.Options{Hooks: hooks})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/tricache"
)

// Hooks forwards events to inner on worker goroutines. Events are dropped
// when the queue is full.
type Hooks struct {
	inner tricache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ tricache.Hooks = (*Hooks)(nil)

func New(inner tricache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Events must not be
// delivered after Close.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) InvalidSize(n, m int)   { h.try(func() { h.inner.InvalidSize(n, m) }) }
func (h *Hooks) ValueTooLarge(v, m int) { h.try(func() { h.inner.ValueTooLarge(v, m) }) }
func (h *Hooks) Grown(from, to int)     { h.try(func() { h.inner.Grown(from, to) }) }
func (h *Hooks) IteratorOverflow(i int) { h.try(func() { h.inner.IteratorOverflow(i) }) }
func (h *Hooks) InvalidParameters(length, offset int) {
	h.try(func() { h.inner.InvalidParameters(length, offset) })
}
func (h *Hooks) SnapshotRejected(key, reason string) {
	h.try(func() { h.inner.SnapshotRejected(key, reason) })
}
