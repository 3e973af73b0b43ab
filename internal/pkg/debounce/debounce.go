// Package debounce coalesces bursts of items into a single batch that is
// handed to a callback once no new item has arrived for a quiet window.
package debounce

import (
	"sync"
	"time"
)

// Batcher collects items and fires them as one batch after the window
// elapses with no further Add. Every Add restarts the window.
type Batcher[T any] struct {
	mu      sync.Mutex
	window  time.Duration
	fire    func(batch []T)
	pending []T
	timer   *time.Timer
	gen     uint64
	stopped bool
}

// New returns a Batcher that calls fire with each coalesced batch. fire runs
// on its own goroutine and never concurrently with itself for the same
// generation.
func New[T any](window time.Duration, fire func(batch []T)) *Batcher[T] {
	return &Batcher[T]{
		window: window,
		fire:   fire,
	}
}

// Add queues an item and restarts the quiet window. Items added after Stop
// are dropped.
func (b *Batcher[T]) Add(item T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopped {
		return
	}

	b.pending = append(b.pending, item)
	b.scheduleLocked()
}

// Requeue puts items back in front of anything pending and restarts the
// window. Items requeued after Stop are dropped.
func (b *Batcher[T]) Requeue(items []T) {
	if len(items) == 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopped {
		return
	}

	merged := make([]T, 0, len(items)+len(b.pending))
	merged = append(merged, items...)
	merged = append(merged, b.pending...)
	b.pending = merged
	b.scheduleLocked()
}

func (b *Batcher[T]) scheduleLocked() {
	b.gen++
	if b.timer != nil {
		b.timer.Stop()
	}

	gen := b.gen
	b.timer = time.AfterFunc(b.window, func() {
		b.expire(gen)
	})
}

func (b *Batcher[T]) expire(gen uint64) {
	b.mu.Lock()
	if gen != b.gen || len(b.pending) == 0 {
		// a later Add rescheduled us
		b.mu.Unlock()
		return
	}
	batch := b.pending
	b.pending = nil
	b.timer = nil
	b.mu.Unlock()

	b.fire(batch)
}

// Flush fires any pending batch immediately on the caller's goroutine and
// reports whether there was one.
func (b *Batcher[T]) Flush() bool {
	b.mu.Lock()
	b.gen++
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	batch := b.pending
	b.pending = nil
	b.mu.Unlock()

	if len(batch) == 0 {
		return false
	}
	b.fire(batch)
	return true
}

// Stop cancels the timer and returns whatever was still queued. The Batcher
// accepts no items afterwards.
func (b *Batcher[T]) Stop() []T {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopped = true
	b.gen++
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	batch := b.pending
	b.pending = nil
	return batch
}
