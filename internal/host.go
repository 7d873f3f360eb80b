package internal

import (
	"context"
	"sync"
)

// Host is the only dependency on the surrounding event loop: it decides when
// the scheduler drains.
type Host interface {
	ScheduleNextTick(fn func())
}

// SyncHost drains immediately on the goroutine that pushed work.
type SyncHost struct{}

func (SyncHost) ScheduleNextTick(fn func()) { fn() }

// LoopHost runs every scheduled tick on the goroutine calling Run.
type LoopHost struct {
	mu     sync.Mutex
	tasks  []func()
	closed bool

	wake chan struct{}
}

func NewLoopHost() *LoopHost {
	return &LoopHost{
		wake: make(chan struct{}, 1),
	}
}

func (h *LoopHost) ScheduleNextTick(fn func()) {
	h.Post(fn)
}

// Post queues fn on the loop. It returns false once the loop has stopped.
// Post never blocks, so it is safe to call from the loop itself.
func (h *LoopHost) Post(fn func()) bool {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return false
	}
	h.tasks = append(h.tasks, fn)
	h.mu.Unlock()

	select {
	case h.wake <- struct{}{}:
	default:
	}
	return true
}

// Run processes posted functions until ctx is done.
func (h *LoopHost) Run(ctx context.Context) error {
	for {
		h.mu.Lock()
		tasks := h.tasks
		h.tasks = nil
		h.mu.Unlock()

		for _, fn := range tasks {
			fn()
		}
		if len(tasks) > 0 {
			continue
		}

		select {
		case <-ctx.Done():
			h.mu.Lock()
			h.closed = true
			h.tasks = nil
			h.mu.Unlock()
			return ctx.Err()
		case <-h.wake:
		}
	}
}
