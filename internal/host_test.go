package internal

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runUntilIdle runs host until s has nothing left to do.
func runUntilIdle(t *testing.T, host *LoopHost, s *Scheduler) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- host.Run(ctx) }()

	for s.Pending() > 0 {
		select {
		case <-ctx.Done():
			t.Fatal("scheduler did not drain")
		case <-time.After(time.Millisecond):
		}
	}

	// let the last runnable finish
	idle := make(chan struct{})
	host.Post(func() { close(idle) })
	<-idle

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestLoopHost(t *testing.T) {
	t.Run("runs posted functions in order", func(t *testing.T) {
		host := NewLoopHost()
		log := []int{}

		ctx, cancel := context.WithCancel(context.Background())
		for i := range 3 {
			host.Post(func() { log = append(log, i) })
		}
		host.Post(func() {
			// posting from the loop itself does not block
			host.Post(cancel)
		})

		err := host.Run(ctx)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Equal(t, []int{0, 1, 2}, log)

		assert.False(t, host.Post(func() {}))
	})

	t.Run("drains a scheduler on the loop goroutine", func(t *testing.T) {
		host := NewLoopHost()
		s := NewScheduler(host)

		var mu sync.Mutex
		ran := false
		s.Push(RunnableFunc(func() {
			mu.Lock()
			ran = true
			mu.Unlock()
		}))

		mu.Lock()
		assert.False(t, ran)
		mu.Unlock()

		runUntilIdle(t, host, s)
		assert.True(t, ran)
	})
}

func TestSyncHost(t *testing.T) {
	ran := false
	SyncHost{}.ScheduleNextTick(func() { ran = true })
	assert.True(t, ran)
}
