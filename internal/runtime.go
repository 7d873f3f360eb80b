package internal

import (
	"log/slog"
	"os"
	"sync"

	"github.com/AnatoleLucet/weave/config"
)

// Runtime holds the per-goroutine engine state: the scheduler components
// mounted from this goroutine will use. Renders do not need one, their hook
// register only exists while they run.
type Runtime struct {
	mu sync.Mutex

	scheduler *Scheduler
	logger    *slog.Logger
}

func NewRuntime() *Runtime {
	logger := slog.New(slog.DiscardHandler)

	s := NewScheduler(SyncHost{})
	s.SetLogger(logger)

	return &Runtime{
		scheduler: s,
		logger:    logger,
	}
}

func (r *Runtime) Scheduler() *Scheduler { return r.scheduler }

func (r *Runtime) Logger() *slog.Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.logger
}

func (r *Runtime) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r.mu.Lock()
	r.logger = logger
	r.mu.Unlock()

	r.scheduler.SetLogger(logger)
}

// SetHost changes when the scheduler drains.
func (r *Runtime) SetHost(host Host) {
	if host == nil {
		host = SyncHost{}
	}
	r.scheduler.SetHost(host)
}

// Configure applies the panic policy and builds a stderr logger from cfg.
func (r *Runtime) Configure(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	r.scheduler.SetPropagate(cfg.Scheduler.Propagate())
	r.SetLogger(cfg.Log.NewLogger(os.Stderr))
	return nil
}

// OnError registers a handler for panics recovered by the scheduler.
func (r *Runtime) OnError(fn func(*PanicError)) {
	r.scheduler.OnError(fn)
}

// Batch holds back draining until fn returns.
func (r *Runtime) Batch(fn func()) {
	r.scheduler.Batch(fn)
}
