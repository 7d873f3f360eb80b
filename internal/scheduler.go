package internal

import (
	"log/slog"
	"sync"
)

// Runnable is one unit of scheduled work, usually a lifecycle transition of
// a component.
type Runnable interface {
	Run()
}

// Aborter is implemented by runnables that need to react when Run panics.
type Aborter interface {
	Abort(v any)
}

// Describer names a runnable in logs and panic reports.
type Describer interface {
	Describe() (op, component string)
}

type RunnableKind int

const (
	RunnableMain RunnableKind = iota
	RunnableCreate
	RunnableUpdate
	RunnableRendered
	RunnableDestroy
)

// Scheduler serializes runnables and drains them on a single goroutine at a
// time.
//
// Runnables are taken in this order: destroy, create, update, rendered,
// main. Every queue is FIFO except rendered which is a stack: a parent pushes
// its rendered runnable before its children are created, so children commit
// before their parent.
type Scheduler struct {
	mu   sync.Mutex
	host Host

	main     []Runnable
	destroy  []Runnable
	create   []Runnable
	update   []Runnable
	rendered []Runnable

	// nesting depth of Batch, draining is held back while > 0
	batchDepth int

	// true while some goroutine is draining the queues
	running bool

	// incremented each time a runnable completes
	clock int

	propagate bool
	handlers  []func(*PanicError)
	logger    *slog.Logger
}

func NewScheduler(host Host) *Scheduler {
	if host == nil {
		host = SyncHost{}
	}

	return &Scheduler{
		host:   host,
		logger: slog.New(slog.DiscardHandler),
	}
}

// Push queues a runnable on the main queue.
func (s *Scheduler) Push(r Runnable) {
	s.PushComponent(RunnableMain, r)
}

// PushComponent queues a runnable of the given kind and asks the host to
// start draining.
func (s *Scheduler) PushComponent(kind RunnableKind, r Runnable) {
	s.mu.Lock()
	switch kind {
	case RunnableDestroy:
		s.destroy = append(s.destroy, r)
	case RunnableCreate:
		s.create = append(s.create, r)
	case RunnableUpdate:
		s.update = append(s.update, r)
	case RunnableRendered:
		s.rendered = append(s.rendered, r)
	default:
		s.main = append(s.main, r)
	}
	shouldStart := !s.running && s.batchDepth == 0
	s.mu.Unlock()

	if shouldStart {
		s.host.ScheduleNextTick(s.Start)
	}
}

// Start drains the queues until they are empty. It returns immediately if
// another goroutine is draining or a batch is open.
func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.running || s.batchDepth > 0 {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	drained := false
	defer func() {
		// only reached with drained == false when a panic propagates
		if !drained {
			s.mu.Lock()
			s.running = false
			s.mu.Unlock()
		}
	}()

	for {
		r := s.next()
		if r == nil {
			drained = true
			return
		}
		s.run(r)
	}
}

// Batch runs fn while holding back draining, so that every runnable pushed
// by fn is processed together once the outermost batch returns.
func (s *Scheduler) Batch(fn func()) {
	s.mu.Lock()
	s.batchDepth++
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.batchDepth--
		done := s.batchDepth == 0
		s.mu.Unlock()

		if done {
			s.host.ScheduleNextTick(s.Start)
		}
	}()

	fn()
}

// Pending returns the number of queued runnables.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.main) + len(s.destroy) + len(s.create) + len(s.update) + len(s.rendered)
}

// Time returns the number of runnables completed so far.
func (s *Scheduler) Time() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock
}

// SetPropagate selects between isolating panics (false, the default) and
// re-raising them on the draining goroutine.
func (s *Scheduler) SetPropagate(propagate bool) {
	s.mu.Lock()
	s.propagate = propagate
	s.mu.Unlock()
}

func (s *Scheduler) SetLogger(logger *slog.Logger) {
	s.mu.Lock()
	s.logger = logger
	s.mu.Unlock()
}

func (s *Scheduler) SetHost(host Host) {
	s.mu.Lock()
	s.host = host
	s.mu.Unlock()
}

// OnError registers a handler called with every recovered panic.
func (s *Scheduler) OnError(fn func(*PanicError)) {
	s.mu.Lock()
	s.handlers = append(s.handlers, fn)
	s.mu.Unlock()
}

// next pops the next runnable. When nothing is left it clears running under
// the same lock pushers use, so a concurrent push either gets picked up here
// or starts its own drain.
func (s *Scheduler) next() Runnable {
	s.mu.Lock()
	defer s.mu.Unlock()

	var r Runnable
	switch {
	case len(s.destroy) > 0:
		r, s.destroy = s.destroy[0], s.destroy[1:]
	case len(s.create) > 0:
		r, s.create = s.create[0], s.create[1:]
	case len(s.update) > 0:
		r, s.update = s.update[0], s.update[1:]
	case len(s.rendered) > 0:
		last := len(s.rendered) - 1
		r, s.rendered = s.rendered[last], s.rendered[:last]
	case len(s.main) > 0:
		r, s.main = s.main[0], s.main[1:]
	default:
		s.running = false
	}
	return r
}

func (s *Scheduler) run(r Runnable) {
	op, component := describe(r)

	s.mu.Lock()
	logger := s.logger
	s.mu.Unlock()

	logger.Debug("run", "op", op, "component", component)

	defer func() {
		v := recover()
		if v == nil {
			return
		}

		perr := &PanicError{
			Op:         op,
			Component:  component,
			Value:      v,
			StackTrace: captureStack(),
		}

		if a, ok := r.(Aborter); ok {
			a.Abort(v)
		}

		s.mu.Lock()
		s.clock++
		propagate := s.propagate
		handlers := append([]func(*PanicError){}, s.handlers...)
		s.mu.Unlock()

		logger.Error("recovered panic", "op", op, "component", component, "panic", v, "stack", perr.StackTrace)
		for _, h := range handlers {
			h(perr)
		}

		if propagate {
			panic(perr)
		}
	}()

	r.Run()

	s.mu.Lock()
	s.clock++
	s.mu.Unlock()
}

func describe(r Runnable) (string, string) {
	if d, ok := r.(Describer); ok {
		return d.Describe()
	}
	return "runnable", ""
}

// RunnableFunc adapts a function to the Runnable interface.
type RunnableFunc func()

func (f RunnableFunc) Run() { f() }
