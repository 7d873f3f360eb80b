package internal

import "fmt"

// Msg is a deferred mutation of a hook cell. It reports whether the
// component should render again.
type Msg func() bool

// HookState is the per component list of hook cells, indexed by call order.
type HookState struct {
	// reset before each render, incremented by every hook call
	counter int

	// append only, one cell per hook call site
	hooks []*hookCell

	scope *Scope

	// routes a message either straight to the scheduler or to the queue
	// flushed after the next commit
	processMessage func(msg Msg, postRender bool)

	// run once, when the component is destroyed
	destroyListeners []func()
}

func NewHookState(scope *Scope, processMessage func(Msg, bool)) *HookState {
	return &HookState{
		scope:          scope,
		processMessage: processMessage,
	}
}

// Render resets the hook counter and runs fn with this state installed as
// the current hook state of the calling goroutine.
func (h *HookState) Render(fn func()) {
	h.counter = 0

	tracker, leave := enterTracker()
	defer leave()

	tracker.RunWithHooks(h, fn)
}

// Install makes h the current hook state of the calling goroutine until the
// returned func is called.
func (h *HookState) Install() func() {
	tracker, leave := enterTracker()

	installed := false
	defer func() {
		if !installed {
			leave()
		}
	}()

	restore := tracker.install(h)
	installed = true

	return func() {
		restore()
		leave()
	}
}

// Len returns the number of hook cells allocated so far.
func (h *HookState) Len() int { return len(h.hooks) }

func (h *HookState) Scope() *Scope { return h.scope }

// Destroy runs the destroy listeners, each exactly once.
func (h *HookState) Destroy() {
	listeners := h.destroyListeners
	h.destroyListeners = nil

	for _, fn := range listeners {
		fn()
	}
}

// CurrentScope returns the scope of the component rendering on this
// goroutine. It panics with ErrNoCurrentHook outside a render.
func CurrentScope() *Scope {
	tracker := currentTracker()
	if tracker == nil || tracker.Current() == nil {
		panic(ErrNoCurrentHook)
	}
	return tracker.Current().scope
}

type hookCell struct {
	index    int
	value    any // always a *S for the hook's state type S
	borrowed bool
}

func borrowCell[S any](c *hookCell) (*S, func()) {
	if c.borrowed {
		panic(ErrHookBorrowed)
	}

	s, ok := c.value.(*S)
	if !ok {
		panic(&HookError{
			Index: c.index,
			Want:  fmt.Sprintf("%T", (*S)(nil)),
			Got:   fmt.Sprintf("%T", c.value),
			Err:   ErrIncompatibleHook,
		})
	}

	c.borrowed = true
	return s, func() { c.borrowed = false }
}

// HookUpdater schedules mutations of one hook cell.
type HookUpdater[S any] struct {
	cell    *hookCell
	process func(Msg, bool)
}

// Callback schedules fn on the component's update queue. fn returns whether
// the component should render again.
func (u HookUpdater[S]) Callback(fn func(*S) bool) {
	u.process(u.message(fn), false)
}

// PostRender queues fn until the component's next commit.
func (u HookUpdater[S]) PostRender(fn func(*S) bool) {
	u.process(u.message(fn), true)
}

func (u HookUpdater[S]) message(fn func(*S) bool) Msg {
	return func() bool {
		s, release := borrowCell[S](u.cell)
		defer release()
		return fn(s)
	}
}

// UseHook is the primitive every hook is built from.
//
// On the first render the cell at the current position is created from
// initializer; teardown, if not nil, is registered to run on the cell when
// the component is destroyed. runner is then called synchronously with the
// cell and an updater that defers mutations through the scheduler.
func UseHook[S, R any](initializer func() S, runner func(*S, HookUpdater[S]) R, teardown func(*S)) R {
	tracker := currentTracker()
	if tracker == nil {
		panic(ErrNoCurrentHook)
	}

	cell, process := func() (*hookCell, func(Msg, bool)) {
		state, release := tracker.borrow()
		defer release()

		index := state.counter
		state.counter++

		if index >= len(state.hooks) {
			initial := initializer()
			c := &hookCell{index: index, value: &initial}
			state.hooks = append(state.hooks, c)

			if teardown != nil {
				state.destroyListeners = append(state.destroyListeners, func() {
					s, done := borrowCell[S](c)
					defer done()
					teardown(s)
				})
			}
		}

		return state.hooks[index], state.processMessage
	}()

	s, release := borrowCell[S](cell)
	defer release()

	return runner(s, HookUpdater[S]{cell: cell, process: process})
}
