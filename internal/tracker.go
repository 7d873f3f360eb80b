package internal

// Tracker is the hook register: it points at the hook state of the component
// currently rendering on this goroutine.
type Tracker struct {
	current *HookState

	// set while UseHook reads or grows the current hook state
	borrowed bool
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// RunWithHooks installs state for the duration of fn and restores the
// previous register afterwards, panics included.
func (t *Tracker) RunWithHooks(state *HookState, fn func()) {
	restore := t.install(state)
	defer restore()

	fn()
}

func (t *Tracker) install(state *HookState) func() {
	if t.borrowed {
		panic(ErrNestedHooks)
	}
	if t.current != nil && t.current != state {
		panic(ErrHookContextOccupied)
	}

	prev := t.current
	t.current = state
	return func() { t.current = prev }
}

// Current returns the hook state of the rendering component, if any.
func (t *Tracker) Current() *HookState {
	return t.current
}

// borrow gives exclusive access to the current hook state. The returned
// release func must be called before any user code that may call hooks.
func (t *Tracker) borrow() (*HookState, func()) {
	if t.borrowed {
		panic(ErrNestedHooks)
	}
	if t.current == nil {
		panic(ErrNoCurrentHook)
	}

	t.borrowed = true
	return t.current, func() { t.borrowed = false }
}
