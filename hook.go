package weave

import "github.com/AnatoleLucet/weave/internal"

// UseHook is the building block of every hook. It must be called
// unconditionally from a component's render function.
//
// The first render allocates a cell from initializer. Every render then calls
// runner with the cell and an updater scheduling mutations of it. teardown,
// when not nil, runs on the cell once the component is destroyed.
//
// Hooks must not be called from initializer: doing so panics with
// ErrNestedHooks.
func UseHook[S, R any](initializer func() S, runner func(*S, HookUpdater[S]) R, teardown func(*S)) R {
	return internal.UseHook(initializer, runner, teardown)
}

type pair[A, B any] struct {
	first  A
	second B
}
