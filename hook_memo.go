package weave

import "github.com/AnatoleLucet/weave/internal"

type memoCell[T, D any] struct {
	ok    bool
	deps  D
	value T
}

// UseMemo returns compute(deps), computed again during render only when
// deps change.
func UseMemo[T, D any](compute func(deps D) T, deps D) T {
	return UseHook(
		func() memoCell[T, D] { return memoCell[T, D]{} },
		func(s *memoCell[T, D], _ HookUpdater[memoCell[T, D]]) T {
			if !s.ok || !internal.Equal(s.deps, deps) {
				s.value = compute(deps)
				s.deps = deps
				s.ok = true
			}
			return s.value
		},
		nil,
	)
}

// UseCallback returns a callback calling fn with deps. The same callback is
// returned while deps are unchanged, so listeners using it are not
// registered again.
func UseCallback[IN, D any](fn func(in IN, deps D), deps D) Callback[IN] {
	return UseMemo(func(deps D) Callback[IN] {
		return internal.NewCallback(func(in IN) { fn(in, deps) })
	}, deps)
}
