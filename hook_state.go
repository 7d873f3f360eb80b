package weave

type stateCell[T any] struct {
	value  T
	setter func(T)
}

// UseState returns the current state and a setter. Every call to the setter
// schedules a render, even with an unchanged value.
//
//	count, setCount := weave.UseState(func() int { return 0 })
func UseState[T any](init func() T) (T, func(T)) {
	return useState(init, nil)
}

// UseStateEq is UseState for comparable values: setting a value equal to the
// current one does not render.
func UseStateEq[T comparable](init func() T) (T, func(T)) {
	return useState(init, func(a, b T) bool { return a == b })
}

func useState[T any](init func() T, eq func(a, b T) bool) (T, func(T)) {
	p := UseHook(
		func() stateCell[T] {
			return stateCell[T]{value: init()}
		},
		func(s *stateCell[T], updater HookUpdater[stateCell[T]]) pair[T, func(T)] {
			if s.setter == nil {
				s.setter = func(v T) {
					updater.Callback(func(s *stateCell[T]) bool {
						if eq != nil && eq(s.value, v) {
							return false
						}
						s.value = v
						return true
					})
				}
			}

			return pair[T, func(T)]{s.value, s.setter}
		},
		nil,
	)

	return p.first, p.second
}
