package weave

type reducerCell[S, A any] struct {
	state S

	// latest reducer, the one used when an action is applied
	reducer  func(S, A) S
	dispatch func(A)
}

// UseReducer returns the current state and a dispatcher. Each dispatched
// action is reduced exactly once, when the update is processed, and always
// renders. The dispatcher is the same across renders.
func UseReducer[S, A any](reducer func(S, A) S, initial S) (S, func(A)) {
	return useReducer(reducer, func() S { return initial }, nil)
}

// UseReducerWithInit is UseReducer with the initial state computed lazily
// from initial.
func UseReducerWithInit[S, A, I any](reducer func(S, A) S, initial I, init func(I) S) (S, func(A)) {
	return useReducer(reducer, func() S { return init(initial) }, nil)
}

// UseReducerEq is UseReducer skipping the render when the reduced state is
// equal to the previous one.
func UseReducerEq[S comparable, A any](reducer func(S, A) S, initial S) (S, func(A)) {
	return useReducer(reducer, func() S { return initial }, func(a, b S) bool { return a == b })
}

func useReducer[S, A any](reducer func(S, A) S, init func() S, eq func(a, b S) bool) (S, func(A)) {
	p := UseHook(
		func() reducerCell[S, A] {
			return reducerCell[S, A]{state: init()}
		},
		func(s *reducerCell[S, A], updater HookUpdater[reducerCell[S, A]]) pair[S, func(A)] {
			s.reducer = reducer

			if s.dispatch == nil {
				s.dispatch = func(action A) {
					updater.Callback(func(s *reducerCell[S, A]) bool {
						next := s.reducer(s.state, action)
						if eq != nil && eq(s.state, next) {
							return false
						}
						s.state = next
						return true
					})
				}
			}

			return pair[S, func(A)]{s.state, s.dispatch}
		},
		nil,
	)

	return p.first, p.second
}
