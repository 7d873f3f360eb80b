package weave

// Ref is a mutable cell kept across renders. Writing Current never renders.
type Ref[T any] struct {
	Current T
}

// UseRef returns the same Ref on every render of the component.
func UseRef[T any](init func() T) *Ref[T] {
	return UseHook(
		func() *Ref[T] {
			return &Ref[T]{Current: init()}
		},
		func(ref **Ref[T], _ HookUpdater[*Ref[T]]) *Ref[T] {
			return *ref
		},
		nil,
	)
}

// UseMutRef is an alias of UseRef.
func UseMutRef[T any](init func() T) *Ref[T] {
	return UseRef(init)
}

type forceUpdateCell struct {
	trigger func()
}

// UseForceUpdate returns a function scheduling a render of the component.
func UseForceUpdate() func() {
	return UseHook(
		func() forceUpdateCell { return forceUpdateCell{} },
		func(s *forceUpdateCell, updater HookUpdater[forceUpdateCell]) func() {
			if s.trigger == nil {
				s.trigger = func() {
					updater.Callback(func(*forceUpdateCell) bool { return true })
				}
			}
			return s.trigger
		},
		nil,
	)
}
