package weave

import "github.com/AnatoleLucet/weave/internal"

type effectCell struct {
	destructor func()
}

// UseEffect runs effect after every commit of the component. The function
// effect returns, if any, runs before the next run and when the component is
// destroyed.
func UseEffect(effect func() func()) {
	UseHook(
		func() effectCell { return effectCell{} },
		func(_ *effectCell, updater HookUpdater[effectCell]) struct{} {
			updater.PostRender(func(s *effectCell) bool {
				if s.destructor != nil {
					s.destructor()
				}
				s.destructor = effect()
				return false
			})
			return struct{}{}
		},
		func(s *effectCell) {
			if s.destructor != nil {
				s.destructor()
				s.destructor = nil
			}
		},
	)
}

type effectDepsCell[D any] struct {
	ran        bool
	deps       D
	destructor func()
}

// UseEffectWithDeps runs effect after a commit when deps differ from the
// ones of its previous run. Use struct{}{} to run the effect only once.
func UseEffectWithDeps[D any](effect func(deps D) func(), deps D) {
	UseHook(
		func() effectDepsCell[D] { return effectDepsCell[D]{} },
		func(_ *effectDepsCell[D], updater HookUpdater[effectDepsCell[D]]) struct{} {
			updater.PostRender(func(s *effectDepsCell[D]) bool {
				if s.ran && internal.Equal(s.deps, deps) {
					return false
				}

				if s.destructor != nil {
					s.destructor()
				}
				s.ran = true
				s.deps = deps
				s.destructor = effect(deps)
				return false
			})
			return struct{}{}
		},
		func(s *effectDepsCell[D]) {
			if s.destructor != nil {
				s.destructor()
				s.destructor = nil
			}
		},
	)
}
