package weave

import (
	"fmt"
	"reflect"
	"sync"
	"weak"

	"github.com/AnatoleLucet/weave/internal"
)

// one provider component type per context value type
var providerTypes sync.Map

// ContextProvider makes a value of type T available to every component below
// it through UseContext.
type ContextProvider[T any] struct {
	scope    *Scope
	value    T
	children []Node

	// consumers are owned by their hook cells
	consumers []weak.Pointer[consumer[T]]
}

type consumer[T any] struct {
	notify func(T)

	// set when the consuming component is destroyed
	closed bool
}

func (c *consumer[T]) live() bool {
	return c != nil && !c.closed
}

type providerProps[T any] struct {
	value    T
	children []Node
}

// Provide renders children with value as the context of type T.
func Provide[T any](value T, children ...Node) Node {
	return &internal.ComponentNode{
		Type:  providerType[T](),
		Props: providerProps[T]{value: value, children: children},
	}
}

func providerType[T any]() *ComponentType {
	key := reflect.TypeFor[T]()
	if typ, ok := providerTypes.Load(key); ok {
		return typ.(*ComponentType)
	}

	typ, _ := providerTypes.LoadOrStore(key, &ComponentType{
		Name: fmt.Sprintf("ContextProvider[%s]", key),
		Create: func(props any, scope *Scope) Component {
			p := props.(providerProps[T])
			return &ContextProvider[T]{
				scope:    scope,
				value:    p.value,
				children: p.children,
			}
		},
	})
	return typ.(*ComponentType)
}

func (p *ContextProvider[T]) Value() T { return p.value }

func (p *ContextProvider[T]) View() Node {
	return &internal.List{Children: p.children}
}

// Change renders again only when the children changed. A new value is
// pushed to the consumers either way.
func (p *ContextProvider[T]) Change(props any) bool {
	next := props.(providerProps[T])

	shouldRender := !internal.Equal(p.children, next.children)
	p.children = next.children

	if !internal.Equal(p.value, next.value) {
		p.value = next.value
		p.notify()
	}

	return shouldRender
}

// subscribe registers c, reusing the slot of a consumer that went away.
func (p *ContextProvider[T]) subscribe(c *consumer[T]) {
	ptr := weak.Make(c)

	for i, w := range p.consumers {
		if !w.Value().live() {
			p.consumers[i] = ptr
			return
		}
	}
	p.consumers = append(p.consumers, ptr)
}

// notify calls every live consumer and drops the others.
func (p *ContextProvider[T]) notify() {
	live := p.consumers[:0]
	for _, w := range p.consumers {
		c := w.Value()
		if !c.live() {
			continue
		}
		c.notify(p.value)
		live = append(live, w)
	}

	clear(p.consumers[len(live):])
	p.consumers = live
}

// subscribers returns the number of live consumers.
func (p *ContextProvider[T]) subscribers() int {
	n := 0
	for _, w := range p.consumers {
		if w.Value().live() {
			n++
		}
	}
	return n
}

type contextCell[T any] struct {
	provider *ContextProvider[T]
	consumer *consumer[T]

	// last value delivered by the provider
	value T
}

// UseContext returns the value of the nearest enclosing provider of type T.
// ok is false when there is none. The component renders again whenever that
// provider gets a different value.
func UseContext[T any]() (value T, ok bool) {
	p := UseHook(
		func() contextCell[T] {
			return contextCell[T]{provider: nearestProvider[T](internal.CurrentScope())}
		},
		func(s *contextCell[T], updater HookUpdater[contextCell[T]]) pair[T, bool] {
			if s.provider == nil {
				var zero T
				return pair[T, bool]{zero, false}
			}

			if s.consumer == nil {
				s.value = s.provider.value
				s.consumer = &consumer[T]{
					notify: func(v T) {
						updater.Callback(func(s *contextCell[T]) bool {
							s.value = v
							return true
						})
					},
				}
				s.provider.subscribe(s.consumer)
			}

			return pair[T, bool]{s.value, true}
		},
		func(s *contextCell[T]) {
			if s.consumer != nil {
				s.consumer.closed = true
			}
		},
	)

	return p.first, p.second
}

func nearestProvider[T any](scope *Scope) *ContextProvider[T] {
	typ := providerType[T]()

	for s := scope; s != nil; s = s.Parent() {
		if s.Type() != typ {
			continue
		}
		if p, ok := s.Component().(*ContextProvider[T]); ok {
			return p
		}
	}
	return nil
}
