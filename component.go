package weave

import "github.com/AnatoleLucet/weave/internal"

// Definition is a component type whose props are P.
type Definition[P any] struct {
	typ *ComponentType
}

// NewComponent defines a function component. render is called on every
// render and may call hooks, always in the same order.
func NewComponent[P any](name string, render func(props P) Node) *Definition[P] {
	return &Definition[P]{
		internal.NewFunctionType(name, func(props any) Node {
			return render(as[P](props))
		}),
	}
}

// NewStatefulComponent defines a component implemented by a value of its
// own. create is called once per mounted instance.
func NewStatefulComponent[P any](name string, create func(props P, scope *Scope) Component) *Definition[P] {
	return &Definition[P]{
		&ComponentType{
			Name: name,
			Create: func(props any, scope *Scope) Component {
				return create(as[P](props), scope)
			},
		},
	}
}

func (d *Definition[P]) Type() *ComponentType { return d.typ }

// Node describes an instance of the component with props.
func (d *Definition[P]) Node(props P) Node {
	return &internal.ComponentNode{Type: d.typ, Props: props}
}

// Keyed is Node with a key. Siblings with different keys are never patched
// into each other.
func (d *Definition[P]) Keyed(key string, props P) Node {
	return &internal.ComponentNode{Type: d.typ, Props: props, Key: key}
}

// MessageCallback returns a callback sending fn's result to scope.
func MessageCallback[IN any](scope *Scope, fn func(IN) any) Callback[IN] {
	return internal.NewCallback(func(in IN) {
		scope.SendMessage(fn(in))
	})
}

// MessageCallbackOnce is MessageCallback for a callback emitted at most
// once.
func MessageCallbackOnce[IN any](scope *Scope, fn func(IN) any) Callback[IN] {
	return internal.CallbackOnce(func(in IN) {
		scope.SendMessage(fn(in))
	})
}

// BatchCallback returns a callback sending all of fn's messages to scope in a
// single update. Nothing is sent when fn returns no message.
func BatchCallback[IN any](scope *Scope, fn func(IN) []any) Callback[IN] {
	return internal.NewCallback(func(in IN) {
		if msgs := fn(in); len(msgs) > 0 {
			scope.SendMessageBatch(msgs)
		}
	})
}

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}
