package internal

import "sync"

// Callback is a cloneable wrapper around a user function. Copies share the
// same underlying function, and equality is identity: two callbacks are equal
// only if one was copied from the other.
type Callback[IN any] struct {
	cb *callbackFn[IN]
}

type callbackFn[IN any] struct {
	fn func(IN)

	// once callbacks are consumed on first emit
	once bool
	used bool
	mu   sync.Mutex
}

// NewCallback wraps a function which can be called any number of times.
func NewCallback[IN any](fn func(IN)) Callback[IN] {
	return Callback[IN]{&callbackFn[IN]{fn: fn}}
}

// CallbackOnce wraps a function which can only be called once. A second Emit
// panics with ErrCallbackUsed.
func CallbackOnce[IN any](fn func(IN)) Callback[IN] {
	return Callback[IN]{&callbackFn[IN]{fn: fn, once: true}}
}

// Noop returns a callback doing nothing, for places where an optional
// callback is inconvenient.
func Noop[IN any]() Callback[IN] {
	return NewCallback(func(IN) {})
}

// Emit calls the wrapped function. Emitting the zero Callback does nothing.
func (c Callback[IN]) Emit(value IN) {
	if c.cb == nil || c.cb.fn == nil {
		return
	}

	if c.cb.once {
		c.cb.mu.Lock()
		used := c.cb.used
		c.cb.used = true
		c.cb.mu.Unlock()

		if used {
			panic(ErrCallbackUsed)
		}
	}

	c.cb.fn(value)
}

// Equal reports whether both callbacks share the same function.
func (c Callback[IN]) Equal(other Callback[IN]) bool {
	return c.cb == other.cb
}

func (c Callback[IN]) IsZero() bool { return c.cb == nil }

// IsOnce reports whether the callback was built with CallbackOnce.
func (c Callback[IN]) IsOnce() bool { return c.cb != nil && c.cb.once }

// Reform returns a callback accepting T that converts its input with fn and
// forwards it to cb.
func Reform[T, IN any](cb Callback[IN], fn func(T) IN) Callback[T] {
	return NewCallback(func(in T) {
		cb.Emit(fn(in))
	})
}
