//go:build js && wasm

package internal

import "syscall/js"

// JSHost drains the scheduler in a browser microtask.
type JSHost struct{}

func (JSHost) ScheduleNextTick(fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	js.Global().Call("queueMicrotask", cb)
}
