//go:build wasm

package internal

import "sync"

var once sync.Once
var globalRuntime *Runtime

// wasm runs a single goroutine at a time, one register is enough
var register = NewTracker()

// GetRuntime returns the single runtime, wasm being single threaded.
func GetRuntime() *Runtime {
	once.Do(func() {
		globalRuntime = NewRuntime()
	})

	return globalRuntime
}

// ReleaseRuntime is a no-op under wasm.
func ReleaseRuntime() {}

func currentTracker() *Tracker {
	if register.current == nil {
		return nil
	}
	return register
}

func enterTracker() (*Tracker, func()) {
	return register, func() {}
}
