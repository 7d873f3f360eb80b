//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

var runtimes sync.Map

// registers holds the hook register of each goroutine currently rendering.
// Entries only live for the duration of a render.
var registers sync.Map

// GetRuntime returns the runtime of the calling goroutine, creating it on
// first use.
func GetRuntime() *Runtime {
	gid := getGID()

	if r, ok := runtimes.Load(gid); ok {
		return r.(*Runtime)
	}

	r, _ := runtimes.LoadOrStore(gid, NewRuntime())
	return r.(*Runtime)
}

// ReleaseRuntime forgets the runtime of the calling goroutine. Components
// already mounted keep the scheduler they captured.
func ReleaseRuntime() {
	runtimes.Delete(getGID())
}

// currentTracker returns the hook register of the calling goroutine, or nil
// when no render runs on it.
func currentTracker() *Tracker {
	if t, ok := registers.Load(getGID()); ok {
		return t.(*Tracker)
	}
	return nil
}

// enterTracker returns the hook register of the calling goroutine, creating
// it if needed. leave drops a register created by this call.
func enterTracker() (t *Tracker, leave func()) {
	gid := getGID()

	if t, ok := registers.Load(gid); ok {
		return t.(*Tracker), func() {}
	}

	t = NewTracker()
	registers.Store(gid, t)
	return t, func() { registers.Delete(gid) }
}

func getGID() int64 {
	return goid.Get()
}
