package internal

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// Structural errors. They are raised with panic since they always point at a
// mistake in component code.
var (
	ErrNoCurrentHook       = errors.New("weave: no current hook, hooks can only be called inside function components")
	ErrNestedHooks         = errors.New("weave: nested hooks not supported")
	ErrIncompatibleHook    = errors.New("weave: incompatible hook type, hooks must always be called in the same order")
	ErrHookBorrowed        = errors.New("weave: hook state already borrowed")
	ErrHookContextOccupied = errors.New("weave: hook context occupied by another component")
	ErrUnexpectedState     = errors.New("weave: unexpected component state")
	ErrCallbackUsed        = errors.New("weave: callback in once has already been used")
)

// HookError describes a hook cell whose stored type does not match the type
// requested by the hook at the same position.
type HookError struct {
	Index int
	Want  string
	Got   string
	Err   error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("%v (hook #%d: want %s, got %s)", e.Err, e.Index, e.Want, e.Got)
}

func (e *HookError) Unwrap() error { return e.Err }

// PanicError wraps a value recovered from scheduled work.
type PanicError struct {
	// Op is the runnable that panicked (e.g. "component.update").
	Op         string
	Component  string
	Value      any
	StackTrace string
}

func (e *PanicError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("panic in %s (%s): %v", e.Op, e.Component, e.Value)
	}
	return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
}

// Unwrap exposes the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func stateError(op string, p phase) error {
	return fmt.Errorf("%w: %s while %s", ErrUnexpectedState, op, p)
}

// captureStack returns the current call stack, skipping the recover
// machinery frames.
func captureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(4, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
