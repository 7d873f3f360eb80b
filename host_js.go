//go:build js && wasm

package weave

import "github.com/AnatoleLucet/weave/internal"

// JSHost drains the scheduler in a browser microtask.
type JSHost = internal.JSHost
