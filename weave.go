package weave

import (
	"log/slog"

	"github.com/AnatoleLucet/weave/config"
	"github.com/AnatoleLucet/weave/dom"
	"github.com/AnatoleLucet/weave/internal"
)

type (
	Node          = internal.Node
	Element       = internal.Element
	Scope         = internal.Scope
	Component     = internal.Component
	ComponentType = internal.ComponentType

	MessageHandler = internal.MessageHandler
	PropsChanger   = internal.PropsChanger
	RenderNotifier = internal.RenderNotifier
	Destroyer      = internal.Destroyer

	Callback[IN any]   = internal.Callback[IN]
	HookUpdater[S any] = internal.HookUpdater[S]

	Host     = internal.Host
	SyncHost = internal.SyncHost
	LoopHost = internal.LoopHost

	HookError  = internal.HookError
	PanicError = internal.PanicError
)

var (
	ErrNoCurrentHook       = internal.ErrNoCurrentHook
	ErrNestedHooks         = internal.ErrNestedHooks
	ErrIncompatibleHook    = internal.ErrIncompatibleHook
	ErrHookBorrowed        = internal.ErrHookBorrowed
	ErrHookContextOccupied = internal.ErrHookContextOccupied
	ErrUnexpectedState     = internal.ErrUnexpectedState
	ErrCallbackUsed        = internal.ErrCallbackUsed
)

// NewCallback wraps fn in a Callback. Copies of the result are equal to each
// other and to nothing else.
func NewCallback[IN any](fn func(IN)) Callback[IN] {
	return internal.NewCallback(fn)
}

// CallbackOnce wraps fn in a Callback that panics when emitted twice.
func CallbackOnce[IN any](fn func(IN)) Callback[IN] {
	return internal.CallbackOnce(fn)
}

func Noop[IN any]() Callback[IN] {
	return internal.Noop[IN]()
}

// Reform adapts cb to accept T.
func Reform[T, IN any](cb Callback[IN], fn func(T) IN) Callback[T] {
	return internal.Reform(cb, fn)
}

func NewLoopHost() *LoopHost {
	return internal.NewLoopHost()
}

// SetHost changes how the scheduler of the calling goroutine drains. The
// default SyncHost drains right away on the goroutine scheduling the work.
func SetHost(host Host) {
	internal.GetRuntime().SetHost(host)
}

func SetLogger(logger *slog.Logger) {
	internal.GetRuntime().SetLogger(logger)
}

// Configure applies cfg to the runtime of the calling goroutine.
func Configure(cfg config.Config) error {
	return internal.GetRuntime().Configure(cfg)
}

// OnError registers fn to be called with every panic recovered while
// running component work.
func OnError(fn func(*PanicError)) {
	internal.GetRuntime().OnError(fn)
}

// Batch holds back rendering until fn returns, so every update scheduled by
// fn is processed together.
func Batch(fn func()) {
	internal.GetRuntime().Batch(fn)
}

// Release drops the runtime of the calling goroutine.
func Release() {
	internal.ReleaseRuntime()
}

// App is a component tree mounted into a live document.
type App[P any] struct {
	scope *Scope
	host  *dom.Node
	root  *dom.Node
}

// Mount renders def with props at the end of host's children.
func Mount[P any](host *dom.Node, def *Definition[P], props P) *App[P] {
	root := host.Document().CreateFragment()
	host.AppendChild(root)

	scope := internal.NewScope(def.typ, nil, internal.GetRuntime().Scheduler())
	scope.MountInPlace(root, props)

	return &App[P]{
		scope: scope,
		host:  host,
		root:  root,
	}
}

func (a *App[P]) Scope() *Scope { return a.scope }

// Update hands new props to the root component.
func (a *App[P]) Update(props P) {
	a.scope.UpdateProps(props)
}

// Unmount destroys the component tree and removes it from the document.
func (a *App[P]) Unmount() {
	sched := a.scope.Scheduler()
	sched.Batch(func() {
		a.scope.Destroy()
		sched.Push(internal.RunnableFunc(func() {
			if a.root.Parent() == a.host {
				a.host.RemoveChild(a.root)
			}
		}))
	})
}
