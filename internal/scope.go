package internal

import (
	"github.com/AnatoleLucet/weave/dom"
)

// Component is anything that can be mounted by a Scope. View is the only
// required method; the optional lifecycle methods are picked up through the
// MessageHandler, PropsChanger, RenderNotifier and Destroyer interfaces.
type Component interface {
	View() Node
}

// MessageHandler handles messages sent through Scope.SendMessage and reports
// whether the component should render again.
type MessageHandler interface {
	Update(msg any) bool
}

// PropsChanger receives new props from the parent. Components without it
// always render again on new props.
type PropsChanger interface {
	Change(props any) bool
}

// RenderNotifier is called once the component's output has been committed to
// the document.
type RenderNotifier interface {
	Rendered(firstRender bool)
}

type Destroyer interface {
	Destroy()
}

// ComponentType describes a kind of component. The pointer itself is the type
// tag: two nodes describe the same component type only if they point at the
// same ComponentType.
type ComponentType struct {
	Name   string
	Create func(props any, scope *Scope) Component
}

type phase int

const (
	phaseEmpty phase = iota
	phaseReady
	phaseCreated
	phaseProcessing
	phaseDestroyed
)

func (p phase) String() string {
	switch p {
	case phaseEmpty:
		return "empty"
	case phaseReady:
		return "ready"
	case phaseCreated:
		return "created"
	case phaseProcessing:
		return "processing"
	case phaseDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Scope is the lifecycle handle of one mounted component. All its state is
// only touched by runnables, which the scheduler never runs concurrently.
type Scope struct {
	scheduler *Scheduler
	typ       *ComponentType
	parent    *Scope

	phase phase

	// set when a runnable of this scope panicked
	failed bool

	// where the component's output lives
	host  *dom.Node
	props any

	component Component

	// false between a render and the following rendered notification
	rendered bool

	// whether Rendered was ever delivered
	committed bool

	// last committed output
	frame *mounted

	// Destroy was delivered to the component
	torndown bool
}

func NewScope(typ *ComponentType, parent *Scope, scheduler *Scheduler) *Scope {
	return &Scope{
		scheduler: scheduler,
		typ:       typ,
		parent:    parent,
	}
}

func (s *Scope) Type() *ComponentType { return s.typ }

func (s *Scope) Parent() *Scope { return s.parent }

func (s *Scope) Scheduler() *Scheduler { return s.scheduler }

// Component returns the component instance, or nil before creation.
func (s *Scope) Component() Component { return s.component }

// Destroyed reports whether the component was destroyed or failed.
func (s *Scope) Destroyed() bool { return s.phase == phaseDestroyed }

// Failed reports whether one of the component's runnables panicked.
func (s *Scope) Failed() bool { return s.failed }

// MountInPlace prepares the component to render into host and schedules its
// creation.
func (s *Scope) MountInPlace(host *dom.Node, props any) {
	s.host = host
	s.props = props
	s.phase = phaseReady
	s.Create()
}

// Create schedules the creation and first render of the component.
func (s *Scope) Create() {
	s.scheduler.Batch(func() {
		s.scheduler.PushComponent(RunnableCreate, &createRunnable{s})
		s.pushRendered()
	})
}

// Destroy schedules the destruction of the component.
func (s *Scope) Destroy() {
	s.scheduler.PushComponent(RunnableDestroy, &destroyRunnable{s})
}

// SendMessage schedules msg to be handled by the component's Update.
func (s *Scope) SendMessage(msg any) {
	s.update(componentUpdate{kind: updateMessage, msgs: []any{msg}})
}

// SendMessageBatch schedules all msgs to be handled in a single update. The
// component renders at most once.
func (s *Scope) SendMessageBatch(msgs []any) {
	s.update(componentUpdate{kind: updateBatch, msgs: msgs})
}

// UpdateProps schedules new props for the component.
func (s *Scope) UpdateProps(props any) {
	s.update(componentUpdate{kind: updateProps, props: props})
}

func (s *Scope) update(u componentUpdate) {
	s.scheduler.Batch(func() {
		s.scheduler.PushComponent(RunnableUpdate, &updateRunnable{s, u})
		s.pushRendered()
	})
}

func (s *Scope) pushRendered() {
	s.scheduler.PushComponent(RunnableRendered, &renderedRunnable{s})
}

func (s *Scope) render() {
	root := s.component.View()
	s.frame = s.commit(s.host, s.frame, root)
	s.rendered = false
}

func (s *Scope) abort() {
	s.phase = phaseDestroyed
	s.failed = true
}

type updateKind int

const (
	updateMessage updateKind = iota
	updateBatch
	updateProps
)

type componentUpdate struct {
	kind  updateKind
	msgs  []any
	props any
}

type createRunnable struct{ scope *Scope }

func (r *createRunnable) Run() {
	s := r.scope

	switch s.phase {
	case phaseReady:
		s.phase = phaseProcessing
		s.component = s.typ.Create(s.props, s)
		s.render()
		s.phase = phaseCreated
	case phaseCreated, phaseDestroyed:
	default:
		panic(stateError("create", s.phase))
	}
}

func (r *createRunnable) Abort(any) { r.scope.abort() }

func (r *createRunnable) Describe() (string, string) {
	return "component.create", r.scope.typ.Name
}

type updateRunnable struct {
	scope  *Scope
	update componentUpdate
}

func (r *updateRunnable) Run() {
	s := r.scope

	switch s.phase {
	case phaseCreated:
		s.phase = phaseProcessing

		shouldRender := false
		switch r.update.kind {
		case updateMessage, updateBatch:
			handler, ok := s.component.(MessageHandler)
			if ok {
				for _, msg := range r.update.msgs {
					if handler.Update(msg) {
						shouldRender = true
					}
				}
			}
		case updateProps:
			s.props = r.update.props
			if changer, ok := s.component.(PropsChanger); ok {
				shouldRender = changer.Change(r.update.props)
			} else {
				shouldRender = true
			}
		}

		if shouldRender {
			s.render()
		}
		s.phase = phaseCreated
	case phaseDestroyed:
		// deliveries to destroyed components are dropped
	default:
		panic(stateError("update", s.phase))
	}
}

func (r *updateRunnable) Abort(any) { r.scope.abort() }

func (r *updateRunnable) Describe() (string, string) {
	return "component.update", r.scope.typ.Name
}

type renderedRunnable struct{ scope *Scope }

func (r *renderedRunnable) Run() {
	s := r.scope

	switch s.phase {
	case phaseCreated:
		if s.rendered {
			return
		}
		s.rendered = true

		// rendered runnables pop in stack order, the first one to run is not
		// necessarily the one pushed by create
		first := !s.committed
		s.committed = true

		if notifier, ok := s.component.(RenderNotifier); ok {
			s.phase = phaseProcessing
			notifier.Rendered(first)
			s.phase = phaseCreated
		}
	case phaseDestroyed:
	default:
		panic(stateError("rendered", s.phase))
	}
}

func (r *renderedRunnable) Abort(any) { r.scope.abort() }

func (r *renderedRunnable) Describe() (string, string) {
	return "component.rendered", r.scope.typ.Name
}

type destroyRunnable struct{ scope *Scope }

func (r *destroyRunnable) Run() {
	s := r.scope

	prev := s.phase
	switch prev {
	case phaseProcessing:
		panic(stateError("destroy", prev))
	case phaseDestroyed:
		// a failed component still owns its last output
		if !s.failed {
			return
		}
	}
	s.phase = phaseDestroyed

	if s.component != nil && !s.torndown {
		s.torndown = true
		if d, ok := s.component.(Destroyer); ok {
			d.Destroy()
		}
	}

	if s.frame != nil {
		if s.frame.dom.Parent() == s.host {
			s.host.RemoveChild(s.frame.dom)
		}
		s.frame.detach()
		s.frame = nil
	}
}

func (r *destroyRunnable) Describe() (string, string) {
	return "component.destroy", r.scope.typ.Name
}
