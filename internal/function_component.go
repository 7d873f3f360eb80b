package internal

import "fmt"

// FunctionComponent adapts a render function to the Component lifecycle.
// Its state lives in hooks; the only messages it handles are hook messages.
type FunctionComponent struct {
	render func(props any) Node
	props  any
	scope  *Scope
	hooks  *HookState

	// messages waiting for the next commit
	postRender *MsgQueue
}

// NewFunctionType returns a component type rendering with fn.
func NewFunctionType(name string, fn func(props any) Node) *ComponentType {
	return &ComponentType{
		Name: name,
		Create: func(props any, scope *Scope) Component {
			return NewFunctionComponent(fn, props, scope)
		},
	}
}

func NewFunctionComponent(fn func(props any) Node, props any, scope *Scope) *FunctionComponent {
	fc := &FunctionComponent{
		render:     fn,
		props:      props,
		scope:      scope,
		postRender: NewMsgQueue(),
	}
	fc.hooks = NewHookState(scope, fc.processMessage)
	return fc
}

func (fc *FunctionComponent) processMessage(msg Msg, postRender bool) {
	if postRender {
		fc.postRender.Enqueue(msg)
		return
	}
	fc.scope.SendMessage(msg)
}

func (fc *FunctionComponent) Hooks() *HookState { return fc.hooks }

func (fc *FunctionComponent) View() Node {
	var root Node
	fc.hooks.Render(func() {
		root = fc.render(fc.props)
	})
	return root
}

func (fc *FunctionComponent) Update(msg any) bool {
	m, ok := msg.(Msg)
	if !ok {
		panic(fmt.Errorf("%w: function component got %T message", ErrUnexpectedState, msg))
	}
	return m()
}

func (fc *FunctionComponent) Change(props any) bool {
	prev := fc.props
	fc.props = props
	return !Equal(prev, props)
}

func (fc *FunctionComponent) Rendered(bool) {
	for _, msg := range fc.postRender.Drain() {
		fc.scope.SendMessage(msg)
	}
}

func (fc *FunctionComponent) Destroy() {
	fc.hooks.Destroy()
}
