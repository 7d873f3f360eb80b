package internal

import "github.com/AnatoleLucet/weave/dom"

// Node is a virtual node returned by render functions.
type Node interface {
	isNode()
}

// Element is a tag with attributes, listeners and children.
type Element struct {
	Tag       string
	Key       string
	Attrs     map[string]string
	Listeners map[string]Callback[dom.Event]
	Children  []Node
}

// List groups nodes without introducing an element.
type List struct {
	Key      string
	Children []Node
}

type Text struct {
	Content string
}

// ComponentNode asks the reconciler to mount (or update) a component of the
// given type with props.
type ComponentNode struct {
	Type  *ComponentType
	Props any
	Key   string
}

func (*Element) isNode()       {}
func (*List) isNode()          {}
func (*Text) isNode()          {}
func (*ComponentNode) isNode() {}

func nodeKey(n Node) string {
	switch n := n.(type) {
	case *Element:
		return n.Key
	case *List:
		return n.Key
	case *ComponentNode:
		return n.Key
	}
	return ""
}

// Attr sets an attribute and returns e for chaining.
func (e *Element) Attr(name, value string) *Element {
	if e.Attrs == nil {
		e.Attrs = make(map[string]string)
	}
	e.Attrs[name] = value
	return e
}

// On registers cb for event. Registering an equal callback again on the
// next render leaves the live listener untouched.
func (e *Element) On(event string, cb Callback[dom.Event]) *Element {
	if e.Listeners == nil {
		e.Listeners = make(map[string]Callback[dom.Event])
	}
	e.Listeners[event] = cb
	return e
}

func (e *Element) WithKey(key string) *Element {
	e.Key = key
	return e
}

func (e *Element) Append(children ...Node) *Element {
	e.Children = append(e.Children, children...)
	return e
}
