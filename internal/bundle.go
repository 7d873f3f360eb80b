package internal

import (
	"maps"
	"slices"

	"github.com/AnatoleLucet/weave/dom"
)

// mounted is the committed counterpart of a virtual node.
type mounted struct {
	node     Node
	dom      *dom.Node
	children []*mounted

	// set for component nodes
	scope *Scope
}

// commit reconciles next into host against the previously committed frame
// and returns the new frame.
func (s *Scope) commit(host *dom.Node, prev *mounted, next Node) *mounted {
	if prev == nil {
		m := s.mount(host.Document(), next)
		host.AppendChild(m.dom)
		return m
	}

	m := s.patch(prev, next)
	if m.dom != prev.dom {
		host.ReplaceChild(m.dom, prev.dom)
	}
	return m
}

func (s *Scope) mount(doc *dom.Document, n Node) *mounted {
	n = normalize(n)
	m := &mounted{node: n}

	switch n := n.(type) {
	case *Text:
		m.dom = doc.CreateText(n.Content)
	case *Element:
		m.dom = doc.CreateElement(n.Tag)
		for _, name := range slices.Sorted(maps.Keys(n.Attrs)) {
			m.dom.SetAttr(name, n.Attrs[name])
		}
		for name, cb := range n.Listeners {
			m.dom.SetListener(name, listener(cb))
		}
		m.children = s.mountChildren(doc, m.dom, n.Children)
	case *List:
		m.dom = doc.CreateFragment()
		m.children = s.mountChildren(doc, m.dom, n.Children)
	case *ComponentNode:
		m.dom = doc.CreateFragment()
		m.scope = NewScope(n.Type, s, s.scheduler)
		m.scope.MountInPlace(m.dom, n.Props)
	}

	return m
}

func (s *Scope) mountChildren(doc *dom.Document, parent *dom.Node, nodes []Node) []*mounted {
	children := make([]*mounted, 0, len(nodes))
	for _, child := range nodes {
		m := s.mount(doc, child)
		parent.AppendChild(m.dom)
		children = append(children, m)
	}
	return children
}

// patch updates prev in place when next has the same shape, otherwise it
// mounts next and detaches prev. The caller swaps the DOM nodes when the
// returned frame has a different one.
func (s *Scope) patch(prev *mounted, next Node) *mounted {
	next = normalize(next)

	if !sameShape(prev.node, next) {
		m := s.mount(prev.dom.Document(), next)
		prev.detach()
		return m
	}

	m := &mounted{node: next, dom: prev.dom, scope: prev.scope}

	switch n := next.(type) {
	case *Text:
		m.dom.SetText(n.Content)
	case *Element:
		old := prev.node.(*Element)
		patchAttrs(m.dom, old.Attrs, n.Attrs)
		patchListeners(m.dom, old.Listeners, n.Listeners)
		m.children = s.patchChildren(m.dom, prev.children, n.Children)
	case *List:
		m.children = s.patchChildren(m.dom, prev.children, n.Children)
	case *ComponentNode:
		m.scope.UpdateProps(n.Props)
	}

	return m
}

// patchChildren matches children by position.
func (s *Scope) patchChildren(parent *dom.Node, prev []*mounted, next []Node) []*mounted {
	children := make([]*mounted, 0, len(next))

	for i, child := range next {
		if i >= len(prev) {
			m := s.mount(parent.Document(), child)
			parent.AppendChild(m.dom)
			children = append(children, m)
			continue
		}

		m := s.patch(prev[i], child)
		if m.dom != prev[i].dom {
			parent.ReplaceChild(m.dom, prev[i].dom)
		}
		children = append(children, m)
	}

	for i := len(next); i < len(prev); i++ {
		parent.RemoveChild(prev[i].dom)
		prev[i].detach()
	}

	return children
}

// detach destroys every component below m. The DOM is left to the caller.
func (m *mounted) detach() {
	if m.scope != nil {
		m.scope.Destroy()
		return
	}
	for _, child := range m.children {
		child.detach()
	}
}

func patchAttrs(el *dom.Node, prev, next map[string]string) {
	for name := range prev {
		if _, ok := next[name]; !ok {
			el.RemoveAttr(name)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(next)) {
		el.SetAttr(name, next[name])
	}
}

func patchListeners(el *dom.Node, prev, next map[string]Callback[dom.Event]) {
	for name := range prev {
		if _, ok := next[name]; !ok {
			el.RemoveListener(name)
		}
	}
	for name, cb := range next {
		if old, ok := prev[name]; ok && old.Equal(cb) {
			continue
		}
		el.SetListener(name, listener(cb))
	}
}

func listener(cb Callback[dom.Event]) dom.Listener {
	return func(e dom.Event) { cb.Emit(e) }
}

func sameShape(prev, next Node) bool {
	if nodeKey(prev) != nodeKey(next) {
		return false
	}

	switch p := prev.(type) {
	case *Text:
		_, ok := next.(*Text)
		return ok
	case *Element:
		n, ok := next.(*Element)
		return ok && p.Tag == n.Tag
	case *List:
		_, ok := next.(*List)
		return ok
	case *ComponentNode:
		n, ok := next.(*ComponentNode)
		return ok && p.Type == n.Type
	}
	return false
}

// normalize maps nil to an empty list.
func normalize(n Node) Node {
	switch v := n.(type) {
	case nil:
		return &List{}
	case *Element:
		if v == nil {
			return &List{}
		}
	case *List:
		if v == nil {
			return &List{}
		}
	case *Text:
		if v == nil {
			return &List{}
		}
	case *ComponentNode:
		if v == nil {
			return &List{}
		}
	}
	return n
}
