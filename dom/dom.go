// Package dom is a small in-memory live document.
//
// It plays the role of the browser document for the reconciler: components
// render node values, the reconciler turns them into mutations on a Document.
// Fragment nodes are transparent, they only group children and never show up
// in the serialized output.
package dom

import (
	"slices"
	"strings"
)

type Kind int

const (
	ElementNode Kind = iota
	TextNode
	FragmentNode
)

func (k Kind) String() string {
	switch k {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case FragmentNode:
		return "fragment"
	default:
		return "unknown"
	}
}

// Event is delivered to listeners by Dispatch.
type Event struct {
	Type   string
	Target *Node
	Value  string
}

type Listener func(Event)

// Document owns a tree of nodes rooted at a <body> element.
type Document struct {
	root *Node

	// number of mutations applied since creation
	mutations int
}

func NewDocument() *Document {
	d := &Document{}
	d.root = d.CreateElement("body")
	return d
}

// Root returns the <body> element.
func (d *Document) Root() *Node { return d.root }

// Mutations returns how many structural, attribute, text or listener
// mutations were applied to nodes of this document.
func (d *Document) Mutations() int { return d.mutations }

func (d *Document) CreateElement(tag string) *Node {
	return &Node{doc: d, kind: ElementNode, tag: tag}
}

func (d *Document) CreateText(text string) *Node {
	return &Node{doc: d, kind: TextNode, text: text}
}

func (d *Document) CreateFragment() *Node {
	return &Node{doc: d, kind: FragmentNode}
}

// GetElementByID returns the first element (depth first) whose id attribute
// equals id.
func (d *Document) GetElementByID(id string) *Node {
	var found *Node
	d.root.walk(func(n *Node) bool {
		if n.kind == ElementNode && n.attrs["id"] == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// HTML serializes the whole document.
func (d *Document) HTML() string { return d.root.HTML() }

type Node struct {
	doc  *Document
	kind Kind

	tag  string
	text string

	attrs     map[string]string
	listeners map[string]Listener

	parent   *Node
	children []*Node
}

func (n *Node) Kind() Kind        { return n.kind }
func (n *Node) Tag() string       { return n.tag }
func (n *Node) Text() string      { return n.text }
func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Children() []*Node { return slices.Clone(n.children) }
func (n *Node) Document() *Document {
	return n.doc
}

func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

func (n *Node) AppendChild(child *Node) {
	child.detach()
	child.parent = n
	n.children = append(n.children, child)
	n.doc.mutations++
}

// InsertBefore inserts child before ref. A nil ref appends.
func (n *Node) InsertBefore(child, ref *Node) {
	if ref == nil {
		n.AppendChild(child)
		return
	}
	child.detach()
	i := n.indexOf(ref)
	if i < 0 {
		panic("dom: reference node is not a child")
	}
	child.parent = n
	n.children = slices.Insert(n.children, i, child)
	n.doc.mutations++
}

func (n *Node) RemoveChild(child *Node) {
	i := n.indexOf(child)
	if i < 0 {
		panic("dom: node is not a child")
	}
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
	n.doc.mutations++
}

// ReplaceChild puts next where old was.
func (n *Node) ReplaceChild(next, old *Node) {
	if next == old {
		return
	}
	i := n.indexOf(old)
	if i < 0 {
		panic("dom: node is not a child")
	}
	next.detach()
	// detaching next may have shifted old
	i = n.indexOf(old)
	n.children[i] = next
	next.parent = n
	old.parent = nil
	n.doc.mutations++
}

func (n *Node) SetAttr(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	if v, ok := n.attrs[name]; ok && v == value {
		return
	}
	n.attrs[name] = value
	n.doc.mutations++
}

func (n *Node) RemoveAttr(name string) {
	if _, ok := n.attrs[name]; !ok {
		return
	}
	delete(n.attrs, name)
	n.doc.mutations++
}

func (n *Node) SetText(text string) {
	if n.text == text {
		return
	}
	n.text = text
	n.doc.mutations++
}

func (n *Node) SetListener(event string, l Listener) {
	if n.listeners == nil {
		n.listeners = make(map[string]Listener)
	}
	n.listeners[event] = l
	n.doc.mutations++
}

func (n *Node) RemoveListener(event string) {
	if _, ok := n.listeners[event]; !ok {
		return
	}
	delete(n.listeners, event)
	n.doc.mutations++
}

// Dispatch delivers an event to n and then bubbles it up through its
// ancestors. It reports whether at least one listener ran.
func (n *Node) Dispatch(event string, e Event) bool {
	e.Type = event
	e.Target = n

	handled := false
	for cur := n; cur != nil; cur = cur.parent {
		if l, ok := cur.listeners[event]; ok && l != nil {
			l(e)
			handled = true
		}
	}
	return handled
}

// InnerText concatenates the text of every descendant text node.
func (n *Node) InnerText() string {
	var sb strings.Builder
	n.walk(func(c *Node) bool {
		if c.kind == TextNode {
			sb.WriteString(c.text)
		}
		return true
	})
	return sb.String()
}

// InnerHTML serializes the children of n.
func (n *Node) InnerHTML() string {
	var sb strings.Builder
	for _, c := range n.children {
		c.writeHTML(&sb)
	}
	return sb.String()
}

func (n *Node) HTML() string {
	var sb strings.Builder
	n.writeHTML(&sb)
	return sb.String()
}

func (n *Node) writeHTML(sb *strings.Builder) {
	switch n.kind {
	case TextNode:
		sb.WriteString(escape(n.text))
	case FragmentNode:
		for _, c := range n.children {
			c.writeHTML(sb)
		}
	case ElementNode:
		sb.WriteByte('<')
		sb.WriteString(n.tag)
		keys := make([]string, 0, len(n.attrs))
		for k := range n.attrs {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			sb.WriteByte(' ')
			sb.WriteString(k)
			sb.WriteString(`="`)
			sb.WriteString(escape(n.attrs[k]))
			sb.WriteByte('"')
		}
		sb.WriteByte('>')
		for _, c := range n.children {
			c.writeHTML(sb)
		}
		sb.WriteString("</")
		sb.WriteString(n.tag)
		sb.WriteByte('>')
	}
}

func (n *Node) detach() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

func (n *Node) indexOf(child *Node) int {
	return slices.Index(n.children, child)
}

// walk visits n and its descendants depth first until visit returns false.
func (n *Node) walk(visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(visit) {
			return false
		}
	}
	return true
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string { return escaper.Replace(s) }
