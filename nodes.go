package weave

import (
	"fmt"

	"github.com/AnatoleLucet/weave/internal"
)

// Tag creates an element node.
func Tag(name string, children ...Node) *Element {
	return &internal.Element{Tag: name, Children: children}
}

func Text(content string) Node {
	return &internal.Text{Content: content}
}

func Textf(format string, args ...any) Node {
	return &internal.Text{Content: fmt.Sprintf(format, args...)}
}

// Fragment groups children without a wrapping element.
func Fragment(children ...Node) Node {
	return &internal.List{Children: children}
}

func KeyedFragment(key string, children ...Node) Node {
	return &internal.List{Key: key, Children: children}
}
