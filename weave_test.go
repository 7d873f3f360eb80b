package weave

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/AnatoleLucet/weave/dom"
)

func mount[P any](def *Definition[P], props P) (*dom.Document, *App[P]) {
	doc := dom.NewDocument()
	app := Mount(doc.Root(), def, props)
	return doc, app
}

// result returns the text of the #result element.
func result(doc *dom.Document) string {
	el := doc.GetElementByID("result")
	if el == nil {
		return ""
	}
	return el.InnerText()
}

func assertHTML(t *testing.T, want string, doc *dom.Document) {
	t.Helper()
	if diff := cmp.Diff(want, doc.HTML()); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func output(content Node) Node {
	return Tag("div").Attr("id", "result").Append(content)
}
