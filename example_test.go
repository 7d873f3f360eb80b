package weave_test

import (
	"fmt"

	"github.com/AnatoleLucet/weave"
	"github.com/AnatoleLucet/weave/dom"
)

func Example() {
	counter := weave.NewComponent("Counter", func(start int) weave.Node {
		count, setCount := weave.UseState(func() int { return start })

		onClick := weave.UseCallback(func(_ dom.Event, count int) {
			setCount(count + 1)
		}, count)

		return weave.Tag("button").
			Attr("id", "inc").
			On("click", onClick).
			Append(weave.Textf("clicked %d times", count))
	})

	doc := dom.NewDocument()
	weave.Mount(doc.Root(), counter, 0)
	fmt.Println(doc.HTML())

	doc.GetElementByID("inc").Dispatch("click", dom.Event{})
	doc.GetElementByID("inc").Dispatch("click", dom.Event{})
	fmt.Println(doc.HTML())

	// Output:
	// <body><button id="inc">clicked 0 times</button></body>
	// <body><button id="inc">clicked 2 times</button></body>
}

func ExampleUseContext() {
	type user struct{ Name string }

	greeting := weave.NewComponent("Greeting", func(struct{}) weave.Node {
		u, ok := weave.UseContext[user]()
		if !ok {
			return weave.Text("hello stranger")
		}
		return weave.Textf("hello %s", u.Name)
	})

	app := weave.NewComponent("App", func(struct{}) weave.Node {
		return weave.Fragment(
			weave.Tag("p", greeting.Node(struct{}{})),
			weave.Provide(user{"ada"}, weave.Tag("p", greeting.Node(struct{}{}))),
		)
	})

	doc := dom.NewDocument()
	weave.Mount(doc.Root(), app, struct{}{})
	fmt.Println(doc.Root().InnerHTML())

	// Output:
	// <p>hello stranger</p><p>hello ada</p>
}

func ExampleUseReducer() {
	type action string

	var dispatch func(action)
	todo := weave.NewComponent("Todo", func(struct{}) weave.Node {
		items, d := weave.UseReducer(func(items []string, a action) []string {
			return append(items, string(a))
		}, nil)
		dispatch = d

		lis := []weave.Node{}
		for _, item := range items {
			lis = append(lis, weave.Tag("li", weave.Text(item)))
		}
		return weave.Tag("ul", lis...)
	})

	doc := dom.NewDocument()
	weave.Mount(doc.Root(), todo, struct{}{})

	weave.Batch(func() {
		dispatch("write")
		dispatch("test")
	})
	fmt.Println(doc.Root().InnerHTML())

	// Output:
	// <ul><li>write</li><li>test</li></ul>
}
