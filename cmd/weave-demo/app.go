package main

import (
	"fmt"

	"github.com/AnatoleLucet/weave"
)

type theme struct {
	Accent string
}

type appProps struct {
	Title string

	// receives the tick setter once the app is mounted
	Ready func(tick func(int))

	// called after every commit of the app
	Commit func()
}

var app = weave.NewComponent("App", func(props appProps) weave.Node {
	tick, setTick := weave.UseStateEq(func() int { return 0 })

	weave.UseEffectWithDeps(func(struct{}) func() {
		props.Ready(setTick)
		return nil
	}, struct{}{})

	weave.UseEffect(func() func() {
		props.Commit()
		return nil
	})

	accent := "blue"
	if tick%2 == 1 {
		accent = "red"
	}

	return weave.Provide(theme{Accent: accent},
		weave.Tag("h1", weave.Text(props.Title)),
		history.Node(tick),
	)
})

var history = weave.NewComponent("History", func(tick int) weave.Node {
	th, _ := weave.UseContext[theme]()

	items := make([]weave.Node, 0, tick)
	for i := 1; i <= tick; i++ {
		items = append(items, tickItem.Keyed(fmt.Sprint(i), i))
	}

	return weave.Tag("ol", items...).Attr("class", th.Accent)
})

var tickItem = weave.NewComponent("Tick", func(n int) weave.Node {
	return weave.Tag("li", weave.Textf("tick %d", n))
})
