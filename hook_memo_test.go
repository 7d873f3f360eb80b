package weave

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AnatoleLucet/weave/dom"
)

func TestUseMemo(t *testing.T) {
	t.Run("recomputes only when deps change", func(t *testing.T) {
		computed := []int{}
		var setN func(int)
		var force func()

		square := NewComponent("Square", func(struct{}) Node {
			n, set := UseState(func() int { return 2 })
			setN = set
			force = UseForceUpdate()

			sq := UseMemo(func(n int) int {
				computed = append(computed, n)
				return n * n
			}, n)

			return output(Textf("%d", sq))
		})

		doc, _ := mount(square, struct{}{})
		assert.Equal(t, "4", result(doc))

		force()
		force()
		assert.Equal(t, []int{2}, computed)

		setN(3)
		assert.Equal(t, "9", result(doc))
		assert.Equal(t, []int{2, 3}, computed)
	})

	t.Run("compares struct deps by value", func(t *testing.T) {
		type query struct {
			Term  string
			Limit int
		}

		computes := 0
		var force func()

		search := NewComponent("Search", func(struct{}) Node {
			force = UseForceUpdate()
			UseMemo(func(q query) string {
				computes++
				return q.Term
			}, query{Term: "go", Limit: 10})
			return nil
		})

		mount(search, struct{}{})
		force()
		assert.Equal(t, 1, computes)
	})
}

func TestUseCallback(t *testing.T) {
	t.Run("keeps its identity while deps are unchanged", func(t *testing.T) {
		callbacks := []Callback[dom.Event]{}
		var force func()
		var setStep func(int)

		button := NewComponent("Button", func(struct{}) Node {
			force = UseForceUpdate()
			step, set := UseState(func() int { return 1 })
			setStep = set

			cb := UseCallback(func(dom.Event, int) {}, step)
			callbacks = append(callbacks, cb)
			return Tag("button").On("click", cb)
		})

		mount(button, struct{}{})
		force()
		setStep(2)

		assert.Len(t, callbacks, 3)
		assert.True(t, callbacks[0].Equal(callbacks[1]))
		assert.False(t, callbacks[1].Equal(callbacks[2]))
	})

	t.Run("stable listeners are not registered again", func(t *testing.T) {
		clicks := []int{}
		var setLabel func(string)

		button := NewComponent("Button", func(struct{}) Node {
			label, set := UseState(func() string { return "a" })
			setLabel = set

			onClick := UseCallback(func(_ dom.Event, n int) {
				clicks = append(clicks, n)
			}, 7)

			return Tag("button").Attr("id", "result").On("click", onClick).Append(Text(label))
		})

		doc, _ := mount(button, struct{}{})

		before := doc.Mutations()
		setLabel("b")
		// only the text node changed
		assert.Equal(t, before+1, doc.Mutations())

		doc.GetElementByID("result").Dispatch("click", dom.Event{})
		assert.Equal(t, []int{7}, clicks)
	})
}

func TestUseRef(t *testing.T) {
	var force func()
	refs := []*Ref[string]{}
	renders := 0

	comp := NewComponent("Comp", func(struct{}) Node {
		renders++
		force = UseForceUpdate()
		ref := UseMutRef(func() string { return "initial" })
		refs = append(refs, ref)
		return nil
	})

	mount(comp, struct{}{})
	refs[0].Current = "changed"
	assert.Equal(t, 1, renders)

	force()
	assert.Same(t, refs[0], refs[1])
	assert.Equal(t, "changed", refs[1].Current)
}
