package weave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUseState(t *testing.T) {
	t.Run("converges after consecutive updates", func(t *testing.T) {
		renders := 0

		counter := NewComponent("Counter", func(struct{}) Node {
			renders++

			count, setCount := UseState(func() int { return 0 })
			if count < 5 {
				setCount(count + 1)
			}

			return output(Textf("%d", count))
		})

		doc, _ := mount(counter, struct{}{})

		assert.Equal(t, "5", result(doc))
		assert.Equal(t, 6, renders)
		assertHTML(t, `<body><div id="result">5</div></body>`, doc)
	})

	t.Run("one set schedules exactly one render", func(t *testing.T) {
		seen := []int{}

		counter := NewComponent("Counter", func(struct{}) Node {
			count, setCount := UseState(func() int { return 0 })
			seen = append(seen, count)
			if count == 0 {
				setCount(1)
			}
			return output(Textf("%d", count))
		})

		doc, _ := mount(counter, struct{}{})

		assert.Equal(t, "1", result(doc))
		// the first snapshot keeps its value
		assert.Equal(t, []int{0, 1}, seen)
	})

	t.Run("multiple setters of the same state", func(t *testing.T) {
		counter := NewComponent("Counter", func(struct{}) Node {
			count, setInEffect := UseState(func() int { return 0 })
			setInScope := setInEffect

			UseEffectWithDeps(func(struct{}) func() {
				setInEffect(count + 1)
				return nil
			}, struct{}{})

			if count < 11 {
				setInScope(count + 10)
			}

			return output(Textf("%d", count))
		})

		doc, _ := mount(counter, struct{}{})
		assert.Equal(t, "11", result(doc))
	})

	t.Run("hook order is stable", func(t *testing.T) {
		var force func()

		counter := NewComponent("Counter", func(struct{}) Node {
			name, _ := UseState(func() string { return "weave" })
			renders := UseRef(func() int { return 0 })
			force = UseForceUpdate()

			renders.Current++
			return output(Textf("%s %d", name, renders.Current))
		})

		doc, _ := mount(counter, struct{}{})
		assert.Equal(t, "weave 1", result(doc))

		for range 10 {
			force()
		}
		assert.Equal(t, "weave 11", result(doc))
	})
}

func TestUseStateEq(t *testing.T) {
	t.Run("skips renders for equal values", func(t *testing.T) {
		renders := 0
		var set func(int)

		counter := NewComponent("Counter", func(struct{}) Node {
			renders++
			count, setCount := UseStateEq(func() int { return 0 })
			set = setCount
			return output(Textf("%d", count))
		})

		doc, _ := mount(counter, struct{}{})
		assert.Equal(t, 1, renders)

		set(0)
		assert.Equal(t, 1, renders)

		set(3)
		assert.Equal(t, 2, renders)
		assert.Equal(t, "3", result(doc))
	})

	t.Run("eager variant renders on equal values", func(t *testing.T) {
		renders := 0
		var set func(int)

		counter := NewComponent("Counter", func(struct{}) Node {
			renders++
			count, setCount := UseState(func() int { return 0 })
			set = setCount
			return output(Textf("%d", count))
		})

		mount(counter, struct{}{})
		set(0)
		set(0)
		assert.Equal(t, 3, renders)
	})
}
