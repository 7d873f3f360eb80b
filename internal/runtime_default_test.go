//go:build !wasm

package internal

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnatoleLucet/weave/dom"
)

func countEntries(m *sync.Map) int {
	n := 0
	m.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}

func TestRuntimeRegistry(t *testing.T) {
	t.Run("renders on short lived goroutines leave nothing behind", func(t *testing.T) {
		doc := dom.NewDocument()

		var set func(int)
		counter := NewFunctionType("Counter", func(any) Node {
			n := UseHook(
				func() int { return 0 },
				func(n *int, updater HookUpdater[int]) int {
					if set == nil {
						set = func(v int) {
							updater.Callback(func(n *int) bool {
								*n = v
								return true
							})
						}
					}
					return *n
				},
				nil,
			)
			return &Text{Content: strconv.Itoa(n)}
		})

		scope := NewScope(counter, nil, NewScheduler(nil))
		scope.MountInPlace(doc.Root(), nil)
		require.NotNil(t, set)
		assert.Equal(t, "0", doc.Root().InnerText())

		runtimesBefore := countEntries(&runtimes)

		var wg sync.WaitGroup
		for i := 1; i <= 200; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				set(i)
			}()
		}
		wg.Wait()

		assert.Equal(t, runtimesBefore, countEntries(&runtimes))
		assert.Zero(t, countEntries(&registers))
		assert.NotEqual(t, "0", doc.Root().InnerText())
	})

	t.Run("register only exists while rendering", func(t *testing.T) {
		state := NewHookState(nil, nil)

		var during *HookState
		state.Render(func() {
			during = currentTracker().Current()
		})

		assert.Same(t, state, during)
		assert.Nil(t, currentTracker())
	})

	t.Run("install and restore", func(t *testing.T) {
		state := NewHookState(nil, nil)

		restore := state.Install()
		assert.Same(t, state, currentTracker().Current())

		restore()
		assert.Nil(t, currentTracker())
	})
}
