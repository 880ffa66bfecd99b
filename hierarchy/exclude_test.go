package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExcludeThing(t *testing.T) {
	graph := NewGraph()
	graph.insert("owl-Thing", nil)
	graph.insert("a-X", []string{"owl-Thing"})
	graph.insert("b-Y", []string{"a-X", "owl-Thing"})

	filtered := ExcludeThing(graph)

	assert.Equal(t, []string{"a-X", "b-Y"}, filtered.Names())
	assert.Empty(t, filtered.Parents("a-X"))
	assert.Equal(t, []string{"a-X"}, filtered.Parents("b-Y"))
	for _, name := range filtered.Names() {
		assert.NotEqual(t, thingQualifiedName, name)
		assert.NotContains(t, filtered.Parents(name), thingQualifiedName)
	}

	// the input graph is untouched
	assert.True(t, graph.Has("owl-Thing"))
	assert.Equal(t, []string{"owl-Thing"}, graph.Parents("a-X"))
}

func TestExcludeThingNoop(t *testing.T) {
	graph := NewGraph()
	graph.insert("a-X", nil)

	filtered := ExcludeThing(graph)
	assert.Equal(t, []string{"a-X"}, filtered.Names())
}
