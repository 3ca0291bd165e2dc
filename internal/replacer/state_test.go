package replacer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplaceState(t *testing.T) {
	t.Run("WithName builds the path", func(t *testing.T) {
		state := NewReplaceState(WithName("users")).WithOptions(WithName("name"))
		assert.Equal(t, []string{"users", "name"}, state.NamePath)
	})

	t.Run("WithElementIndex", func(t *testing.T) {
		state := NewReplaceState(WithElementIndex(3))
		assert.Equal(t, 3, state.ElementIndex)
	})

	t.Run("NewFrom copies slices", func(t *testing.T) {
		parent := NewReplaceState(WithName("a"), WithRef("A"))
		child := parent.NewFrom(parent).WithOptions(WithName("b"), WithRef("B"))

		assert.Equal(t, []string{"a"}, parent.NamePath)
		assert.Equal(t, []string{"a", "b"}, child.NamePath)
		assert.Equal(t, []string{"A"}, parent.RefStack)
		assert.Equal(t, []string{"A", "B"}, child.RefStack)
	})

	t.Run("NewFrom resets element index", func(t *testing.T) {
		parent := NewReplaceState(WithElementIndex(2))
		child := parent.NewFrom(parent)
		assert.Equal(t, 0, child.ElementIndex)
	})

	t.Run("InRef", func(t *testing.T) {
		state := NewReplaceState(WithRef("Node"))
		assert.True(t, state.InRef("Node"))
		assert.False(t, state.InRef("Other"))
	})
}
