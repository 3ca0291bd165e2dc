package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDataType(t *testing.T) {
	t.Run("known types", func(t *testing.T) {
		for _, raw := range []string{"string", "integer", "number", "boolean", "array", "object"} {
			assert.Equal(t, DataType(raw), ParseDataType(raw))
		}
	})

	t.Run("unknown types map to TypeUnknown", func(t *testing.T) {
		assert.Equal(t, TypeUnknown, ParseDataType(""))
		assert.Equal(t, TypeUnknown, ParseDataType("null"))
		assert.Equal(t, TypeUnknown, ParseDataType("fancy"))
	})
}

func TestDataTypeKnown(t *testing.T) {
	assert.True(t, TypeString.Known())
	assert.True(t, TypeObject.Known())
	assert.False(t, TypeUnknown.Known())
	assert.False(t, DataType("whatever").Known())
}

func TestDataTypeIsLeaf(t *testing.T) {
	assert.True(t, TypeString.IsLeaf())
	assert.True(t, TypeInteger.IsLeaf())
	assert.True(t, TypeNumber.IsLeaf())
	assert.True(t, TypeBoolean.IsLeaf())
	assert.False(t, TypeArray.IsLeaf())
	assert.False(t, TypeObject.IsLeaf())
	assert.False(t, TypeUnknown.IsLeaf())
}

func TestSchemaIsEmpty(t *testing.T) {
	t.Run("nil schema", func(t *testing.T) {
		var s *Schema
		assert.True(t, s.IsEmpty())
	})

	t.Run("zero schema", func(t *testing.T) {
		assert.True(t, (&Schema{}).IsEmpty())
	})

	t.Run("type set", func(t *testing.T) {
		assert.False(t, (&Schema{Type: TypeBoolean}).IsEmpty())
	})

	t.Run("only constraint set", func(t *testing.T) {
		minimum := 1.0
		assert.False(t, (&Schema{Minimum: &minimum}).IsEmpty())
	})

	t.Run("only ref set", func(t *testing.T) {
		assert.False(t, (&Schema{Ref: "#/definitions/Point"}).IsEmpty())
	})
}
