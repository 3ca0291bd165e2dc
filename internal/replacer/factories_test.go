package replacer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schemax/exemplar/pkg/schema"
)

func TestCreateValueReplacer(t *testing.T) {
	t.Run("first matching source wins", func(t *testing.T) {
		constant := func(ctx *ReplaceContext) any { return "fixed" }
		fn := CreateValueReplacer(rand.New(rand.NewSource(1)), []Replacer{constant, ReplaceFromPool})

		res := fn(&schema.Schema{Type: schema.TypeString}, NewReplaceState())
		assert.Equal(t, "fixed", res)
	})

	t.Run("type-mismatched result falls through", func(t *testing.T) {
		wrongKind := func(ctx *ReplaceContext) any { return "not a number" }
		fn := CreateValueReplacer(rand.New(rand.NewSource(1)), []Replacer{wrongKind, ReplaceFromPool})

		res := fn(&schema.Schema{Type: schema.TypeInteger}, NewReplaceState())
		assert.Contains(t, integerPool, res)
	})

	t.Run("nil state is tolerated", func(t *testing.T) {
		fn := CreateValueReplacer(rand.New(rand.NewSource(1)), []Replacer{ReplaceFromPool})
		res := fn(&schema.Schema{Type: schema.TypeBoolean}, nil)
		assert.IsType(t, true, res)
	})

	t.Run("no source produces a value", func(t *testing.T) {
		fn := CreateValueReplacer(rand.New(rand.NewSource(1)), []Replacer{ReplaceFromPool})
		res := fn(&schema.Schema{Type: schema.TypeObject}, NewReplaceState())
		assert.Nil(t, res)
	})

	t.Run("constraints applied to source results", func(t *testing.T) {
		minimum, maximum := 100000.0, 100010.0
		s := &schema.Schema{Type: schema.TypeInteger, Minimum: &minimum, Maximum: &maximum}
		fn := CreateValueReplacer(rand.New(rand.NewSource(1)), []Replacer{ReplaceFromPool})

		for i := 0; i < 20; i++ {
			res := fn(s, NewReplaceState())
			value, ok := res.(int)
			assert.True(t, ok)
			assert.GreaterOrEqual(t, value, 100000)
			assert.LessOrEqual(t, value, 100010)
		}
	})
}

func TestIsCorrectlyReplacedType(t *testing.T) {
	testCases := []struct {
		name     string
		value    any
		needed   schema.DataType
		expected bool
	}{
		{"string ok", "hello", schema.TypeString, true},
		{"string not int", "hello", schema.TypeInteger, false},
		{"int ok", 42, schema.TypeInteger, true},
		{"int64 ok", int64(42), schema.TypeInteger, true},
		{"float not integer", 42.5, schema.TypeInteger, false},
		{"int is number", 42, schema.TypeNumber, true},
		{"float is number", 42.5, schema.TypeNumber, true},
		{"bool ok", true, schema.TypeBoolean, true},
		{"bool not string", true, schema.TypeString, false},
		{"map is object", map[string]any{}, schema.TypeObject, true},
		{"slice is array", []any{1}, schema.TypeArray, true},
		{"slice not object", []any{1}, schema.TypeObject, false},
		{"unknown type never matches", "x", schema.TypeUnknown, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsCorrectlyReplacedType(tc.value, tc.needed))
		})
	}
}
