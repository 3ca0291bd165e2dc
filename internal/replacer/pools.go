package replacer

import (
	"github.com/schemax/exemplar/internal/types"
	"github.com/schemax/exemplar/pkg/schema"
)

// Literal pools the default source draws from, one per leaf type.
var (
	stringPool = []string{
		"a",
		"abc",
		"this-is-an-example_string",
		"what",
		"why?",
		"where?",
		"kangaroo",
		"praire",
		"savanah",
		"jungle",
		"earth",
		"mars",
		"Buggati",
		"Mercedes",
		"Mark Johnson",
		"Ron F Swanson",
		"Chris Pratt",
		"Guradians of Galaxy",
		"Zingaro!",
	}

	integerPool = []int{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
		100, 999, 1000, 2121, 9845, 9943, 1983, 1984, 4405, 1020,
	}

	numberPool = []float64{
		1.000,
		2.903,
		3.1416,
		4.24,
		5.25,
		1020000.000,
	}

	booleanPool = []bool{true, false}
)

// StringPool returns a copy of the sample string pool.
func StringPool() []string {
	return append([]string(nil), stringPool...)
}

// IntegerPool returns a copy of the sample integer pool.
func IntegerPool() []int {
	return append([]int(nil), integerPool...)
}

// NumberPool returns a copy of the sample decimal pool.
func NumberPool() []float64 {
	return append([]float64(nil), numberPool...)
}

// ReplaceFromPool draws a value uniformly from the fixed literal pool
// matching the schema's leaf type. It is the chain's last source and always
// produces a value for the four leaf types.
func ReplaceFromPool(ctx *ReplaceContext) any {
	switch ctx.schema.Type {
	case schema.TypeString:
		return types.GetRandomSliceValue(ctx.rng, stringPool)
	case schema.TypeInteger:
		return types.GetRandomSliceValue(ctx.rng, integerPool)
	case schema.TypeNumber:
		return types.GetRandomSliceValue(ctx.rng, numberPool)
	case schema.TypeBoolean:
		return types.GetRandomSliceValue(ctx.rng, booleanPool)
	default:
		return nil
	}
}
