package replacer

import (
	"math/rand"

	"github.com/schemax/exemplar/internal/types"
	"github.com/schemax/exemplar/pkg/schema"
)

// applyNumberConstraints enforces the schema's minimum/maximum on numeric
// results. A value outside the declared range is replaced by a uniform draw
// inside it; non-numeric schemas and unconstrained values pass through.
func applyNumberConstraints(rng *rand.Rand, s *schema.Schema, res any) any {
	if s.Minimum == nil && s.Maximum == nil {
		return res
	}
	if s.Type != schema.TypeInteger && s.Type != schema.TypeNumber {
		return res
	}

	value, err := types.ToFloat64(res)
	if err != nil {
		return res
	}

	minVal, hasMin := 0.0, false
	if s.Minimum != nil {
		minVal, hasMin = *s.Minimum, true
	}
	maxVal, hasMax := 0.0, false
	if s.Maximum != nil {
		maxVal, hasMax = *s.Maximum, true
	}

	outOfBounds := (hasMin && value < minVal) || (hasMax && value > maxVal)
	if !outOfBounds {
		return res
	}

	// fill in the missing bound so a uniform draw is possible
	if !hasMin {
		minVal = maxVal - 1000000
	}
	if !hasMax {
		maxVal = minVal + 1000000
	}

	if s.Type == schema.TypeInteger {
		minInt := int64(minVal)
		maxInt := int64(maxVal)
		rangeSize := maxInt - minInt + 1 // maximum is inclusive
		if rangeSize <= 0 {
			return int(minInt)
		}
		return int(minInt + rng.Int63n(rangeSize))
	}

	return minVal + rng.Float64()*(maxVal-minVal)
}
