package types

import (
	"math/rand"
)

// GetRandomSliceValue returns an element drawn uniformly from the slice
// using the provided random source.
func GetRandomSliceValue[T any](rng *rand.Rand, slice []T) T {
	var res T
	if len(slice) == 0 {
		return res
	}
	return slice[rng.Intn(len(slice))]
}

// SliceContains returns true if the given slice contains the given value.
func SliceContains[T comparable](slice []T, value T) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
