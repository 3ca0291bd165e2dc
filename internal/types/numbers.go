package types

import "fmt"

// IsInteger returns true if the value is an integer of any width.
func IsInteger(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

// IsNumber returns true if the value is numeric, integer or floating point.
func IsNumber(value any) bool {
	if IsInteger(value) {
		return true
	}
	switch value.(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

// ToFloat64 converts any numeric value to float64.
func ToFloat64(value any) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("unsupported type: %T", value)
	}
}
