package generator

import "github.com/schemax/exemplar/pkg/schema"

// Example pairs a resolved type tag with its generated value.
// It is a transient wrapper: composite values hold plain nested data
// ([]any, map[string]any), never nested Example nodes, so Value is always
// directly serializable with encoding/json.
type Example struct {
	Type  schema.DataType `json:"type"`
	Value any             `json:"value"`
}
