// Package exemplar generates random, schema-conformant example values from
// JSON Schema documents. The schema model lives in pkg/schema and the
// recursive builder in pkg/generator; this package is the one-call front door.
package exemplar

import (
	"github.com/schemax/exemplar/pkg/generator"
	"github.com/schemax/exemplar/pkg/schema"
)

// Generate produces an example node for the given schema,
// pairing the generated value with its resolved type tag.
func Generate(s *schema.Schema, opts ...generator.Option) (*generator.Example, error) {
	return generator.New(opts...).Generate(s)
}

// GenerateValue produces just the example value, ready to hand to a
// serializer such as encoding/json.
func GenerateValue(s *schema.Schema, opts ...generator.Option) (any, error) {
	node, err := generator.New(opts...).Generate(s)
	if err != nil {
		return nil, err
	}
	return node.Value, nil
}
