package schema

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// FromKin converts a kin-openapi schema into a Schema, so documents parsed
// with kin's loader can feed the generator directly.
// References are already resolved by the kin loader, so only the resolved
// structure is carried over. Circular kin schemas are truncated at the point
// of revisit.
func FromKin(src *openapi3.Schema) *Schema {
	return fromKin(src, map[*openapi3.Schema]bool{})
}

func fromKin(src *openapi3.Schema, visited map[*openapi3.Schema]bool) *Schema {
	if src == nil || visited[src] {
		return nil
	}

	visited[src] = true
	defer delete(visited, src)

	target := &Schema{
		Type:     ParseDataType(src.Type),
		Required: src.Required,
		Minimum:  src.Min,
		Maximum:  src.Max,
	}

	if src.Items != nil {
		target.Items = fromKin(src.Items.Value, visited)
	}

	if len(src.Properties) > 0 {
		target.Properties = make(map[string]*Schema, len(src.Properties))
		for name, ref := range src.Properties {
			if ref == nil {
				continue
			}
			target.Properties[name] = fromKin(ref.Value, visited)
		}
	}

	return target
}
