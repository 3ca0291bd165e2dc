package schema

// DataType is the closed set of type tags the generator understands.
type DataType string

const (
	TypeString  DataType = "string"
	TypeInteger DataType = "integer"
	TypeNumber  DataType = "number"
	TypeBoolean DataType = "boolean"
	TypeArray   DataType = "array"
	TypeObject  DataType = "object"

	// TypeUnknown covers absent or unrecognized type tags.
	// Nodes carrying it generate the default empty-object value.
	TypeUnknown DataType = ""
)

// Known reports whether t is one of the generatable type tags.
func (t DataType) Known() bool {
	switch t {
	case TypeString, TypeInteger, TypeNumber, TypeBoolean, TypeArray, TypeObject:
		return true
	default:
		return false
	}
}

// IsLeaf reports whether t is a scalar type with no structural recursion.
func (t DataType) IsLeaf() bool {
	switch t {
	case TypeString, TypeInteger, TypeNumber, TypeBoolean:
		return true
	default:
		return false
	}
}

// ParseDataType maps a raw type string to a DataType.
// Anything outside the closed set maps to TypeUnknown.
func ParseDataType(raw string) DataType {
	t := DataType(raw)
	if !t.Known() {
		return TypeUnknown
	}
	return t
}

// Schema keywords recognized in input documents.
// Descriptive keywords ($schema, $id, title, description) carry no constraints
// and are dropped during decoding.
const (
	KeywordSchema      = "$schema"
	KeywordID          = "$id"
	KeywordTitle       = "title"
	KeywordDescription = "description"
	KeywordType        = "type"
	KeywordProperties  = "properties"
	KeywordItems       = "items"
	KeywordRequired    = "required"
	KeywordMinimum     = "minimum"
	KeywordMaximum     = "maximum"
	KeywordDefinitions = "definitions"
	KeywordRef         = "$ref"
)

// Definitions is a named registry of reusable schema fragments
// referenced via $ref.
type Definitions map[string]*Schema

// Schema is a structured view of a JSON Schema node.
// Absent fields stay zero-valued; constraint fields are pointers so that
// "not declared" is distinguishable from a declared zero.
type Schema struct {
	Type        DataType           `json:"type,omitempty" yaml:"type,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty" yaml:"items,omitempty"`
	Ref         string             `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Definitions Definitions        `json:"definitions,omitempty" yaml:"definitions,omitempty"`
	Required    []string           `json:"required,omitempty" yaml:"required,omitempty"`
	Minimum     *float64           `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum     *float64           `json:"maximum,omitempty" yaml:"maximum,omitempty"`
}

// IsEmpty reports whether the schema carries nothing to generate from.
// A nil schema and a schema with no recognized keywords are both empty.
func (s *Schema) IsEmpty() bool {
	if s == nil {
		return true
	}
	return s.Type == TypeUnknown &&
		len(s.Properties) == 0 &&
		s.Items == nil &&
		s.Ref == "" &&
		len(s.Definitions) == 0 &&
		len(s.Required) == 0 &&
		s.Minimum == nil &&
		s.Maximum == nil
}
