package schema

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// FromJSON decodes a JSON Schema document into a Schema.
func FromJSON(data []byte) (*Schema, error) {
	target := &Schema{}
	if err := json.Unmarshal(data, target); err != nil {
		return nil, fmt.Errorf("decoding json schema: %w", err)
	}
	return target, nil
}

// FromYAML decodes a YAML schema document into a Schema.
func FromYAML(data []byte) (*Schema, error) {
	target := &Schema{}
	if err := yaml.Unmarshal(data, target); err != nil {
		return nil, fmt.Errorf("decoding yaml schema: %w", err)
	}
	return target, nil
}

// FromAny adapts an already-decoded document, typically a map[string]any
// produced by a generic JSON or YAML unmarshal, into a Schema.
func FromAny(value any) (*Schema, error) {
	target := &Schema{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  target,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(value); err != nil {
		return nil, fmt.Errorf("decoding schema document: %w", err)
	}
	return target, nil
}
