package docs

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Property is one entry of an inline object schema. A trailing `?` on the
// name marks it optional.
type Property struct {
	Name   string
	Schema Schema
}

type Properties []Property

// Schema is either a type expression string (`string`, `integer?(1:10)`,
// `<Entity>[]`) or an inline object given as Properties. The zero value
// means the type was omitted.
type Schema struct {
	Value any
}

func (s Schema) IsZero() bool {
	return s.Value == nil
}

// MediaType keyed schemas, e.g. `application/json: <Item>`.
type TypedSchema = map[string]Schema

func (s *Schema) UnmarshalYAML(data []byte) error {
	var str string
	if err := yaml.Unmarshal(data, &str); err == nil {
		s.Value = str
		return nil
	}

	// MapSlice keeps property order
	var rawMap yaml.MapSlice
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return fmt.Errorf("schema must be a type expression or an object: %w", err)
	}

	props := make(Properties, 0, len(rawMap))
	for _, item := range rawMap {
		name, ok := item.Key.(string)
		if !ok {
			return fmt.Errorf("property key must be a string, got %T", item.Key)
		}

		valueBytes, err := yaml.Marshal(item.Value)
		if err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}

		var propSchema Schema
		if err := yaml.Unmarshal(valueBytes, &propSchema); err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}

		props = append(props, Property{
			Name:   name,
			Schema: propSchema,
		})
	}

	s.Value = props
	return nil
}
