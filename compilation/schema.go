package compilation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

type SchemaType string

const (
	SchemaNull    SchemaType = "null"
	SchemaBoolean SchemaType = "boolean"
	SchemaInteger SchemaType = "integer"
	SchemaNumber  SchemaType = "number"
	SchemaString  SchemaType = "string"
	SchemaArray   SchemaType = "array"
	SchemaObject  SchemaType = "object"
)

type Property struct {
	Name   string
	Schema SchemaOrRef
}

// Properties marshal as an object whose keys keep declaration order.
type Properties []Property

func (p Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for idx, prop := range p {
		if idx > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(prop.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(prop.Schema)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (p *Properties) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	if tok, err := dec.Token(); err != nil {
		return err
	} else if tok != json.Delim('{') {
		return fmt.Errorf("properties must be an object")
	}

	out := make(Properties, 0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)

		var schema SchemaOrRef
		if err := dec.Decode(&schema); err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}
		out = append(out, Property{Name: name, Schema: schema})
	}

	*p = out
	return nil
}

func (p Properties) MarshalYAML() (any, error) {
	out := make(yaml.MapSlice, len(p))
	for idx, prop := range p {
		out[idx] = yaml.MapItem{Key: prop.Name, Value: prop.Schema}
	}
	return out, nil
}

func (p Properties) Get(name string) (SchemaOrRef, bool) {
	for _, prop := range p {
		if prop.Name == name {
			return prop.Schema, true
		}
	}
	return SchemaOrRef{}, false
}

type Schema struct {
	Type        SchemaType `json:"type" yaml:"type"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`

	Properties Properties   `json:"properties,omitempty" yaml:"properties,omitempty"`
	Items      *SchemaOrRef `json:"items,omitempty" yaml:"items,omitempty"`

	nullable bool

	Default *any `json:"default,omitempty" yaml:"default,omitempty"`

	Required []string `json:"required,omitempty" yaml:"required,omitempty"`

	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	UniqueItems bool `json:"uniqueItems,omitempty" yaml:"uniqueItems,omitempty"`

	Minimum *int `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum *int `json:"maximum,omitempty" yaml:"maximum,omitempty"`

	MinLength *uint `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *uint `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`

	MinItems *uint `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems *uint `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`

	Examples []any `json:"examples,omitempty" yaml:"examples,omitempty"`
}

func (s Schema) Nullable() bool { return s.nullable }

type SchemaOrRef struct {
	value any
}

func (SchemaOrRef) IsEmpty() bool { return false }
func (SchemaOrRef) IsZero() bool  { return false }

func NewSchemaRef(ref string) SchemaOrRef {
	return SchemaOrRef{
		value: ref,
	}
}

func NewSchemaDef(schema Schema) SchemaOrRef {
	return SchemaOrRef{
		value: schema,
	}
}

func componentRef(name string) string {
	return "#/components/schemas/" + name
}

// nullable schemas are written as oneOf: [{type: null}, <schema>]
func (t Schema) wrapNullable() any {
	if !t.nullable {
		return t
	}

	nonNull := t
	nonNull.nullable = false

	return map[string]any{
		"oneOf": []any{
			map[string]string{"type": string(SchemaNull)},
			nonNull,
		},
	}
}

func (t SchemaOrRef) MarshalYAML() (any, error) {
	switch v := t.value.(type) {
	case nil:
		return nil, nil
	case string:
		return map[string]string{"$ref": v}, nil
	case Schema:
		return v.wrapNullable(), nil
	default:
		return nil, fmt.Errorf("invalid SchemaOrRef value type: %T", v)
	}
}

func (t SchemaOrRef) MarshalJSON() ([]byte, error) {
	switch v := t.value.(type) {
	case string:
		return json.Marshal(map[string]string{"$ref": v})
	case Schema:
		return json.Marshal(v.wrapNullable())
	default:
		return nil, fmt.Errorf("invalid SchemaOrRef value type: %T", t.value)
	}
}

func (t *SchemaOrRef) UnmarshalJSON(data []byte) error {
	var refObj struct {
		Ref string `json:"$ref"`
	}
	if err := json.Unmarshal(data, &refObj); err == nil && refObj.Ref != "" {
		t.value = refObj.Ref
		return nil
	}

	var schema Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return err
	}
	t.value = schema
	return nil
}

func (t SchemaOrRef) IsRef() bool {
	_, ok := t.value.(string)
	return ok
}

func (t SchemaOrRef) GetRef() (string, bool) {
	ref, ok := t.value.(string)
	return ref, ok
}

func (t SchemaOrRef) GetSchema() (Schema, bool) {
	schema, ok := t.value.(Schema)
	return schema, ok
}

type TypedSchema struct {
	Schema SchemaOrRef `json:"schema" yaml:"schema"`
}
