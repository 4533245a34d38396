package docs

import (
	"github.com/goccy/go-yaml"
)

type Response struct {
	Description string `yaml:"description"`
	TypedSchema `yaml:"-"`
}

type StatusCode = string

type Responses = map[StatusCode]Response

// UnmarshalYAML reads `description` and treats every other key as a media
// type mapped to its schema.
func (r *Response) UnmarshalYAML(data []byte) error {
	var raw map[string]yaml.RawMessage
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	if desc, ok := raw["description"]; ok {
		if err := yaml.Unmarshal(desc, &r.Description); err != nil {
			return err
		}
		delete(raw, "description")
	}

	if r.TypedSchema == nil {
		r.TypedSchema = make(TypedSchema, len(raw))
	}

	for mediaType, schemaData := range raw {
		var out Schema
		if err := yaml.Unmarshal(schemaData, &out); err != nil {
			return err
		}
		r.TypedSchema[mediaType] = out
	}

	return nil
}
