package compilation

import "github.com/masnyjimmy/reqdoc/requiredness"

const OpenAPIVersion = "3.1.0"

type Info struct {
	Title       string `json:"title" yaml:"title"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type Server struct {
	Url         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type Tag struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type Components struct {
	Schemas map[string]Schema `json:"schemas,omitempty" yaml:"schemas,omitempty"`
}

// OperationRef identifies one documented operation.
type OperationRef struct {
	Path   string
	Method requiredness.Context
}

type Document struct {
	Openapi    string          `json:"openapi" yaml:"openapi"`
	Info       Info            `json:"info" yaml:"info"`
	Servers    []Server        `json:"servers,omitempty" yaml:"servers,omitempty"`
	Tags       []Tag           `json:"tags,omitempty" yaml:"tags,omitempty"`
	Components Components      `json:"components,omitempty" yaml:"components,omitempty"`
	Paths      map[string]Path `json:"paths,omitempty" yaml:"paths,omitempty"`

	// Operations lists operations in route declaration order; Paths is a map
	// and loses it.
	Operations []OperationRef `json:"-" yaml:"-"`
}

// Operation returns the compiled operation for ref, or nil.
func (d *Document) Operation(ref OperationRef) *Operation {
	p, ok := d.Paths[ref.Path]
	if !ok {
		return nil
	}
	slot := p.slot(ref.Method)
	if slot == nil {
		return nil
	}
	return *slot
}
