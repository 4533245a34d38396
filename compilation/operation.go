package compilation

type ParamIn string

const (
	InPath   ParamIn = "path"
	InQuery  ParamIn = "query"
	InHeader ParamIn = "header"
)

type Parameter struct {
	Name        string      `json:"name" yaml:"name"`
	In          ParamIn     `json:"in" yaml:"in"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool        `json:"required" yaml:"required"`
	Schema      SchemaOrRef `json:"schema" yaml:"schema"`
}

type RequestBody struct {
	Required    bool                   `json:"required,omitempty" yaml:"required,omitempty"`
	Description string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Content     map[string]TypedSchema `json:"content" yaml:"content"`
}

type StatusCode = string

type Response struct {
	Description string                 `json:"description" yaml:"description"`
	Content     map[string]TypedSchema `json:"content,omitempty" yaml:"content,omitempty"`
}

type Operation struct {
	Summary     string                  `json:"summary,omitempty" yaml:"summary,omitempty"`
	OperationId string                  `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Tags        []string                `json:"tags,omitempty" yaml:"tags,omitempty"`
	Parameters  []Parameter             `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody *RequestBody            `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   map[StatusCode]Response `json:"responses,omitempty" yaml:"responses,omitempty"`
}

func (o *Operation) Parameter(name string) (Parameter, bool) {
	for _, p := range o.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}
