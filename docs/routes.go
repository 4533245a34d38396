package docs

import "github.com/masnyjimmy/reqdoc/requiredness"

// Route documents one HTTP method on one path. Paths may use either
// `:id` or `{id}` placeholders.
type Route struct {
	Id        string    `yaml:"id,omitempty"`
	Method    string    `yaml:"method" validate:"required,oneof=GET POST PUT PATCH DELETE HEAD OPTIONS TRACE"`
	Path      string    `yaml:"path" validate:"required,startswith=/"`
	Desc      string    `yaml:"desc,omitempty"`
	Tags      []string  `yaml:"tags,omitempty"`
	Use       []string  `yaml:"use,omitempty"`
	Params    Params    `yaml:"params,omitempty" validate:"dive"`
	Headers   Params    `yaml:"headers,omitempty" validate:"dive"`
	Body      Schema    `yaml:"body,omitempty"`
	Success   string    `yaml:"success,omitempty"`
	Responses Responses `yaml:"responses,omitempty"`
}

func (r Route) Context() (requiredness.Context, error) {
	return requiredness.ParseContext(r.Method)
}
