package docs

import "github.com/masnyjimmy/reqdoc/requiredness"

type ParamIn string

const (
	InQuery  ParamIn = "query"
	InPath   ParamIn = "path"
	InHeader ParamIn = "header"
)

type Param struct {
	Name            string          `yaml:"name" validate:"required"`
	In              ParamIn         `yaml:"in,omitempty" validate:"omitempty,oneof=query path header"`
	Type            Schema          `yaml:"type"`
	Desc            string          `yaml:"desc,omitempty"`
	Required        bool            `yaml:"required,omitempty"`
	RequiredDetails RequiredDetails `yaml:"requiredDetails,omitempty"`
}

func (p Param) Declaration() requiredness.Declaration {
	return requiredness.Declaration{
		Name:     p.Name,
		Required: p.Required,
		Details:  p.RequiredDetails.Override,
	}
}

type Params = []Param

// ParamGroups are named, reusable parameter lists pulled into routes with `use`.
type ParamGroups = map[string]Params
