package docs

import "github.com/masnyjimmy/reqdoc/requiredness"

// Field is an exposed attribute of a response entity.
type Field struct {
	Name            string          `yaml:"name" validate:"required"`
	Type            Schema          `yaml:"type"`
	Desc            string          `yaml:"desc,omitempty"`
	Required        bool            `yaml:"required,omitempty"`
	RequiredDetails RequiredDetails `yaml:"requiredDetails,omitempty"`
}

func (f Field) Declaration() requiredness.Declaration {
	return requiredness.Declaration{
		Name:     f.Name,
		Required: f.Required,
		Details:  f.RequiredDetails.Override,
	}
}

type Entity struct {
	Name        string  `yaml:"name" validate:"required"`
	Description string  `yaml:"description,omitempty"`
	Fields      []Field `yaml:"fields" validate:"unique=Name,dive"`
}
