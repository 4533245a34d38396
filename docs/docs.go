package docs

type Info struct {
	Title       string `yaml:"title" validate:"required"`
	Version     string `yaml:"version" validate:"required"`
	Description string `yaml:"description,omitempty"`
}

type Server struct {
	Url         string `yaml:"url" validate:"required"`
	Description string `yaml:"description,omitempty"`
}

type Tag struct {
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description,omitempty"`
}

// Document is the API definition read from YAML.
type Document struct {
	Info             Info        `yaml:"info"`
	Servers          []Server    `yaml:"servers,omitempty" validate:"dive"`
	Tags             []Tag       `yaml:"tags,omitempty" validate:"dive"`
	Entities         []Entity    `yaml:"entities,omitempty" validate:"unique=Name,dive"`
	ParamGroups      ParamGroups `yaml:"paramGroups,omitempty" validate:"dive,keys,required,endkeys,dive"`
	DefaultResponses Responses   `yaml:"defaultResponses,omitempty"`
	Routes           []Route     `yaml:"routes,omitempty" validate:"dive"`
}

func (d *Document) Entity(name string) (Entity, bool) {
	for _, e := range d.Entities {
		if e.Name == name {
			return e, true
		}
	}
	return Entity{}, false
}
