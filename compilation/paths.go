package compilation

import "github.com/masnyjimmy/reqdoc/requiredness"

type Path struct {
	Summary string     `json:"summary,omitempty" yaml:"summary,omitempty"`
	Get     *Operation `json:"get,omitempty" yaml:"get,omitempty"`
	Post    *Operation `json:"post,omitempty" yaml:"post,omitempty"`
	Put     *Operation `json:"put,omitempty" yaml:"put,omitempty"`
	Patch   *Operation `json:"patch,omitempty" yaml:"patch,omitempty"`
	Delete  *Operation `json:"delete,omitempty" yaml:"delete,omitempty"`
	Head    *Operation `json:"head,omitempty" yaml:"head,omitempty"`
	Options *Operation `json:"options,omitempty" yaml:"options,omitempty"`
	Trace   *Operation `json:"trace,omitempty" yaml:"trace,omitempty"`
}

func (p *Path) slot(method requiredness.Context) **Operation {
	switch method {
	case requiredness.Get:
		return &p.Get
	case requiredness.Post:
		return &p.Post
	case requiredness.Put:
		return &p.Put
	case requiredness.Patch:
		return &p.Patch
	case requiredness.Delete:
		return &p.Delete
	case requiredness.Head:
		return &p.Head
	case requiredness.Options:
		return &p.Options
	case requiredness.Trace:
		return &p.Trace
	}
	return nil
}
