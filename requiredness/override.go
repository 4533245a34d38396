package requiredness

// Override replaces a declaration's base requiredness, optionally per context.
// A nil Override behaves like NoOverride.
type Override interface {
	isOverride()
}

type NoOverride struct{}

// Uniform applies the same value to every context.
type Uniform bool

// Structured varies requiredness by context.
type Structured struct {
	Request RequestOverride
	// Methods holds method keys given at the top level, next to "response".
	Methods  map[Context]bool
	Response *bool
	Default  *bool
}

func (NoOverride) isOverride() {}
func (Uniform) isOverride()    {}
func (Structured) isOverride() {}

// RequestOverride is the "request" part of a Structured override.
// A nil RequestOverride behaves like NoRequestOverride.
type RequestOverride interface {
	isRequestOverride()
}

type NoRequestOverride struct{}

// UniformRequest applies to all request methods. A false value is treated
// as not configured.
type UniformRequest bool

type PerMethod struct {
	Methods map[Context]bool
	Default *bool
}

func (NoRequestOverride) isRequestOverride() {}
func (UniformRequest) isRequestOverride()    {}
func (PerMethod) isRequestOverride()         {}

// Declaration is a documented parameter or entity field.
type Declaration struct {
	Name     string
	Required bool
	Details  Override
}

func (d Declaration) RequiredFor(ctx Context) (bool, error) {
	return Resolve(d, ctx)
}

func boolPtr(v bool) *bool {
	return &v
}
