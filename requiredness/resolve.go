package requiredness

import "fmt"

// Resolve computes the effective required flag of d under ctx.
//
// Precedence: context specific override, then the override's default,
// then d.Required.
func Resolve(d Declaration, ctx Context) (bool, error) {
	if !ctx.Valid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidContext, string(ctx))
	}

	switch o := d.Details.(type) {
	case nil, NoOverride:
		return d.Required, nil
	case Uniform:
		return bool(o), nil
	case Structured:
		if v, ok := resolveStructured(o, ctx); ok {
			return v, nil
		}
		return d.Required, nil
	default:
		return false, fmt.Errorf("%w: unsupported override %T for %q", ErrMalformedOverride, d.Details, d.Name)
	}
}

func resolveStructured(o Structured, ctx Context) (bool, bool) {
	if ctx == Response {
		if o.Response != nil {
			return *o.Response, true
		}
	} else {
		if v, ok := resolveRequest(o.Request, ctx); ok {
			return v, true
		}
		if v, ok := o.Methods[ctx]; ok {
			return v, true
		}
	}

	if o.Default != nil {
		return *o.Default, true
	}

	return false, false
}

func resolveRequest(r RequestOverride, method Context) (bool, bool) {
	switch r := r.(type) {
	case UniformRequest:
		// request: false is "not configured"
		if r {
			return true, true
		}
	case PerMethod:
		if v, ok := r.Methods[method]; ok {
			return v, true
		}
		if r.Default != nil {
			return *r.Default, true
		}
	}
	return false, false
}
