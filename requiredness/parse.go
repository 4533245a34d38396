package requiredness

import (
	"fmt"
	"maps"
	"slices"
)

const (
	keyRequest  = "request"
	keyResponse = "response"
	keyDefault  = "default"
)

// ParseOverride converts a decoded requiredDetails value into an Override.
// raw is nil, a bool or a mapping as produced by a YAML or JSON decoder.
func ParseOverride(raw any) (Override, error) {
	switch v := raw.(type) {
	case nil:
		return NoOverride{}, nil
	case bool:
		return Uniform(v), nil
	}

	m, err := asMap(raw)
	if err != nil {
		return nil, err
	}

	out := Structured{
		Request: NoRequestOverride{},
	}

	for _, key := range sortedKeys(m) {
		value := m[key]

		switch key {
		case keyRequest:
			if out.Request, err = parseRequest(value); err != nil {
				return nil, err
			}
		case keyResponse:
			b, err := asBool(key, value)
			if err != nil {
				return nil, err
			}
			out.Response = boolPtr(b)
		case keyDefault:
			b, err := asBool(key, value)
			if err != nil {
				return nil, err
			}
			out.Default = boolPtr(b)
		default:
			method, err := parseMethodKey(key)
			if err != nil {
				return nil, err
			}
			b, err := asBool(key, value)
			if err != nil {
				return nil, err
			}
			if out.Methods == nil {
				out.Methods = make(map[Context]bool)
			}
			if _, dup := out.Methods[method]; dup {
				return nil, duplicateKey(key)
			}
			out.Methods[method] = b
		}
	}

	return out, nil
}

func parseRequest(raw any) (RequestOverride, error) {
	switch v := raw.(type) {
	case nil:
		return NoRequestOverride{}, nil
	case bool:
		return UniformRequest(v), nil
	}

	m, err := asMap(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: request must be a boolean or a mapping, got %T", ErrMalformedOverride, raw)
	}

	out := PerMethod{
		Methods: make(map[Context]bool, len(m)),
	}

	for _, key := range sortedKeys(m) {
		b, err := asBool("request."+key, m[key])
		if err != nil {
			return nil, err
		}

		if key == keyDefault {
			out.Default = boolPtr(b)
			continue
		}

		method, err := parseMethodKey(key)
		if err != nil {
			return nil, err
		}
		if _, dup := out.Methods[method]; dup {
			return nil, duplicateKey("request." + key)
		}
		out.Methods[method] = b
	}

	return out, nil
}

func parseMethodKey(key string) (Context, error) {
	c, err := ParseContext(key)
	if err != nil || !c.IsMethod() {
		return "", fmt.Errorf("%w: unknown key %q", ErrMalformedOverride, key)
	}
	return c, nil
}

// duplicateKey reports a method given twice in different letter case.
func duplicateKey(key string) error {
	return fmt.Errorf("%w: duplicate key %q", ErrMalformedOverride, key)
}

func asBool(key string, raw any) (bool, error) {
	b, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s must be a boolean, got %T", ErrMalformedOverride, key, raw)
	}
	return b, nil
}

func asMap(raw any) (map[string]any, error) {
	switch v := raw.(type) {
	case map[string]any:
		return v, nil
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: key must be a string, got %T", ErrMalformedOverride, k)
			}
			out[key] = val
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: expected a boolean or a mapping, got %T", ErrMalformedOverride, raw)
	}
}

// sortedKeys keeps error messages stable across runs.
func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
