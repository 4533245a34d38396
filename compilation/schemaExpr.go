package compilation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var schemaExprRegex = regexp.MustCompile(`^(?:((?:boolean|string|integer|number)\??)(?:\((.*)\))?|(?:<(\w+)>))((?:\??\[[^\]]*\])*)$`)

// typeAliases maps the class-like names used by route DSLs (String,
// Integer, DateTime, ...) onto schema expressions.
var typeAliases = map[string]string{
	"String":     "string",
	"Symbol":     "string",
	"Integer":    "integer",
	"Float":      "number",
	"BigDecimal": "number",
	"Numeric":    "number",
	"Boolean":    "boolean",
	"Date":       "string($date)",
	"DateTime":   "string($date-time)",
	"Time":       "string($date-time)",
	"File":       "string($binary)",
}

// normalizeTypeExpr rewrites a leading alias, keeping any nullable marker
// and array suffix.
func normalizeTypeExpr(expr string) string {
	expr = strings.TrimSpace(expr)

	end := strings.IndexAny(expr, "?([")
	if end == -1 {
		end = len(expr)
	}

	alias, ok := typeAliases[expr[:end]]
	if !ok {
		return expr
	}

	rest := expr[end:]
	if base, params, found := strings.Cut(alias, "("); found && strings.HasPrefix(rest, "?") {
		// keep nullable marker in front of the alias parameters
		return base + "?(" + params + rest[1:]
	}
	return alias + rest
}

// arraySuffixExpr matches one `[...]` suffix, optionally nullable: `?[1:5,*]`.
var arraySuffixExpr = regexp.MustCompile(`(\?)?\[([^\]]*)\]`)

// parseBounds reads `min:max`, `min:`, `:max` or a bare `max`.
func parseBounds(expr string) (lo, hi *int, err error) {
	loStr, hiStr, found := strings.Cut(expr, ":")
	if !found {
		loStr, hiStr = "", expr
	}

	parse := func(s string) (*int, error) {
		if s = strings.TrimSpace(s); s == "" {
			return nil, nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid bound %q", s)
		}
		return &v, nil
	}

	if lo, err = parse(loStr); err != nil {
		return nil, nil, err
	}
	if hi, err = parse(hiStr); err != nil {
		return nil, nil, err
	}
	return lo, hi, nil
}

func toUint(v *int) (*uint, error) {
	if v == nil {
		return nil, nil
	}
	if *v < 0 {
		return nil, fmt.Errorf("negative bound %d", *v)
	}
	u := uint(*v)
	return &u, nil
}

func wrapArray(items SchemaOrRef, nullable bool, params string) (Schema, error) {
	out := Schema{
		Type:     SchemaArray,
		Items:    &items,
		nullable: nullable,
	}

	for param := range strings.SplitSeq(params, ",") {
		switch param = strings.TrimSpace(param); param {
		case "":
		case "*":
			out.UniqueItems = true
		default:
			lo, hi, err := parseBounds(param)
			if err != nil {
				return Schema{}, err
			}
			if out.MinItems, err = toUint(lo); err != nil {
				return Schema{}, err
			}
			if out.MaxItems, err = toUint(hi); err != nil {
				return Schema{}, err
			}
		}
	}

	return out, nil
}

// applyBounds maps a range onto value bounds for numbers and length bounds
// for strings.
func applyBounds(out *Schema, param string) error {
	lo, hi, err := parseBounds(param)
	if err != nil {
		return err
	}

	switch out.Type {
	case SchemaInteger, SchemaNumber:
		out.Minimum, out.Maximum = lo, hi
	case SchemaString:
		if out.MinLength, err = toUint(lo); err != nil {
			return err
		}
		if out.MaxLength, err = toUint(hi); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%s does not take a range", out.Type)
	}
	return nil
}

func parseDefault(t SchemaType, param string) (any, error) {
	if param == "null" {
		return nil, nil
	}

	switch t {
	case SchemaInteger:
		return strconv.Atoi(param)
	case SchemaNumber:
		return strconv.ParseFloat(param, 64)
	case SchemaBoolean:
		return strconv.ParseBool(param)
	}
	return nil, fmt.Errorf("unknown parameter %q for %s", param, t)
}

// parseScalar builds a primitive schema. Parameters are `$format`, a range
// or a default value.
func parseScalar(t string, params string) (Schema, error) {
	t, nullable := strings.CutSuffix(t, "?")

	out := Schema{
		Type:     SchemaType(t),
		nullable: nullable,
	}

	for param := range strings.SplitSeq(params, ",") {
		param = strings.TrimSpace(param)

		switch {
		case param == "":
		case strings.HasPrefix(param, "$") && len(param) > 1:
			out.Format = param[1:]
		case strings.Contains(param, ":"):
			if err := applyBounds(&out, param); err != nil {
				return Schema{}, err
			}
		default:
			v, err := parseDefault(out.Type, param)
			if err != nil {
				return Schema{}, fmt.Errorf("invalid default %q: %w", param, err)
			}
			out.Default = &v
		}
	}

	return out, nil
}

func parseSchema(expr string) (SchemaOrRef, error) {
	expr = normalizeTypeExpr(expr)
	sub := schemaExprRegex.FindStringSubmatch(expr)
	if sub == nil {
		return SchemaOrRef{}, fmt.Errorf("invalid schema expression: %s", expr)
	}

	baseType, params, ref, arrays := sub[1], sub[2], sub[3], sub[4]

	var out SchemaOrRef

	if ref != "" {
		out = NewSchemaRef(componentRef(ref))
	} else {
		schema, err := parseScalar(baseType, params)
		if err != nil {
			return SchemaOrRef{}, err
		}
		out = NewSchemaDef(schema)
	}

	// each suffix wraps the previous result: `string[][]` is an array of arrays
	for _, m := range arraySuffixExpr.FindAllStringSubmatch(arrays, -1) {
		schema, err := wrapArray(out, m[1] != "", m[2])
		if err != nil {
			return SchemaOrRef{}, fmt.Errorf("invalid array suffix %q: %w", m[0], err)
		}
		out = NewSchemaDef(schema)
	}

	return out, nil
}
