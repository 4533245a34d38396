package compilation

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/masnyjimmy/reqdoc/docs"
)

// groupExpr matches both group definitions `paged(T)` and uses `paged(integer)`.
var groupExpr = regexp.MustCompile(`^([A-Za-z_]\w*)(?:\(\s*([^()]+?)\s*\))?$`)

// paramGroup is a parameter group whose `#arg` placeholders are substituted
// in type expressions when the group is used.
type paramGroup struct {
	args   []string
	params docs.Params
}

func splitArgs(args string) []string {
	if strings.TrimSpace(args) == "" {
		return nil
	}

	out := make([]string, 0)
	for arg := range strings.SplitSeq(args, ",") {
		out = append(out, strings.TrimSpace(arg))
	}
	return out
}

func substituteSchema(schema docs.Schema, r *strings.Replacer) docs.Schema {
	switch t := schema.Value.(type) {
	case string:
		return docs.Schema{Value: r.Replace(t)}
	case docs.Properties:
		out := slices.Clone(t)
		for idx, prop := range out {
			out[idx].Schema = substituteSchema(prop.Schema, r)
		}
		return docs.Schema{Value: out}
	default:
		return schema
	}
}

func (g paramGroup) expand(values []string) (docs.Params, error) {
	if len(g.args) != len(values) {
		return nil, fmt.Errorf("invalid number of values: %v (expected: %v)", len(values), len(g.args))
	}

	out := slices.Clone(g.params)
	if len(g.args) == 0 {
		return out, nil
	}

	oldnew := make([]string, 0, len(g.args)*2)
	for idx, arg := range g.args {
		oldnew = append(oldnew, "#"+arg, values[idx])
	}
	replacer := strings.NewReplacer(oldnew...)

	for idx, param := range out {
		out[idx].Type = substituteSchema(param.Type, replacer)
	}

	return out, nil
}

func (c *CompileContext) compileParamGroups() error {
	c.groups = make(map[string]paramGroup, len(c.in.ParamGroups))

	for expr, params := range c.in.ParamGroups {
		sub := groupExpr.FindStringSubmatch(expr)
		if sub == nil {
			return fmt.Errorf("invalid param group definition: %v", expr)
		}

		if _, dup := c.groups[sub[1]]; dup {
			return fmt.Errorf("%w: %v", ErrDuplicateParamGroup, sub[1])
		}

		c.groups[sub[1]] = paramGroup{
			args:   splitArgs(sub[2]),
			params: params,
		}
	}
	return nil
}

func (c *CompileContext) useParamGroup(expr string) (docs.Params, error) {
	sub := groupExpr.FindStringSubmatch(expr)
	if sub == nil {
		return nil, fmt.Errorf("invalid param group use: %v\n expected: ident[(arg(,args)...)]", expr)
	}

	group, has := c.groups[sub[1]]
	if !has {
		return nil, fmt.Errorf("%w: %v", ErrUnknownParamGroup, sub[1])
	}

	return group.expand(splitArgs(sub[2]))
}
