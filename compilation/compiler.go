package compilation

import (
	"encoding/json"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/masnyjimmy/reqdoc/docs"
	"github.com/masnyjimmy/reqdoc/requiredness"
)

const mediaTypeJSON = "application/json"

type CompileContext struct {
	in  *docs.Document
	out *Document

	defaultResponses map[StatusCode]Response
	groups           map[string]paramGroup
}

func MapArray[T ~[]I, U ~[]O, I any, O any](in T, out *U, mapFn func(idx int, in I) O) {
	(*out) = make(U, len(in))

	for idx, val := range in {
		(*out)[idx] = mapFn(idx, val)
	}
}

func newCompileContext(input *docs.Document, output *Document) *CompileContext {
	return &CompileContext{
		in:  input,
		out: output,
	}
}

func (c *CompileContext) CompileInfo() {
	c.out.Info.Title = c.in.Info.Title
	c.out.Info.Version = c.in.Info.Version
	c.out.Info.Description = c.in.Info.Description
}

func (c *CompileContext) CompileServers() {
	MapArray(c.in.Servers, &c.out.Servers, func(idx int, in docs.Server) Server {
		return Server{
			Url:         in.Url,
			Description: in.Description,
		}
	})
}

func (c *CompileContext) CompileTags() {
	MapArray(c.in.Tags, &c.out.Tags, func(idx int, in docs.Tag) Tag {
		return Tag{
			Name:        in.Name,
			Description: in.Description,
		}
	})
}

// ParseSchema compiles a type expression or inline object. An omitted type
// documents as a string.
func (c *CompileContext) ParseSchema(schema docs.Schema) (SchemaOrRef, error) {
	switch v := schema.Value.(type) {
	case nil:
		return NewSchemaDef(Schema{Type: SchemaString}), nil
	case string:
		return parseSchema(v)
	case docs.Properties:
		object := Schema{
			Type:       SchemaObject,
			Required:   make([]string, 0),
			Properties: make(Properties, 0, len(v)),
		}
		for _, property := range v {
			name, opt := strings.CutSuffix(property.Name, "?")

			schema, err := c.ParseSchema(property.Schema)
			if err != nil {
				return SchemaOrRef{}, fmt.Errorf("property %q: %w", name, err)
			}

			object.Properties = append(object.Properties, Property{
				Name:   name,
				Schema: schema,
			})

			if !opt {
				object.Required = append(object.Required, name)
			}
		}
		return NewSchemaDef(object), nil
	default:
		return SchemaOrRef{}, fmt.Errorf("invalid schema type %T", schema.Value)
	}
}

func describe(schema SchemaOrRef, description string) SchemaOrRef {
	if description == "" {
		return schema
	}
	if def, ok := schema.GetSchema(); ok {
		def.Description = description
		return NewSchemaDef(def)
	}
	return schema
}

// ParseEntities documents each entity as an object schema. A field is listed
// under `required` when it resolves as required in the response context.
func (c *CompileContext) ParseEntities() error {
	if c.out.Components.Schemas == nil {
		c.out.Components.Schemas = make(map[string]Schema, len(c.in.Entities))
	}

	for _, entity := range c.in.Entities {
		object := Schema{
			Type:        SchemaObject,
			Description: entity.Description,
			Properties:  make(Properties, 0, len(entity.Fields)),
			Required:    make([]string, 0),
		}

		for _, field := range entity.Fields {
			schema, err := c.ParseSchema(field.Type)
			if err != nil {
				return fmt.Errorf("entity %v: field %v: %w", entity.Name, field.Name, err)
			}

			object.Properties = append(object.Properties, Property{
				Name:   field.Name,
				Schema: describe(schema, field.Desc),
			})

			required, err := requiredness.Resolve(field.Declaration(), requiredness.Response)
			if err != nil {
				return fmt.Errorf("entity %v: field %v: %w", entity.Name, field.Name, err)
			}

			if required {
				object.Required = append(object.Required, field.Name)
			}
		}

		c.out.Components.Schemas[entity.Name] = object
	}

	return nil
}

func (c *CompileContext) parseResponse(response docs.Response) (Response, error) {
	out := Response{
		Description: response.Description,
	}

	if len(response.TypedSchema) == 0 {
		return out, nil
	}

	out.Content = make(map[string]TypedSchema, len(response.TypedSchema))
	for mediaType, schema := range response.TypedSchema {
		outSchema, err := c.ParseSchema(schema)
		if err != nil {
			return Response{}, err
		}

		out.Content[mediaType] = TypedSchema{
			Schema: outSchema,
		}
	}

	return out, nil
}

func (c *CompileContext) ParseDefaultResponses() error {
	c.defaultResponses = make(map[StatusCode]Response, len(c.in.DefaultResponses))

	for statusCode, response := range c.in.DefaultResponses {
		out, err := c.parseResponse(response)
		if err != nil {
			return fmt.Errorf("default response %v: %w", statusCode, err)
		}
		c.defaultResponses[statusCode] = out
	}

	return nil
}

var (
	colonParamExpr  = regexp.MustCompile(`:(\w+)`)
	placeholderExpr = regexp.MustCompile(`\{(\w+)\}`)
)

// templatePath rewrites `/items/:id` into `/items/{id}`.
func templatePath(p string) string {
	return colonParamExpr.ReplaceAllString(p, "{$1}")
}

func pathPlaceholders(p string) []string {
	matches := placeholderExpr.FindAllStringSubmatch(p, -1)
	out := make([]string, len(matches))
	for idx, m := range matches {
		out[idx] = m[1]
	}
	return out
}

func operationId(method requiredness.Context, p string) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(string(method)))

	words := strings.FieldsFunc(p, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	})
	for _, word := range words {
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(word[1:])
	}
	return b.String()
}

type routeParam struct {
	param docs.Param
	in    ParamIn
}

// location is where the parameter is documented. Query parameters named
// after a path placeholder move into the path.
func (rp routeParam) location(placeholders []string) ParamIn {
	in := rp.in
	if rp.param.In != "" {
		in = ParamIn(rp.param.In)
	}
	if in == InQuery && slices.Contains(placeholders, rp.param.Name) {
		in = InPath
	}
	return in
}

func (c *CompileContext) makeParam(rp routeParam, method requiredness.Context, placeholders []string) (Parameter, error) {
	in := rp.location(placeholders)

	switch placeholder := slices.Contains(placeholders, rp.param.Name); {
	case placeholder && in != InPath:
		return Parameter{}, fmt.Errorf("%w: %v in %v shadows the path placeholder", ErrPathParamConflict, rp.param.Name, in)
	case !placeholder && in == InPath:
		return Parameter{}, fmt.Errorf("%w: %v has no placeholder in the path", ErrPathParamConflict, rp.param.Name)
	}

	schema, err := c.ParseSchema(rp.param.Type)
	if err != nil {
		return Parameter{}, fmt.Errorf("parameter %v: %w", rp.param.Name, err)
	}

	required, err := requiredness.Resolve(rp.param.Declaration(), method)
	if err != nil {
		return Parameter{}, fmt.Errorf("parameter %v: %w", rp.param.Name, err)
	}

	// OpenAPI requires path parameters to be required
	if in == InPath {
		required = true
	}

	return Parameter{
		Name:        rp.param.Name,
		In:          in,
		Description: rp.param.Desc,
		Required:    required,
		Schema:      schema,
	}, nil
}

func (c *CompileContext) collectParams(route docs.Route) ([]routeParam, error) {
	out := make([]routeParam, 0)

	for _, use := range route.Use {
		params, err := c.useParamGroup(use)
		if err != nil {
			return nil, err
		}
		for _, p := range params {
			out = append(out, routeParam{param: p, in: InQuery})
		}
	}

	for _, p := range route.Params {
		out = append(out, routeParam{param: p, in: InQuery})
	}

	for _, h := range route.Headers {
		out = append(out, routeParam{param: h, in: InHeader})
	}

	return out, nil
}

func (c *CompileContext) parseRoute(route docs.Route, method requiredness.Context, p string) (*Operation, error) {
	out := Operation{
		OperationId: route.Id,
		Summary:     route.Desc,
		Tags:        route.Tags,
		Parameters:  make([]Parameter, 0),
		Responses:   maps.Clone(c.defaultResponses),
	}

	if out.OperationId == "" {
		out.OperationId = operationId(method, p)
	}
	if out.Responses == nil {
		out.Responses = make(map[StatusCode]Response)
	}

	declared, err := c.collectParams(route)
	if err != nil {
		return nil, err
	}

	placeholders := pathPlaceholders(p)

	// path placeholders without a declaration lead the list
	for _, name := range placeholders {
		if slices.ContainsFunc(declared, func(rp routeParam) bool {
			return rp.param.Name == name && rp.location(placeholders) == InPath
		}) {
			continue
		}
		out.Parameters = append(out.Parameters, Parameter{
			Name:     name,
			In:       InPath,
			Required: true,
			Schema:   NewSchemaDef(Schema{Type: SchemaString}),
		})
	}

	for _, rp := range declared {
		param, err := c.makeParam(rp, method, placeholders)
		if err != nil {
			return nil, err
		}

		for _, existing := range out.Parameters {
			if existing.Name == param.Name && existing.In == param.In {
				return nil, fmt.Errorf("%w: %v in %v", ErrDuplicateParam, param.Name, param.In)
			}
		}

		out.Parameters = append(out.Parameters, param)
	}

	if !route.Body.IsZero() {
		schema, err := c.ParseSchema(route.Body)
		if err != nil {
			return nil, fmt.Errorf("body: %w", err)
		}
		out.RequestBody = &RequestBody{
			Required: true,
			Content: map[string]TypedSchema{
				mediaTypeJSON: {Schema: schema},
			},
		}
	}

	if route.Success != "" {
		entity, ok := c.in.Entity(route.Success)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownEntity, route.Success)
		}

		status := StatusCode("200")
		if method == requiredness.Post {
			status = "201"
		}

		description := entity.Description
		if description == "" {
			description = entity.Name
		}

		out.Responses[status] = Response{
			Description: description,
			Content: map[string]TypedSchema{
				mediaTypeJSON: {Schema: NewSchemaRef(componentRef(entity.Name))},
			},
		}
	}

	for statusCode, response := range route.Responses {
		outResponse, err := c.parseResponse(response)
		if err != nil {
			return nil, fmt.Errorf("response %v: %w", statusCode, err)
		}
		out.Responses[statusCode] = outResponse
	}

	if len(out.Responses) == 0 {
		out.Responses["200"] = Response{Description: "OK"}
	}

	return &out, nil
}

// ParseRoutes compiles routes in declaration order. Requiredness only
// affects each parameter's `required` flag, never the path or the
// parameter list.
func (c *CompileContext) ParseRoutes() error {
	c.out.Paths = make(map[string]Path)
	c.out.Operations = make([]OperationRef, 0, len(c.in.Routes))

	seen := make(map[OperationRef]struct{}, len(c.in.Routes))

	for _, route := range c.in.Routes {
		method, err := route.Context()
		if err != nil {
			return fmt.Errorf("route %v: %w", route.Path, err)
		}
		if !method.IsMethod() {
			return fmt.Errorf("route %v: %w: %v", route.Path, requiredness.ErrInvalidContext, method)
		}

		ref := OperationRef{
			Path:   templatePath(route.Path),
			Method: method,
		}

		if _, dup := seen[ref]; dup {
			return fmt.Errorf("%w: %v %v", ErrDuplicateRoute, ref.Method, ref.Path)
		}
		seen[ref] = struct{}{}

		op, err := c.parseRoute(route, method, ref.Path)
		if err != nil {
			return fmt.Errorf("route %v %v: %w", method, route.Path, err)
		}

		item := c.out.Paths[ref.Path]
		*item.slot(method) = op
		c.out.Paths[ref.Path] = item

		c.out.Operations = append(c.out.Operations, ref)
	}

	return nil
}

func (c *CompileContext) Parse() error {
	c.CompileInfo()

	c.CompileServers()

	c.CompileTags()

	if err := c.compileParamGroups(); err != nil {
		return err
	}

	if err := c.ParseEntities(); err != nil {
		return err
	}

	if err := c.ParseDefaultResponses(); err != nil {
		return err
	}

	if err := c.ParseRoutes(); err != nil {
		return err
	}

	return nil
}

func Compile(out *Document, in *docs.Document) error {
	ctx := newCompileContext(in, out)

	if err := ctx.Parse(); err != nil {
		return err
	}

	return nil
}

func compileDocument(in *docs.Document) (*Document, error) {
	out := Document{
		Openapi: OpenAPIVersion,
	}

	if err := Compile(&out, in); err != nil {
		return nil, err
	}

	return &out, nil
}

func CompileToJSON(in *docs.Document) ([]byte, error) {
	out, err := compileDocument(in)
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent(out, "", "  ")
}

func CompileToYAML(in *docs.Document) ([]byte, error) {
	out, err := compileDocument(in)
	if err != nil {
		return nil, err
	}

	return yaml.Marshal(out)
}
