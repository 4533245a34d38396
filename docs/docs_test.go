package docs_test

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/masnyjimmy/reqdoc/docs"
	"github.com/masnyjimmy/reqdoc/requiredness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const itemsYAML = `
info:
  title: Items
  version: "1.0"
entities:
  - name: ExposedModel
    fields:
      - name: name
        type: string
        requiredDetails:
          request: {GET: false, POST: true, PUT: true, default: true}
          response: false
      - name: alt_description
        type: string
        required: true
        requiredDetails:
          request: false
paramGroups:
  mixed_requirements:
    - name: name
      type: string
      desc: name of item
      required: true
      requiredDetails:
        request: {GET: false, POST: true, PUT: true, default: true}
    - name: alt_name
      type: string
routes:
  - method: GET
    path: /items
    use: [mixed_requirements]
    success: ExposedModel
`

func decode(t *testing.T, src string) docs.Document {
	t.Helper()
	var document docs.Document
	require.NoError(t, yaml.Unmarshal([]byte(src), &document))
	return document
}

func TestDecodeDocument(t *testing.T) {
	document := decode(t, itemsYAML)
	require.NoError(t, document.Validate())

	entity, ok := document.Entity("ExposedModel")
	require.True(t, ok)
	require.Len(t, entity.Fields, 2)
	assert.Equal(t, "string", entity.Fields[0].Type.Value)

	resp, err := entity.Fields[0].Declaration().RequiredFor(requiredness.Response)
	require.NoError(t, err)
	assert.False(t, resp)

	resp, err = entity.Fields[1].Declaration().RequiredFor(requiredness.Response)
	require.NoError(t, err)
	assert.True(t, resp)

	group := document.ParamGroups["mixed_requirements"]
	require.Len(t, group, 2)

	name := group[0].Declaration()
	get, err := name.RequiredFor(requiredness.Get)
	require.NoError(t, err)
	assert.False(t, get)

	patch, err := name.RequiredFor(requiredness.Patch)
	require.NoError(t, err)
	assert.True(t, patch)

	_, isNone := group[1].RequiredDetails.Override.(requiredness.NoOverride)
	assert.True(t, isNone || group[1].RequiredDetails.Override == nil)

	ctx, err := document.Routes[0].Context()
	require.NoError(t, err)
	assert.Equal(t, requiredness.Get, ctx)
}

func TestDecodeMalformedRequiredDetails(t *testing.T) {
	src := `
info: {title: t, version: "1"}
paramGroups:
  g:
    - name: a
      requiredDetails:
        request: GET
`
	var document docs.Document
	err := yaml.Unmarshal([]byte(src), &document)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed required override")
}

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		message string
	}{
		{
			name: "unknown method",
			src: `
info: {title: t, version: "1"}
routes:
  - {method: FETCH, path: /items}
`,
			message: "Method: must be one of",
		},
		{
			name: "relative path",
			src: `
info: {title: t, version: "1"}
routes:
  - {method: GET, path: items}
`,
			message: "Path: must start with",
		},
		{
			name: "missing title",
			src: `
info: {version: "1"}
`,
			message: "Title: required",
		},
		{
			name: "duplicate entity",
			src: `
info: {title: t, version: "1"}
entities:
  - {name: A, fields: []}
  - {name: A, fields: []}
`,
			message: "Name must be unique",
		},
		{
			name: "unnamed param",
			src: `
info: {title: t, version: "1"}
paramGroups:
  g:
    - {type: string}
`,
			message: "Name: required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			document := decode(t, tt.src)
			err := document.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestDecodeInlineSchemaKeepsOrder(t *testing.T) {
	var schema docs.Schema
	require.NoError(t, yaml.Unmarshal([]byte("{b: string, a?: integer, c: <Item>}"), &schema))

	props, ok := schema.Value.(docs.Properties)
	require.True(t, ok)
	require.Len(t, props, 3)
	assert.Equal(t, "b", props[0].Name)
	assert.Equal(t, "a?", props[1].Name)
	assert.Equal(t, "c", props[2].Name)
	assert.Equal(t, "<Item>", props[2].Schema.Value)
}
