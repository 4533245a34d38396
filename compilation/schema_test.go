package compilation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchemaExpressions(t *testing.T) {
	tests := []struct {
		expr   string
		typ    SchemaType
		format string
	}{
		{"string", SchemaString, ""},
		{"String", SchemaString, ""},
		{"Integer", SchemaInteger, ""},
		{"Float", SchemaNumber, ""},
		{"Boolean", SchemaBoolean, ""},
		{"DateTime", SchemaString, "date-time"},
		{"string($email)", SchemaString, "email"},
		{"integer(1:10)", SchemaInteger, ""},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			out, err := parseSchema(tt.expr)
			require.NoError(t, err)

			schema, ok := out.GetSchema()
			require.True(t, ok)
			assert.Equal(t, tt.typ, schema.Type)
			assert.Equal(t, tt.format, schema.Format)
		})
	}
}

func TestParseSchemaAliasNullable(t *testing.T) {
	out, err := parseSchema("Date?")
	require.NoError(t, err)

	schema, ok := out.GetSchema()
	require.True(t, ok)
	assert.True(t, schema.nullable)
	assert.Equal(t, "date", schema.Format)
}

func TestParseSchemaArrays(t *testing.T) {
	out, err := parseSchema("<Item>[1:5,*]")
	require.NoError(t, err)

	schema, ok := out.GetSchema()
	require.True(t, ok)
	assert.Equal(t, SchemaArray, schema.Type)
	assert.True(t, schema.UniqueItems)
	require.NotNil(t, schema.MinItems)
	assert.EqualValues(t, 1, *schema.MinItems)

	ref, ok := schema.Items.GetRef()
	require.True(t, ok)
	assert.Equal(t, "#/components/schemas/Item", ref)

	out, err = parseSchema("String[][]")
	require.NoError(t, err)
	schema, _ = out.GetSchema()
	assert.Equal(t, SchemaArray, schema.Type)
	inner, ok := schema.Items.GetSchema()
	require.True(t, ok)
	assert.Equal(t, SchemaArray, inner.Type)
}

func TestPropertiesKeepOrder(t *testing.T) {
	schema := Schema{
		Type: SchemaObject,
		Properties: Properties{
			{Name: "zeta", Schema: NewSchemaDef(Schema{Type: SchemaString})},
			{Name: "alpha", Schema: NewSchemaRef(componentRef("Item"))},
		},
		Required: []string{"zeta"},
	}

	bytes, err := json.Marshal(NewSchemaDef(schema))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"object","properties":{"zeta":{"type":"string"},"alpha":{"$ref":"#/components/schemas/Item"}},"required":["zeta"]}`, string(bytes))
	assert.Less(t, strings.Index(string(bytes), "zeta"), strings.Index(string(bytes), "alpha"))

	var decoded SchemaOrRef
	require.NoError(t, json.Unmarshal(bytes, &decoded))
	back, ok := decoded.GetSchema()
	require.True(t, ok)
	require.Len(t, back.Properties, 2)
	assert.Equal(t, "zeta", back.Properties[0].Name)
	assert.Equal(t, "alpha", back.Properties[1].Name)

	yamlBytes, err := yaml.Marshal(NewSchemaDef(schema))
	require.NoError(t, err)
	assert.Less(t, strings.Index(string(yamlBytes), "zeta"), strings.Index(string(yamlBytes), "alpha"))
}

func TestNullableSchemaMarshal(t *testing.T) {
	out, err := parseSchema("integer?")
	require.NoError(t, err)

	bytes, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"oneOf":[{"type":"null"},{"type":"integer"}]}`, string(bytes))
}

func TestParseSchemaParameters(t *testing.T) {
	out, err := parseSchema("string(1:64)")
	require.NoError(t, err)
	schema, _ := out.GetSchema()
	require.NotNil(t, schema.MinLength)
	require.NotNil(t, schema.MaxLength)
	assert.EqualValues(t, 1, *schema.MinLength)
	assert.EqualValues(t, 64, *schema.MaxLength)

	out, err = parseSchema("integer(:10, 5)")
	require.NoError(t, err)
	schema, _ = out.GetSchema()
	assert.Nil(t, schema.Minimum)
	require.NotNil(t, schema.Maximum)
	assert.Equal(t, 10, *schema.Maximum)
	require.NotNil(t, schema.Default)
	assert.Equal(t, 5, *schema.Default)

	out, err = parseSchema("boolean(false)")
	require.NoError(t, err)
	schema, _ = out.GetSchema()
	require.NotNil(t, schema.Default)
	assert.Equal(t, false, *schema.Default)

	for _, expr := range []string{"boolean(1:2)", "integer(abc)", "string[-1:2]", "string(x)"} {
		_, err := parseSchema(expr)
		assert.Error(t, err, expr)
	}
}
