package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborschema/jsonschema/document"
	"github.com/arborschema/jsonschema/internal/testutil"
)

func validate(t *testing.T, schema, instance string) error {
	t.Helper()
	loader := insertRoot(t, schema)
	v := NewValidator(loader.Corpus())
	node := testutil.MustDecodeJSON(t.Fatalf, []byte(instance))
	return v.Validate(node)
}

func TestValidateTypeMismatch(t *testing.T) {
	err := validate(t, `{"type": "string"}`, `42`)
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "type", ve.Keyword)
}

func TestValidateTypeArrayAccepted(t *testing.T) {
	err := validate(t, `{"type": ["string", "integer"]}`, `42`)
	assert.NoError(t, err)
}

func TestValidateIntegerAcceptedAsNumber(t *testing.T) {
	err := validate(t, `{"type": "number"}`, `42`)
	assert.NoError(t, err)
}

func TestValidateEnum(t *testing.T) {
	assert.NoError(t, validate(t, `{"enum": ["a", "b"]}`, `"a"`))
	assert.Error(t, validate(t, `{"enum": ["a", "b"]}`, `"c"`))
}

func TestValidateRequired(t *testing.T) {
	schema := `{"type": "object", "required": ["name"]}`
	assert.NoError(t, validate(t, schema, `{"name": "x"}`))
	assert.Error(t, validate(t, schema, `{}`))
}

func TestValidatePropertiesRecurse(t *testing.T) {
	schema := `{"type": "object", "properties": {"age": {"type": "integer", "minimum": 0}}}`
	assert.NoError(t, validate(t, schema, `{"age": 5}`))
	assert.Error(t, validate(t, schema, `{"age": -1}`))
}

func TestValidateAdditionalPropertiesFalse(t *testing.T) {
	schema := `{"type": "object", "properties": {"a": {"type": "string"}}, "additionalProperties": false}`
	assert.NoError(t, validate(t, schema, `{"a": "x"}`))
	assert.Error(t, validate(t, schema, `{"a": "x", "b": 1}`))
}

func TestValidateAdditionalPropertiesSchema(t *testing.T) {
	schema := `{"type": "object", "properties": {"a": {"type": "string"}}, "additionalProperties": {"type": "integer"}}`
	assert.NoError(t, validate(t, schema, `{"a": "x", "b": 1}`))
	assert.Error(t, validate(t, schema, `{"a": "x", "b": "not an int"}`))
}

func TestValidatePatternProperties(t *testing.T) {
	schema := `{"type": "object", "patternProperties": {"^S_": {"type": "string"}}}`
	assert.NoError(t, validate(t, schema, `{"S_name": "x"}`))
	assert.Error(t, validate(t, schema, `{"S_name": 1}`))
}

func TestValidatePropertiesTakePrecedenceOverPatternProperties(t *testing.T) {
	// "S_name" is declared in `properties` as a string; `patternProperties`
	// would also match it and require an integer. Per precedence, only
	// `properties` applies to a key declared there.
	schema := `{
		"type": "object",
		"properties": {"S_name": {"type": "string"}},
		"patternProperties": {"^S_": {"type": "integer"}}
	}`
	assert.NoError(t, validate(t, schema, `{"S_name": "x"}`))
	assert.Error(t, validate(t, schema, `{"S_name": 1}`))
}

func TestValidatePropertyCount(t *testing.T) {
	schema := `{"type": "object", "minProperties": 1, "maxProperties": 2}`
	assert.Error(t, validate(t, schema, `{}`))
	assert.NoError(t, validate(t, schema, `{"a": 1}`))
	assert.Error(t, validate(t, schema, `{"a": 1, "b": 2, "c": 3}`))
}

func TestValidateDependenciesArrayForm(t *testing.T) {
	schema := `{"type": "object", "dependencies": {"credit_card": ["billing_address"]}}`
	assert.NoError(t, validate(t, schema, `{}`))
	assert.NoError(t, validate(t, schema, `{"credit_card": 1, "billing_address": "x"}`))
	assert.Error(t, validate(t, schema, `{"credit_card": 1}`))
}

func TestValidateDependenciesSchemaForm(t *testing.T) {
	schema := `{"type": "object", "dependencies": {"credit_card": {"required": ["billing_address"]}}}`
	assert.NoError(t, validate(t, schema, `{}`))
	assert.Error(t, validate(t, schema, `{"credit_card": 1}`))
}

func TestValidateArrayItemsSingleSchema(t *testing.T) {
	schema := `{"type": "array", "items": {"type": "integer"}}`
	assert.NoError(t, validate(t, schema, `[1, 2, 3]`))
	assert.Error(t, validate(t, schema, `[1, "x"]`))
}

func TestValidateArrayItemsTupleWithAdditionalItems(t *testing.T) {
	schema := `{"type": "array", "items": [{"type": "integer"}, {"type": "string"}], "additionalItems": false}`
	assert.NoError(t, validate(t, schema, `[1, "x"]`))
	assert.NoError(t, validate(t, schema, `[1]`))
	assert.Error(t, validate(t, schema, `[1, "x", "extra"]`))
}

func TestValidateArrayUniqueItems(t *testing.T) {
	schema := `{"type": "array", "uniqueItems": true}`
	assert.NoError(t, validate(t, schema, `[1, 2, 3]`))
	assert.Error(t, validate(t, schema, `[1, 2, 1]`))
}

func TestValidateArraySize(t *testing.T) {
	schema := `{"type": "array", "minItems": 1, "maxItems": 2}`
	assert.Error(t, validate(t, schema, `[]`))
	assert.NoError(t, validate(t, schema, `[1]`))
	assert.Error(t, validate(t, schema, `[1, 2, 3]`))
}

func TestValidateStringLength(t *testing.T) {
	schema := `{"type": "string", "minLength": 2, "maxLength": 4}`
	assert.Error(t, validate(t, schema, `"a"`))
	assert.NoError(t, validate(t, schema, `"ab"`))
	assert.Error(t, validate(t, schema, `"abcde"`))
}

func TestValidateStringLengthCountsCodePoints(t *testing.T) {
	// "héllo" is 5 Unicode code points but 6 UTF-8 bytes (é encodes to 2
	// bytes); maxLength: 5 only accepts it under code-point counting.
	schema := `{"type": "string", "maxLength": 5}`
	assert.NoError(t, validate(t, schema, `"héllo"`))
}

func TestValidateNumberBounds(t *testing.T) {
	schema := `{"type": "number", "minimum": 0, "maximum": 10}`
	assert.Error(t, validate(t, schema, `-1`))
	assert.NoError(t, validate(t, schema, `5`))
	assert.Error(t, validate(t, schema, `11`))
}

func TestValidateNumberExclusiveBounds(t *testing.T) {
	schema := `{"type": "number", "minimum": 0, "exclusiveMinimum": true, "maximum": 10, "exclusiveMaximum": true}`
	assert.Error(t, validate(t, schema, `0`))
	assert.NoError(t, validate(t, schema, `1`))
	assert.Error(t, validate(t, schema, `10`))
}

func TestValidateMultipleOf(t *testing.T) {
	schema := `{"type": "number", "multipleOf": 2}`
	assert.NoError(t, validate(t, schema, `4`))
	assert.Error(t, validate(t, schema, `5`))
}

func TestValidateRefChasesLocalDefinition(t *testing.T) {
	schema := `{
		"type": "object",
		"properties": {"tag": {"$ref": "#/$defs/tag"}},
		"$defs": {"tag": {"type": "string", "minLength": 1}}
	}`
	assert.NoError(t, validate(t, schema, `{"tag": "x"}`))
	assert.Error(t, validate(t, schema, `{"tag": ""}`))
}

func TestValidateUnsupportedKeywordOnVisitedNodeIsFatal(t *testing.T) {
	err := validate(t, `{"allOf": [{"type": "string"}]}`, `"x"`)
	require.Error(t, err)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	var unsupported *UnsupportedKeywordError
	require.ErrorAs(t, schemaErr.Err, &unsupported)
	assert.Equal(t, "allOf", unsupported.Keyword)
}

func TestValidateUnsupportedKeywordOnUnreachedBranchIsIgnored(t *testing.T) {
	// "b"'s subschema names an unsupported keyword, but the instance
	// never has a "b" property, so properties.b is never visited and
	// the unsupported keyword is never checked.
	schema := `{
		"type": "object",
		"properties": {
			"a": {"type": "string"},
			"b": {"allOf": [{"type": "string"}]}
		}
	}`
	assert.NoError(t, validate(t, schema, `{"a": "x"}`))
}

func TestValidateRefCycleIsFatalNotAStackOverflow(t *testing.T) {
	schema := `{
		"$defs": {
			"a": {"$ref": "#/$defs/b"},
			"b": {"$ref": "#/$defs/a"}
		},
		"$ref": "#/$defs/a"
	}`
	err := validate(t, schema, `"anything"`)
	require.Error(t, err)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.ErrorIs(t, schemaErr.Err, ErrRefCycle)
}

func TestValidateBooleanSchemas(t *testing.T) {
	assert.NoError(t, validate(t, `true`, `{"anything": "goes"}`))
	assert.Error(t, validate(t, `false`, `{"anything": "goes"}`))
}

func TestValidateDefaultsInsertion(t *testing.T) {
	loader := insertRoot(t, `{"type": "object", "properties": {"count": {"type": "integer", "default": 0}}}`)
	v := NewValidator(loader.Corpus()).EnableDefaults(true)

	node, err := document.DecodeJSON([]byte(`{}`))
	require.NoError(t, err)
	require.NoError(t, v.Validate(node))

	obj, ok := node.Object()
	require.True(t, ok)
	count, ok := obj.Get("count")
	require.True(t, ok, "default was not inserted into instance:\n%s", testutil.Dump(node))
	f, _ := count.Float64()
	assert.Equal(t, float64(0), f, "unexpected instance after default insertion:\n%s", testutil.Dump(node))
}

func TestValidateDefaultsNotInsertedWhenDisabled(t *testing.T) {
	loader := insertRoot(t, `{"type": "object", "properties": {"count": {"type": "integer", "default": 0}}}`)
	v := NewValidator(loader.Corpus())

	node, err := document.DecodeJSON([]byte(`{}`))
	require.NoError(t, err)
	require.NoError(t, v.Validate(node))

	obj, _ := node.Object()
	assert.Equal(t, 0, obj.Len())
}
