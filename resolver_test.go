package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborschema/jsonschema/document"
)

func TestResolveDocumentAssignsURIs(t *testing.T) {
	doc, err := document.DecodeJSON([]byte(`{
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"tag": {"$ref": "#/$defs/tag"}
		},
		"$defs": {
			"tag": {"type": "string", "minLength": 1}
		}
	}`))
	require.NoError(t, err)

	res, err := resolveDocument(doc, RootURI)
	require.NoError(t, err)

	_, ok := res.nodes[NewSchemaURI(RootURI, "")]
	assert.True(t, ok)
	_, ok = res.nodes[NewSchemaURI(RootURI, "/properties/name")]
	assert.True(t, ok)
	_, ok = res.nodes[NewSchemaURI(RootURI, "/$defs/tag")]
	assert.True(t, ok)
	assert.Empty(t, res.external)
}

func TestResolveDocumentMissingLocalRefIsFatal(t *testing.T) {
	doc, err := document.DecodeJSON([]byte(`{"properties": {"x": {"$ref": "#/$defs/missing"}}}`))
	require.NoError(t, err)

	_, err = resolveDocument(doc, RootURI)
	require.Error(t, err)
	schemaErr, ok := err.(*SchemaError)
	require.True(t, ok)
	assert.ErrorIs(t, schemaErr.Err, ErrMissingLocalRef)
}

func TestResolveDocumentExternalRefIsReturned(t *testing.T) {
	doc, err := document.DecodeJSON([]byte(`{"properties": {"x": {"$ref": "https://example.com/other.json#/foo"}}}`))
	require.NoError(t, err)

	res, err := resolveDocument(doc, RootURI)
	require.NoError(t, err)
	assert.Contains(t, res.external, "https://example.com/other.json#/foo")
}

func TestResolveDocumentIngestsUnreachableUnsupportedKeyword(t *testing.T) {
	// Resolution never rejects a keyword on its own (§4.2 says nothing
	// about keyword support); only validate() does, and only for a
	// schema node it actually visits (see TestValidateUnsupportedKeyword*
	// in validator_test.go).
	doc, err := document.DecodeJSON([]byte(`{"allOf": [{"type": "string"}]}`))
	require.NoError(t, err)

	_, err = resolveDocument(doc, RootURI)
	require.NoError(t, err)
}

func TestResolveDocumentFollowsID(t *testing.T) {
	doc, err := document.DecodeJSON([]byte(`{
		"$id": "https://example.com/root.json",
		"properties": {
			"x": {"$id": "inner.json", "type": "string"}
		}
	}`))
	require.NoError(t, err)

	res, err := resolveDocument(doc, RootURI)
	require.NoError(t, err)
	_, ok := res.nodes[NewSchemaURI("https://example.com/inner.json", "")]
	assert.True(t, ok)
}
