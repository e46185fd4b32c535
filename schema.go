package jsonschema

import "github.com/arborschema/jsonschema/document"

// Schema is a single node of the schema corpus: a document tree together
// with the canonical SchemaURI the resolver assigned it. Unlike the
// teacher's Schema, which carries one typed struct field per Draft-2020-12
// keyword, this one stays a thin wrapper around the generic document tree
// and looks keywords up by name. The validator, not the Schema type, knows
// what each keyword means — a schema node here is just "an object or
// boolean living at a URI", matching the data model's own description of
// a schema as a plain node in the corpus.
type Schema struct {
	uri  SchemaURI
	node *document.Node
}

// newSchema wraps a resolved document node with its corpus URI.
func newSchema(uri SchemaURI, node *document.Node) *Schema {
	return &Schema{uri: uri, node: node}
}

// URI returns the schema's canonical (base, pointer) identity.
func (s *Schema) URI() SchemaURI { return s.uri }

// Node returns the underlying document tree.
func (s *Schema) Node() *document.Node { return s.node }

// IsBoolean reports whether the schema is the boolean form (`true`/`false`)
// rather than an object of keywords.
func (s *Schema) IsBoolean() (bool, bool) {
	return s.node.Bool()
}

// Keyword looks up a top-level keyword on an object-form schema.
func (s *Schema) Keyword(name string) (*document.Node, bool) {
	obj, ok := s.node.Object()
	if !ok {
		return nil, false
	}
	return obj.Get(name)
}

// Keywords returns the object-form schema's keyword names, in source
// order, or nil for a boolean schema.
func (s *Schema) Keywords() []string {
	obj, ok := s.node.Object()
	if !ok {
		return nil
	}
	return obj.Keys()
}

// String renders the schema back to canonical JSON for debugging; it is
// not part of the validated surface (§12).
func (s *Schema) String() string {
	out, err := document.EncodeJSON(s.node)
	if err != nil {
		return "<invalid schema>"
	}
	return string(out)
}
