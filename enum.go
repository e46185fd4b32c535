package jsonschema

import "github.com/arborschema/jsonschema/document"

// validateEnum checks the `enum` keyword: the instance must deep-equal
// (document.Equal) one of the listed values. An empty or non-array enum
// node is treated as no constraint.
func validateEnum(enumNode *document.Node, instance *document.Node, scope SchemaURI, path string) error {
	values, ok := enumNode.Array()
	if !ok || len(values) == 0 {
		return nil
	}
	for _, v := range values {
		if document.Equal(instance, v) {
			return nil
		}
	}
	return newValidationError(path, scope, "enum",
		"value {value} does not match any allowed enum value",
		map[string]string{"value": document.Describe(instance)})
}
