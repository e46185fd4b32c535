package jsonschema

import (
	"strings"

	"github.com/arborschema/jsonschema/document"
)

// validateType checks the `type` keyword (§4.4 "Type check"): a single
// type name or an array of names, any one of which the instance's kind
// must match. "number" additionally accepts integer-kinded instances, and
// "integer" accepts either of the two integer kinds, per the data model's
// own distinction between them.
func validateType(typeNode *document.Node, instance *document.Node, scope SchemaURI, path string) error {
	var names []string
	if s, ok := typeNode.String(); ok {
		names = []string{s}
	} else if items, ok := typeNode.Array(); ok {
		for _, item := range items {
			if s, ok := item.String(); ok {
				names = append(names, s)
			}
		}
	}
	if len(names) == 0 {
		return nil
	}

	actual := instance.Kind().String()
	for _, want := range names {
		if want == actual {
			return nil
		}
		if want == "number" && instance.IsNumeric() {
			return nil
		}
		if want == "integer" && instance.IsInteger() {
			return nil
		}
	}

	return newValidationError(path, scope, "type",
		"value is {actual} but should be {expected}",
		map[string]string{"actual": actual, "expected": strings.Join(names, ", ")})
}
