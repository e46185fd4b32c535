package jsonschema

import (
	"strconv"
	"unicode/utf8"

	"github.com/arborschema/jsonschema/document"
)

// validateString evaluates minLength/maxLength (§4.4.3). Length is
// counted in Unicode code points, not bytes: the data model leaves the
// unit to "whatever the underlying tree's string type uses" (an open
// question in spec §9), and code points are the unit that generalizes
// correctly across a UTF-8 Go string regardless of source encoding.
func validateString(schemaObj *document.Object, scope SchemaURI, instance *document.Node, path string) error {
	s, _ := instance.String()
	length := utf8.RuneCountInString(s)

	if maxNode, ok := schemaObj.Get("maxLength"); ok {
		max, _ := maxNode.Float64()
		if float64(length) > max {
			return newValidationError(path, scope, "maxLength",
				"string has length {length}, more than the maximum of {max}",
				map[string]string{"length": strconv.Itoa(length), "max": strconv.FormatFloat(max, 'g', -1, 64)})
		}
	}
	if minNode, ok := schemaObj.Get("minLength"); ok {
		min, _ := minNode.Float64()
		if float64(length) < min {
			return newValidationError(path, scope, "minLength",
				"string has length {length}, fewer than the minimum of {min}",
				map[string]string{"length": strconv.Itoa(length), "min": strconv.FormatFloat(min, 'g', -1, 64)})
		}
	}
	return nil
}
