package jsonschema

import (
	"strconv"

	"github.com/arborschema/jsonschema/document"
)

// validateArray evaluates every array-applicable keyword (§4.4.2) against
// an array instance: size, uniqueItems, and the items/additionalItems
// joint rule.
func (v *Validator) validateArray(schemaObj *document.Object, scope SchemaURI, instance *document.Node, path string) error {
	items, _ := instance.Array()

	if maxNode, ok := schemaObj.Get("maxItems"); ok {
		max, _ := maxNode.Float64()
		if float64(len(items)) > max {
			return newValidationError(path, scope, "maxItems",
				"array has {count} items, more than the maximum of {max}",
				map[string]string{"count": strconv.Itoa(len(items)), "max": strconv.FormatFloat(max, 'g', -1, 64)})
		}
	}
	if minNode, ok := schemaObj.Get("minItems"); ok {
		min, _ := minNode.Float64()
		if float64(len(items)) < min {
			return newValidationError(path, scope, "minItems",
				"array has {count} items, fewer than the minimum of {min}",
				map[string]string{"count": strconv.Itoa(len(items)), "min": strconv.FormatFloat(min, 'g', -1, 64)})
		}
	}

	if uniqueNode, ok := schemaObj.Get("uniqueItems"); ok {
		if unique, _ := uniqueNode.Bool(); unique {
			if i, j, dup := findDuplicate(items); dup {
				return newValidationError(path, scope, "uniqueItems",
					"items at index {i} and {j} are equal",
					map[string]string{"i": strconv.Itoa(i), "j": strconv.Itoa(j)})
			}
		}
	}

	return v.checkItems(schemaObj, scope, items, path)
}

func findDuplicate(items []*document.Node) (int, int, bool) {
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if document.Equal(items[i], items[j]) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// checkItems implements the Draft-4 `items`/`additionalItems` joint rule:
// `items` may be a single schema applied to every element, or an array of
// schemas applied positionally; in the array form, elements beyond the
// end of the array are checked against `additionalItems` (a schema or
// boolean), which defaults to allowing anything when absent.
func (v *Validator) checkItems(schemaObj *document.Object, scope SchemaURI, items []*document.Node, path string) error {
	itemsNode, ok := schemaObj.Get("items")
	if !ok {
		return nil
	}

	if itemsNode.Kind() != document.KindArray {
		childURI := scope.Append("items")
		for i, item := range items {
			if err := v.validate(itemsNode, childURI, item, path+"/"+strconv.Itoa(i)); err != nil {
				return err
			}
		}
		return nil
	}

	schemas, _ := itemsNode.Array()
	for i, item := range items {
		if i < len(schemas) {
			childURI := scope.Append("items").AppendIndex(i)
			if err := v.validate(schemas[i], childURI, item, path+"/"+strconv.Itoa(i)); err != nil {
				return err
			}
			continue
		}
		aiNode, ok := schemaObj.Get("additionalItems")
		if !ok {
			continue
		}
		childURI := scope.Append("additionalItems")
		if err := v.validate(aiNode, childURI, item, path+"/"+strconv.Itoa(i)); err != nil {
			return err
		}
	}
	return nil
}
