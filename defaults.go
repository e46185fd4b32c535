package jsonschema

import "github.com/arborschema/jsonschema/document"

// insertDefaults implements §4.5: for each property the schema declares
// with a `default` literal, if the instance object is missing that
// property, a clone of the default is inserted before the rest of object
// validation runs. It only ever looks at `properties` on schemaObj
// directly — it does not chase `$ref`, and it does not recurse into
// nested schemas on its own (nested objects get their own insertDefaults
// call when validateObject recurses into them).
func insertDefaults(schemaObj *document.Object, instance *document.Object) {
	propsNode, ok := schemaObj.Get("properties")
	if !ok {
		return
	}
	propsObj, ok := propsNode.Object()
	if !ok {
		return
	}
	for _, m := range propsObj.Members() {
		if instance.Has(m.Key) {
			continue
		}
		propSchemaObj, ok := m.Value.Object()
		if !ok {
			continue
		}
		def, ok := propSchemaObj.Get("default")
		if !ok {
			continue
		}
		instance.Set(m.Key, document.Clone(def))
	}
}
