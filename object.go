package jsonschema

import (
	"regexp"
	"strconv"

	"github.com/arborschema/jsonschema/document"
)

// validateObject evaluates every object-applicable keyword of schemaObj
// against an object instance, in the order the data model lists them in
// §4.4.1: defaults, size, additionalProperties/patternProperties modes,
// required, dependencies. It returns the first violation found.
func (v *Validator) validateObject(schemaObj *document.Object, scope SchemaURI, instance *document.Node, path string) error {
	obj, _ := instance.Object()

	if v.enableDefaults {
		insertDefaults(schemaObj, obj)
	}

	if err := checkPropertyCount(schemaObj, scope, obj, path); err != nil {
		return err
	}
	if err := checkRequired(schemaObj, scope, obj, path); err != nil {
		return err
	}
	if err := checkDependencies(v, schemaObj, scope, instance, obj, path); err != nil {
		return err
	}

	// §4.4.1 step 4 is an if/else per key: `properties` takes exclusive
	// precedence over `patternProperties` for a key present in both, so
	// the declared-key set is built before pattern matching runs.
	declared := make(map[string]bool)
	if propsNode, ok := schemaObj.Get("properties"); ok {
		if propsObj, ok := propsNode.Object(); ok {
			for _, m := range propsObj.Members() {
				declared[m.Key] = true
			}
		}
	}

	matchedByPattern := make(map[string]bool)
	if ppNode, ok := schemaObj.Get("patternProperties"); ok {
		if err := v.checkPatternProperties(ppNode, scope, obj, path, declared, matchedByPattern); err != nil {
			return err
		}
	}

	if propsNode, ok := schemaObj.Get("properties"); ok {
		if propsObj, ok := propsNode.Object(); ok {
			for _, m := range propsObj.Members() {
				child, ok := obj.Get(m.Key)
				if !ok {
					continue
				}
				childURI := scope.Append("properties").Append(m.Key)
				if err := v.validate(m.Value, childURI, child, path+"/"+Escape(m.Key)); err != nil {
					return err
				}
			}
		}
	}

	if err := v.checkAdditionalProperties(schemaObj, scope, obj, path, declared, matchedByPattern); err != nil {
		return err
	}

	if err := checkRequired(schemaObj, scope, obj, path); err != nil {
		return err
	}
	if err := checkDependencies(v, schemaObj, scope, instance, obj, path); err != nil {
		return err
	}

	return nil
}

func checkPropertyCount(schemaObj *document.Object, scope SchemaURI, obj *document.Object, path string) error {
	if maxNode, ok := schemaObj.Get("maxProperties"); ok {
		max, _ := maxNode.Float64()
		if float64(obj.Len()) > max {
			return newValidationError(path, scope, "maxProperties",
				"object has {count} properties, more than the maximum of {max}",
				map[string]string{"count": strconv.Itoa(obj.Len()), "max": strconv.FormatFloat(max, 'g', -1, 64)})
		}
	}
	if minNode, ok := schemaObj.Get("minProperties"); ok {
		min, _ := minNode.Float64()
		if float64(obj.Len()) < min {
			return newValidationError(path, scope, "minProperties",
				"object has {count} properties, fewer than the minimum of {min}",
				map[string]string{"count": strconv.Itoa(obj.Len()), "min": strconv.FormatFloat(min, 'g', -1, 64)})
		}
	}
	return nil
}

func checkRequired(schemaObj *document.Object, scope SchemaURI, obj *document.Object, path string) error {
	reqNode, ok := schemaObj.Get("required")
	if !ok {
		return nil
	}
	items, _ := reqNode.Array()
	for _, item := range items {
		name, _ := item.String()
		if !obj.Has(name) {
			return newValidationError(path, scope, "required",
				"missing required property {name}", map[string]string{"name": name})
		}
	}
	return nil
}

// checkDependencies implements Draft-4's single `dependencies` keyword,
// which unifies what later drafts split into dependentRequired and
// dependentSchemas: a string-array value lists properties that must also
// be present; a schema value (object or boolean) is validated against the
// whole instance.
func checkDependencies(v *Validator, schemaObj *document.Object, scope SchemaURI, instance *document.Node, obj *document.Object, path string) error {
	depsNode, ok := schemaObj.Get("dependencies")
	if !ok {
		return nil
	}
	depsObj, ok := depsNode.Object()
	if !ok {
		return nil
	}
	for _, m := range depsObj.Members() {
		if !obj.Has(m.Key) {
			continue
		}
		childURI := scope.Append("dependencies").Append(m.Key)
		switch m.Value.Kind() {
		case document.KindArray:
			items, _ := m.Value.Array()
			for _, item := range items {
				name, _ := item.String()
				if !obj.Has(name) {
					return newValidationError(path, scope, "dependencies",
						"property {trigger} requires property {name} to also be present",
						map[string]string{"trigger": m.Key, "name": name})
				}
			}
		case document.KindObject, document.KindBool:
			if err := v.validate(m.Value, childURI, instance, path); err != nil {
				return err
			}
		}
	}
	return nil
}

func (v *Validator) checkPatternProperties(ppNode *document.Node, scope SchemaURI, obj *document.Object, path string, declared, matched map[string]bool) error {
	ppObj, ok := ppNode.Object()
	if !ok {
		return nil
	}
	for _, m := range ppObj.Members() {
		re, err := regexp.Compile(m.Key)
		if err != nil {
			return &SchemaError{Op: "validate", URI: scope.Append("patternProperties").Append(m.Key), Err: err}
		}
		for _, prop := range obj.Members() {
			if declared[prop.Key] {
				continue
			}
			if !re.MatchString(prop.Key) {
				continue
			}
			matched[prop.Key] = true
			childURI := scope.Append("patternProperties").Append(m.Key)
			if err := v.validate(m.Value, childURI, prop.Value, path+"/"+Escape(prop.Key)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (v *Validator) checkAdditionalProperties(schemaObj *document.Object, scope SchemaURI, obj *document.Object, path string, declared, matchedByPattern map[string]bool) error {
	apNode, ok := schemaObj.Get("additionalProperties")
	if !ok {
		return nil
	}
	if b, isBool := apNode.Bool(); isBool {
		if b {
			return nil
		}
		for _, prop := range obj.Members() {
			if declared[prop.Key] || matchedByPattern[prop.Key] {
				continue
			}
			return newValidationError(path, scope, "additionalProperties",
				"property {name} is not allowed", map[string]string{"name": prop.Key})
		}
		return nil
	}
	// schema form: every property not covered by `properties` or
	// `patternProperties` must validate against this subschema.
	childURI := scope.Append("additionalProperties")
	for _, prop := range obj.Members() {
		if declared[prop.Key] || matchedByPattern[prop.Key] {
			continue
		}
		if err := v.validate(apNode, childURI, prop.Value, path+"/"+Escape(prop.Key)); err != nil {
			return err
		}
	}
	return nil
}
