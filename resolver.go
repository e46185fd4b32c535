package jsonschema

import (
	"github.com/arborschema/jsonschema/document"
)

// resolved is the output of walking one schema document: every sub-schema
// node found, keyed by the canonical SchemaURI the walk assigned it, plus
// the set of `$ref` targets the document points at, partitioned into
// local (must resolve within this same walk) and external (left for the
// loader to chase).
type resolved struct {
	nodes    map[SchemaURI]*document.Node
	external map[string]struct{}
}

// resolveDocument performs the resolver's pre-order walk (§4.2): it
// assigns each sub-schema a canonical SchemaURI (following `$id` the way
// a browser follows a relative link), records every `$ref` it finds, and
// partitions references into ones that must already exist in this
// document (fatal if missing) and ones that point outside it (returned to
// the caller in canonical base#pointer form). The `$ref` strings in the
// document are left as written; the validator resolves each one again
// when it chases it.
//
// docBase is the URI the document was loaded as (its starting scope
// before any `$id` is seen).
func resolveDocument(root *document.Node, docBase string) (*resolved, error) {
	r := &resolved{
		nodes:    make(map[SchemaURI]*document.Node),
		external: make(map[string]struct{}),
	}
	rootURI := SchemaURI{Base: docBase, Pointer: ""}
	localRefs := make(map[string]SchemaURI) // ref string -> the node's URI that referenced it, for error context
	if err := r.walk(root, rootURI, rootURI, localRefs); err != nil {
		return nil, err
	}
	for ref, from := range localRefs {
		target, err := ResolveRef(SchemaURI{Base: docBase}, ref)
		if err != nil {
			return nil, &SchemaError{Op: "resolve", URI: from, Err: err}
		}
		if target.Base != docBase {
			r.external[target.String()] = struct{}{}
			continue
		}
		if _, ok := r.nodes[target]; !ok {
			return nil, &SchemaError{Op: "resolve", URI: from, Err: ErrMissingLocalRef}
		}
	}
	return r, nil
}

// walk assigns n the URI uri, records it, and recurses into the
// sub-schema positions the data model recognizes. scope is the base URI
// `$ref`/`$id` resolve relative to; it changes only when n declares `$id`.
func (r *resolved) walk(n *document.Node, uri, scope SchemaURI, localRefs map[string]SchemaURI) error {
	if _, ok := n.Bool(); ok {
		r.nodes[uri] = n
		return nil // boolean schema, no children
	}
	obj, ok := n.Object()
	if !ok {
		return &SchemaError{Op: "resolve", URI: uri, Err: ErrInvalidSchemaNode}
	}

	if idNode, ok := obj.Get("$id"); ok {
		id, _ := idNode.String()
		derived, err := scope.Derive(id)
		if err != nil {
			return err
		}
		scope = derived
		// `$id` makes this node's own canonical URI the new base, not a
		// pointer offset from whatever scope it was reached through.
		uri = scope
	}
	if _, dup := r.nodes[uri]; dup {
		return &SchemaError{Op: "resolve", URI: uri, Err: ErrDuplicateSchemaURI}
	}
	r.nodes[uri] = n

	if refNode, ok := obj.Get("$ref"); ok {
		ref, _ := refNode.String()
		localRefs[ref] = uri
	}

	for _, name := range []string{"$defs", "definitions"} {
		defsNode, ok := obj.Get(name)
		if !ok {
			continue
		}
		defsObj, ok := defsNode.Object()
		if !ok {
			continue
		}
		for _, m := range defsObj.Members() {
			childURI := scope.Append(name).Append(m.Key)
			if err := r.walk(m.Value, childURI, scope, localRefs); err != nil {
				return err
			}
		}
	}

	if propsNode, ok := obj.Get("properties"); ok {
		if propsObj, ok := propsNode.Object(); ok {
			for _, m := range propsObj.Members() {
				childURI := scope.Append("properties").Append(m.Key)
				if err := r.walk(m.Value, childURI, scope, localRefs); err != nil {
					return err
				}
			}
		}
	}

	if ppNode, ok := obj.Get("patternProperties"); ok {
		if ppObj, ok := ppNode.Object(); ok {
			for _, m := range ppObj.Members() {
				childURI := scope.Append("patternProperties").Append(m.Key)
				if err := r.walk(m.Value, childURI, scope, localRefs); err != nil {
					return err
				}
			}
		}
	}

	if apNode, ok := obj.Get("additionalProperties"); ok {
		childURI := scope.Append("additionalProperties")
		if err := r.walk(apNode, childURI, scope, localRefs); err != nil {
			return err
		}
	}

	if pnNode, ok := obj.Get("propertyNames"); ok {
		childURI := scope.Append("propertyNames")
		if err := r.walk(pnNode, childURI, scope, localRefs); err != nil {
			return err
		}
	}

	if depsNode, ok := obj.Get("dependencies"); ok {
		if depsObj, ok := depsNode.Object(); ok {
			for _, m := range depsObj.Members() {
				if m.Value.Kind() == document.KindObject || m.Value.Kind() == document.KindBool {
					childURI := scope.Append("dependencies").Append(m.Key)
					if err := r.walk(m.Value, childURI, scope, localRefs); err != nil {
						return err
					}
				}
			}
		}
	}

	if itemsNode, ok := obj.Get("items"); ok {
		switch itemsNode.Kind() {
		case document.KindArray:
			items, _ := itemsNode.Array()
			for i, item := range items {
				childURI := scope.Append("items").AppendIndex(i)
				if err := r.walk(item, childURI, scope, localRefs); err != nil {
					return err
				}
			}
		default:
			childURI := scope.Append("items")
			if err := r.walk(itemsNode, childURI, scope, localRefs); err != nil {
				return err
			}
		}
	}

	if aiNode, ok := obj.Get("additionalItems"); ok {
		childURI := scope.Append("additionalItems")
		if err := r.walk(aiNode, childURI, scope, localRefs); err != nil {
			return err
		}
	}

	return nil
}
