package document

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// DecodeYAML parses the first document of a YAML source into an
// order-preserving Node tree, using goccy/go-yaml's AST package instead of
// its reflection-based Unmarshal so that mapping key order survives —
// the same reason document/json.go reads jsontext tokens instead of
// unmarshaling into a map.
func DecodeYAML(data []byte) (*Node, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, err
	}
	if len(file.Docs) == 0 {
		return Null(), nil
	}
	anchors := make(map[string]*Node)
	return decodeYAMLNode(file.Docs[0].Body, anchors)
}

// decodeYAMLNode walks the AST depth-first, tracking `&name` anchors in
// anchors as they're decoded so a later `*name` alias can resolve to a
// clone of the value it names — goccy/go-yaml's AST, unlike its
// reflection-based Unmarshal, does not resolve aliases on its own.
func decodeYAMLNode(n ast.Node, anchors map[string]*Node) (*Node, error) {
	if n == nil {
		return Null(), nil
	}
	switch v := n.(type) {
	case *ast.NullNode:
		return Null(), nil
	case *ast.BoolNode:
		return Bool(v.Value), nil
	case *ast.IntegerNode:
		switch iv := v.Value.(type) {
		case int64:
			return Int(iv), nil
		case uint64:
			return Uint(iv), nil
		default:
			return Int(0), nil
		}
	case *ast.FloatNode:
		return Float(v.Value), nil
	case *ast.StringNode:
		return String(v.Value), nil
	case *ast.LiteralNode:
		return String(v.Value.Value), nil
	case *ast.MappingValueNode:
		obj := NewObject()
		key, err := decodeYAMLNode(v.Key, anchors)
		if err != nil {
			return nil, err
		}
		keyStr, _ := key.String()
		val, err := decodeYAMLNode(v.Value, anchors)
		if err != nil {
			return nil, err
		}
		obj.Set(keyStr, val)
		return Obj(obj), nil
	case *ast.MappingNode:
		obj := NewObject()
		for _, entry := range v.Values {
			keyNode, err := decodeYAMLNode(entry.Key, anchors)
			if err != nil {
				return nil, err
			}
			keyStr, ok := keyNode.String()
			if !ok {
				return nil, fmt.Errorf("document: non-string YAML mapping key at %s", entry.GetPath())
			}
			val, err := decodeYAMLNode(entry.Value, anchors)
			if err != nil {
				return nil, err
			}
			obj.Set(keyStr, val)
		}
		return Obj(obj), nil
	case *ast.SequenceNode:
		items := make([]*Node, 0, len(v.Values))
		for _, e := range v.Values {
			item, err := decodeYAMLNode(e, anchors)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return Array(items...), nil
	case *ast.TagNode:
		return decodeYAMLNode(v.Value, anchors)
	case *ast.AnchorNode:
		val, err := decodeYAMLNode(v.Value, anchors)
		if err != nil {
			return nil, err
		}
		nameNode, err := decodeYAMLNode(v.Name, anchors)
		if err != nil {
			return nil, err
		}
		if name, ok := nameNode.String(); ok {
			anchors[name] = val
		}
		return val, nil
	case *ast.AliasNode:
		nameNode, err := decodeYAMLNode(v.Value, anchors)
		if err != nil {
			return nil, err
		}
		name, ok := nameNode.String()
		if !ok {
			return nil, fmt.Errorf("document: YAML alias name is not a string at %s", n.GetPath())
		}
		target, ok := anchors[name]
		if !ok {
			return nil, fmt.Errorf("document: YAML alias *%s has no matching anchor", name)
		}
		return Clone(target), nil
	default:
		return nil, fmt.Errorf("document: unsupported YAML node type %T at %s", n, n.GetPath())
	}
}
