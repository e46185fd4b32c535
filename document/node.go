// Package document implements the tree-shaped value representation shared by
// schemas and instances: null, boolean, integer, unsigned integer, floating
// point, string, ordered array, and ordered object.
//
// It exists because the validator needs object key order to be stable (so
// that diagnostics are reproducible), which a plain map[string]any does not
// give. Everywhere else in the ecosystem this would be a separate module
// maintained by someone else; here it is the smallest thing that can stand
// in for one.
package document

import (
	"fmt"
	"math"
	"strings"
)

// Kind is the dynamic type tag of a Node.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindArray
	KindObject
)

// String returns the JSON Schema type name a Kind maps to (§4.4 "Type check").
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInt, KindUint:
		return "integer"
	case KindFloat:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Member is one key/value pair of an ordered object.
type Member struct {
	Key   string
	Value *Node
}

// Object is an insertion-ordered mapping from string keys to Nodes.
// Iteration order is preserved so that diagnostics are deterministic
// (spec §5 "Ordering").
type Object struct {
	members []Member
	index   map[string]int
}

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Set inserts or updates a key. Updating an existing key keeps its original
// position; a new key is appended.
func (o *Object) Set(key string, value *Node) *Object {
	if i, ok := o.index[key]; ok {
		o.members[i].Value = value
		return o
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: value})
	return o
}

// Get looks up a key.
func (o *Object) Get(key string) (*Node, bool) {
	if o == nil {
		return nil, false
	}
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.members[i].Value, true
}

// Has reports whether a key is present.
func (o *Object) Has(key string) bool {
	if o == nil {
		return false
	}
	_, ok := o.index[key]
	return ok
}

// Keys returns the object's keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// Members returns the object's key/value pairs in insertion order.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}
	return o.members
}

// Len returns the number of entries in the object.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Node is a single value in the document tree.
type Node struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
	arr  []*Node
	obj  *Object
}

func Null() *Node                { return &Node{kind: KindNull} }
func Bool(v bool) *Node          { return &Node{kind: KindBool, b: v} }
func Int(v int64) *Node          { return &Node{kind: KindInt, i: v} }
func Uint(v uint64) *Node        { return &Node{kind: KindUint, u: v} }
func Float(v float64) *Node      { return &Node{kind: KindFloat, f: v} }
func String(v string) *Node      { return &Node{kind: KindString, s: v} }
func Array(items ...*Node) *Node { return &Node{kind: KindArray, arr: items} }
func Obj(o *Object) *Node        { return &Node{kind: KindObject, obj: o} }

// Kind returns the node's dynamic type.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindNull
	}
	return n.kind
}

func (n *Node) IsNull() bool { return n.Kind() == KindNull }

// Bool returns the boolean value and whether the node is a boolean.
func (n *Node) Bool() (bool, bool) {
	if n == nil || n.kind != KindBool {
		return false, false
	}
	return n.b, true
}

// IsNumeric reports whether the node holds an int, uint, or float.
func (n *Node) IsNumeric() bool {
	switch n.Kind() {
	case KindInt, KindUint, KindFloat:
		return true
	default:
		return false
	}
}

// IsInteger reports whether the node holds an int or uint kind (§4.4 "integer (both integer kinds)").
func (n *Node) IsInteger() bool {
	switch n.Kind() {
	case KindInt, KindUint:
		return true
	default:
		return false
	}
}

// Float64 returns the node's numeric value as a float64, per §4.4.4's
// documented "operate as floating point" rule, and whether the node is numeric.
func (n *Node) Float64() (float64, bool) {
	if n == nil {
		return 0, false
	}
	switch n.kind {
	case KindInt:
		return float64(n.i), true
	case KindUint:
		return float64(n.u), true
	case KindFloat:
		return n.f, true
	default:
		return 0, false
	}
}

// String returns the string value and whether the node is a string.
func (n *Node) String() (string, bool) {
	if n == nil || n.kind != KindString {
		return "", false
	}
	return n.s, true
}

// Array returns the element slice and whether the node is an array.
func (n *Node) Array() ([]*Node, bool) {
	if n == nil || n.kind != KindArray {
		return nil, false
	}
	return n.arr, true
}

// Object returns the ordered object and whether the node is an object.
func (n *Node) Object() (*Object, bool) {
	if n == nil || n.kind != KindObject {
		return nil, false
	}
	return n.obj, true
}

// Len returns the element/member count for arrays and objects, 0 otherwise.
func (n *Node) Len() int {
	switch n.Kind() {
	case KindArray:
		return len(n.arr)
	case KindObject:
		return n.obj.Len()
	default:
		return 0
	}
}

// Equal reports deep value equality, used by `enum` and `uniqueItems`.
// Numeric nodes compare by value across kinds (1 equals 1.0); NaN never
// equals anything, including itself, matching IEEE-754 and avoiding a
// uniqueItems false-positive on repeated NaNs.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.IsNumeric() && b.IsNumeric() {
		af, _ := a.Float64()
		bf, _ := b.Float64()
		if math.IsNaN(af) || math.IsNaN(bf) {
			return false
		}
		return af == bf
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		for _, m := range a.obj.Members() {
			bv, ok := b.obj.Get(m.Key)
			if !ok || !Equal(m.Value, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Clone returns a deep copy of n. Used before default-value insertion
// (§4.5) so a schema's `default` literal is never shared with, and later
// mutated through, the instance it was inserted into.
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	switch n.kind {
	case KindArray:
		items := make([]*Node, len(n.arr))
		for i, e := range n.arr {
			items[i] = Clone(e)
		}
		return &Node{kind: KindArray, arr: items}
	case KindObject:
		obj := NewObject()
		for _, m := range n.obj.Members() {
			obj.Set(m.Key, Clone(m.Value))
		}
		return &Node{kind: KindObject, obj: obj}
	default:
		cp := *n
		return &cp
	}
}

// Describe renders a short, human-readable form of n for diagnostics,
// truncating long scalars and summarizing containers instead of dumping them.
func Describe(n *Node) string {
	if n == nil {
		return "null"
	}
	switch n.kind {
	case KindNull:
		return "null"
	case KindBool:
		return fmt.Sprintf("%t", n.b)
	case KindInt:
		return fmt.Sprintf("%d", n.i)
	case KindUint:
		return fmt.Sprintf("%d", n.u)
	case KindFloat:
		return fmt.Sprintf("%g", n.f)
	case KindString:
		s := n.s
		if len(s) > 40 {
			s = s[:40] + "..."
		}
		return fmt.Sprintf("%q", s)
	case KindArray:
		return fmt.Sprintf("array[%d]", len(n.arr))
	case KindObject:
		return fmt.Sprintf("object{%s}", strings.Join(n.obj.Keys(), ","))
	default:
		return "?"
	}
}
