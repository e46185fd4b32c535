package jsonschema

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// SchemaURI identifies a node in the schema corpus as a (base, pointer)
// pair: an absolute base URI (the nearest enclosing `$id`, or the corpus
// root) plus a JSON Pointer from that base to the node. Two schemas are
// the same node iff both components are equal; nothing else about a
// Schema value is part of its identity.
type SchemaURI struct {
	Base    string
	Pointer string
}

// RootURI is the canonical base URI assigned to a corpus before any
// `$id` has been seen, per the data model's root URI convention.
const RootURI = "#"

// NewSchemaURI builds a SchemaURI directly from a resolved base and a
// pointer that is already in RFC 6901 form (e.g. "/properties/foo").
func NewSchemaURI(base, pointer string) SchemaURI {
	return SchemaURI{Base: base, Pointer: pointer}
}

// Derive resolves a `$id` value found while walking a schema under u
// against u's base, producing the base URI a nested schema's own
// SchemaURI will use. Relative `$id`s resolve against the enclosing
// base the same way a browser resolves a relative link against its
// page's URL; absolute `$id`s replace the base outright.
func (u SchemaURI) Derive(id string) (SchemaURI, error) {
	if id == "" {
		return u, nil
	}
	base, err := url.Parse(u.Base)
	if err != nil {
		return SchemaURI{}, &SchemaError{Op: "derive", Path: u.Pointer, Err: err}
	}
	ref, err := url.Parse(id)
	if err != nil {
		return SchemaURI{}, &SchemaError{Op: "derive", Path: u.Pointer, Err: err}
	}
	resolved := base.ResolveReference(ref)
	return SchemaURI{Base: resolved.String(), Pointer: ""}, nil
}

// Append extends u's pointer by one token, escaping it per RFC 6901 so
// that tokens containing "~" or "/" round-trip (e.g. stepping into a
// property literally named "a/b").
func (u SchemaURI) Append(token string) SchemaURI {
	return SchemaURI{Base: u.Base, Pointer: appendPointer(u.Pointer, token)}
}

// AppendIndex extends u's pointer by an array index token.
func (u SchemaURI) AppendIndex(i int) SchemaURI {
	return u.Append(strconv.Itoa(i))
}

func appendPointer(pointer, token string) string {
	escaped := jsonpointer.Escape(token)
	return pointer + "/" + escaped
}

// Escape applies RFC 6901 escaping to a single reference token, exposed
// so callers building pointers outside of Append (e.g. the validator
// building instance paths) use the same escaping rule.
func Escape(token string) string {
	return jsonpointer.Escape(token)
}

// Equal reports whether u and other identify the same corpus node.
func (u SchemaURI) Equal(other SchemaURI) bool {
	return u.Base == other.Base && u.Pointer == other.Pointer
}

// Less gives SchemaURI a total order (base, then pointer), so that a
// set of SchemaURIs can be sorted reproducibly.
func (u SchemaURI) Less(other SchemaURI) bool {
	if u.Base != other.Base {
		return u.Base < other.Base
	}
	return u.Pointer < other.Pointer
}

// String renders the canonical external form base#pointer, consumed by
// fmt, error messages, and the resolver's set of external references.
func (u SchemaURI) String() string {
	var b strings.Builder
	b.WriteString(u.Base)
	b.WriteByte('#')
	b.WriteString(u.Pointer)
	return b.String()
}

// ParseRef splits a `$ref` string into its base and fragment components,
// the way the resolver needs before it can rewrite a relative reference
// into an absolute SchemaURI.
func ParseRef(ref string) (base, pointer string, err error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", "", err
	}
	frag := u.Fragment
	u.Fragment = ""
	u.RawFragment = ""
	return u.String(), frag, nil
}

// ResolveRef resolves a (possibly relative) `$ref` found under scope
// into an absolute SchemaURI, without yet checking whether the target
// exists in the corpus (that's the resolver's job).
func ResolveRef(scope SchemaURI, ref string) (SchemaURI, error) {
	refBase, frag, err := ParseRef(ref)
	if err != nil {
		return SchemaURI{}, err
	}
	if refBase == "" {
		return SchemaURI{Base: scope.Base, Pointer: normalizeFragment(frag)}, nil
	}
	base, err := url.Parse(scope.Base)
	if err != nil {
		return SchemaURI{}, err
	}
	target, err := url.Parse(refBase)
	if err != nil {
		return SchemaURI{}, err
	}
	resolved := base.ResolveReference(target)
	return SchemaURI{Base: resolved.String(), Pointer: normalizeFragment(frag)}, nil
}

// normalizeFragment turns a URI fragment into JSON Pointer form: an
// empty fragment is the document root; anything else is percent-decoded
// and given a leading "/" if it lacks one (so a bare "/" stays "/", the
// pointer to the empty-string key, not the root).
func normalizeFragment(frag string) string {
	if frag == "" {
		return ""
	}
	unescaped, err := url.PathUnescape(frag)
	if err != nil {
		return frag
	}
	if !strings.HasPrefix(unescaped, "/") {
		return "/" + unescaped
	}
	return unescaped
}
