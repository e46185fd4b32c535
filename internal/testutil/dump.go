// Package testutil provides small helpers shared by the module's test
// files.
package testutil

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/arborschema/jsonschema/document"
)

// Dump renders n in full, unabbreviated detail for failure messages,
// unlike document.Describe which truncates for readability.
func Dump(n *document.Node) string {
	return spew.Sdump(n)
}

// MustDecodeJSON decodes data and fails the calling test immediately on
// error, via the passed Fatalf-shaped function, to keep table-driven test
// setup terse.
func MustDecodeJSON(fatalf func(format string, args ...any), data []byte) *document.Node {
	n, err := document.DecodeJSON(data)
	if err != nil {
		fatalf("testutil: invalid JSON fixture: %v", err)
	}
	return n
}
