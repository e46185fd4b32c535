// Package jsonschema implements a Draft-4-compatible JSON Schema
// validator: a schema store keyed by URI, a resolver that assigns
// canonical URIs and chases `$ref`, a caller-driven loader loop that
// reaches closure over external references, and a fail-fast validator
// that reports the first violation it finds rather than accumulating a
// report.
package jsonschema
