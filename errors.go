package jsonschema

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, grouped by category the way the teacher's errors.go
// groups its much larger catalog. These report structural failures: most
// come from Corpus/Resolver/Loader operations during ingestion, while
// ErrInvalidSchemaNode, ErrUnresolvedExternalRef, ErrRefCycle and
// ErrSchemaNotFound can also be returned by the validator when it reaches
// a schema node it cannot use.
var (
	// Schema ingestion
	ErrDuplicateSchemaURI = errors.New("jsonschema: schema URI already present in corpus")
	ErrMissingLocalRef    = errors.New("jsonschema: $ref has no matching schema in the local document")
	ErrNoRootSchema       = errors.New("jsonschema: corpus has no root schema set")
	ErrInvalidSchemaNode  = errors.New("jsonschema: schema must be a boolean or an object")

	// Reference resolution
	ErrUnresolvedExternalRef = errors.New("jsonschema: external $ref was never resolved before validation")
	ErrRefCycle              = errors.New("jsonschema: $ref chain does not terminate")

	// Validation entry points
	ErrSchemaNotFound = errors.New("jsonschema: no schema registered at the given URI")
)

// SchemaError reports a structural failure in schema ingestion or
// resolution: a malformed schema document, an unresolvable local `$ref`,
// a duplicate URI, or an unsupported keyword. These are programmer/input
// errors about the schema itself; some surface during ingestion and some
// (unsupported keywords, unresolved or cyclic `$ref`s) only when the
// validator visits the schema node. They are distinct from a
// ValidationError, which reports an instance failing a schema it was
// successfully loaded against.
type SchemaError struct {
	Op   string    // the operation that failed: "insert", "resolve", "derive", ...
	URI  SchemaURI // the schema node involved, when known
	Path string    // a JSON Pointer into the offending schema document, when URI is not yet assigned
	Err  error     // the underlying sentinel or wrapped error
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("jsonschema: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	loc := e.Path
	if e.URI.Base != "" || e.URI.Pointer != "" {
		loc = e.URI.String()
	}
	if loc != "" {
		b.WriteString(loc)
		b.WriteString(": ")
	}
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *SchemaError) Unwrap() error { return e.Err }

// ValidationError is the single descriptive error a failed Validate call
// returns. It carries enough to build a human-readable message and to let
// a caller locate the offending instance value, but deliberately does not
// accumulate sibling failures: the validator stops at the first keyword
// violation it finds (§7 "fail fast").
type ValidationError struct {
	// InstancePath is a slash-delimited path into the instance, using the
	// same token-escaping rules as a JSON Pointer (e.g. "/items/2/name").
	InstancePath string
	// SchemaURI identifies the schema node whose Keyword rejected the
	// instance.
	SchemaURI SchemaURI
	// Keyword is the offending schema keyword, e.g. "maxLength".
	Keyword string
	// Message is a human-readable description built from a template the
	// same way the teacher's EvaluationError substitutes {placeholders}.
	Message string
}

func (e *ValidationError) Error() string {
	if e.InstancePath == "" {
		return fmt.Sprintf("jsonschema: %s: %s", e.Keyword, e.Message)
	}
	return fmt.Sprintf("jsonschema: at %s: %s: %s", e.InstancePath, e.Keyword, e.Message)
}

// newValidationError builds a ValidationError from a template string with
// "{name}" placeholders, substituted from params, mirroring the teacher's
// EvaluationError.Error() substitution without pulling in its
// localization machinery.
func newValidationError(path string, uri SchemaURI, keyword, template string, params map[string]string) *ValidationError {
	msg := template
	for k, v := range params {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return &ValidationError{InstancePath: path, SchemaURI: uri, Keyword: keyword, Message: msg}
}

// UnsupportedKeywordError reports that a schema uses a keyword this
// validator deliberately does not implement (§7.3): the keyword is
// syntactically well-formed JSON Schema, but evaluating it is out of
// scope, so it is treated as a logic error rather than a validation
// failure of any particular instance.
type UnsupportedKeywordError struct {
	Keyword string
	URI     SchemaURI
}

func (e *UnsupportedKeywordError) Error() string {
	return fmt.Sprintf("jsonschema: unsupported keyword %q at %s", e.Keyword, e.URI)
}
