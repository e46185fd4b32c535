package jsonschema

import "github.com/arborschema/jsonschema/document"

// Validator evaluates instances against schemas held in a Corpus. It
// holds no per-call state beyond its configuration, so one Validator can
// be shared across goroutines validating distinct instances concurrently
// (§5); it must not be used while the underlying corpus is still being
// loaded.
type Validator struct {
	corpus         *Corpus
	enableDefaults bool
}

// NewValidator returns a Validator reading schemas from c.
func NewValidator(c *Corpus) *Validator {
	return &Validator{corpus: c}
}

// EnableDefaults turns on the defaults inserter (§4.5): when enabled,
// validating an object instance against a schema with `properties` whose
// subschemas declare `default` inserts a clone of that default for any
// missing property before continuing validation. Returns the Validator
// for chaining, matching the teacher's configuration idiom.
func (v *Validator) EnableDefaults(enabled bool) *Validator {
	v.enableDefaults = enabled
	return v
}

// Validate checks instance against the corpus's root schema.
func (v *Validator) Validate(instance *document.Node) error {
	root, err := v.corpus.RootSchema()
	if err != nil {
		return err
	}
	return v.ValidateAt(root.URI(), instance)
}

// ValidateAt checks instance against the schema registered at uri.
func (v *Validator) ValidateAt(uri SchemaURI, instance *document.Node) error {
	schema, err := v.corpus.Schema(uri)
	if err != nil {
		return err
	}
	return v.validate(schema.Node(), uri, instance, "")
}

// maxRefChaseDepth bounds how many `$ref` hops validate() follows before
// a schema node's own keywords are evaluated. Spec §"Cyclic schema graph"
// marks infinite-$ref-cycle detection optional, via a bounded depth
// counter; this is that counter, iterative rather than recursive so a
// cycle fails fast instead of growing the call stack.
const maxRefChaseDepth = 1000

// validate is the recursive, fail-fast evaluator: it returns the first
// ValidationError it encounters rather than collecting every failure
// (§7 "single descriptive error"), chasing `$ref` and dispatching on the
// instance's kind the way §4.4 describes.
func (v *Validator) validate(schemaNode *document.Node, scope SchemaURI, instance *document.Node, path string) error {
	var obj *document.Object
	for hops := 0; ; hops++ {
		if b, ok := schemaNode.Bool(); ok {
			if b {
				return nil
			}
			return newValidationError(path, scope, "false_schema", "instance rejected by a `false` schema", nil)
		}

		o, ok := schemaNode.Object()
		if !ok {
			return &SchemaError{Op: "validate", URI: scope, Err: ErrInvalidSchemaNode}
		}
		obj = o

		// Unsupported keywords are only fatal on a schema node the
		// validator actually descends into (§4.4): a branch the instance
		// never reaches (e.g. a `properties` entry for a key the
		// instance omits) is never visited and so never rejected, even
		// if it names a keyword this module doesn't implement.
		for _, key := range obj.Keys() {
			if classifyKeyword(key) == keywordUnsupported {
				return &SchemaError{Op: "validate", URI: scope, Err: &UnsupportedKeywordError{Keyword: key, URI: scope}}
			}
		}

		refNode, ok := obj.Get("$ref")
		if !ok {
			break
		}
		if hops >= maxRefChaseDepth {
			return &SchemaError{Op: "validate", URI: scope, Err: ErrRefCycle}
		}
		ref, _ := refNode.String()
		target, err := ResolveRef(scope, ref)
		if err != nil {
			return &SchemaError{Op: "validate", URI: scope, Err: err}
		}
		refSchema, err := v.corpus.Schema(target)
		if err != nil {
			return &SchemaError{Op: "validate", URI: target, Err: ErrUnresolvedExternalRef}
		}
		schemaNode = refSchema.Node()
		scope = target
	}

	if enumNode, ok := obj.Get("enum"); ok {
		if err := validateEnum(enumNode, instance, scope, path); err != nil {
			return err
		}
	}

	if typeNode, ok := obj.Get("type"); ok {
		if err := validateType(typeNode, instance, scope, path); err != nil {
			return err
		}
	}

	switch instance.Kind() {
	case document.KindObject:
		return v.validateObject(obj, scope, instance, path)
	case document.KindArray:
		return v.validateArray(obj, scope, instance, path)
	case document.KindString:
		return validateString(obj, scope, instance, path)
	case document.KindInt, document.KindUint, document.KindFloat:
		return validateNumber(obj, scope, instance, path)
	default:
		return nil // boolean and null instances have no further keywords to check
	}
}
