package jsonschema

import "github.com/arborschema/jsonschema/document"

// Loader drives the caller-facing ingestion loop (§4.3): each InsertSchema
// call resolves one document against the corpus and hands back the set of
// external references it could not satisfy, so the caller can fetch and
// insert those documents in turn until the corpus reaches closure.
type Loader struct {
	corpus *Corpus
}

// NewLoader returns a Loader writing into a fresh, empty Corpus.
func NewLoader() *Loader {
	return &Loader{corpus: NewCorpus()}
}

// NewLoaderFor returns a Loader that ingests into an existing corpus.
func NewLoaderFor(c *Corpus) *Loader {
	return &Loader{corpus: c}
}

// Corpus returns the store this loader writes into.
func (l *Loader) Corpus() *Corpus { return l.corpus }

// InsertSchema parses and resolves a schema document (JSON or, via
// InsertSchemaNode, anything already decoded into the document tree) and
// merges it into the corpus atomically. It returns the set of external
// `$ref` targets the document points at that are not yet in the corpus —
// the caller is expected to load and insert each of those in turn,
// calling InsertSchema again, until the returned set is empty (fixed-point
// closure, §4.3).
func (l *Loader) InsertSchema(data []byte, baseURI string) (map[string]struct{}, error) {
	node, err := document.DecodeJSON(data)
	if err != nil {
		return nil, &SchemaError{Op: "insert", Path: baseURI, Err: err}
	}
	return l.InsertSchemaNode(node, baseURI)
}

// InsertSchemaNode is InsertSchema for a document already decoded into
// the tree representation (e.g. sourced from YAML via document.DecodeYAML).
func (l *Loader) InsertSchemaNode(node *document.Node, baseURI string) (map[string]struct{}, error) {
	if baseURI == "" {
		baseURI = RootURI
	}
	res, err := resolveDocument(node, baseURI)
	if err != nil {
		return nil, err
	}
	if err := l.corpus.insertAll(res.nodes); err != nil {
		return nil, err
	}
	unresolved := make(map[string]struct{}, len(res.external))
	for ref := range res.external {
		base, pointer, err := ParseRef(ref)
		if err != nil {
			continue
		}
		if !l.corpus.has(SchemaURI{Base: base, Pointer: normalizeFragment(pointer)}) {
			unresolved[ref] = struct{}{}
		}
	}
	return unresolved, nil
}

// SetRootSchema is the caller-facing single-call convenience (§6):
// it ingests schema under the root URI and designates it the corpus
// root, raising if any `$ref` in it remains unresolved against what's
// already in the corpus — set_root_schema requires a closed schema, not
// a partial one the caller still has to feed external documents into.
// Schemas it depends on must already have been loaded via InsertSchema.
func (l *Loader) SetRootSchema(schema []byte) error {
	unresolved, err := l.InsertSchema(schema, RootURI)
	if err != nil {
		return err
	}
	if len(unresolved) > 0 {
		return &SchemaError{Op: "set_root_schema", URI: SchemaURI{Base: RootURI}, Err: ErrUnresolvedExternalRef}
	}
	return l.corpus.SetRootSchema(NewSchemaURI(RootURI, ""))
}

// InsertAll ingests a batch of documents keyed by base URI and returns
// whatever `$ref` targets remain unresolved once every document in the
// batch has been inserted. This is the multi-document convenience the
// teacher's Compiler.CompileBatch provides (§12): it lets a caller hand
// over a whole bundle of schema files without manually sequencing
// InsertSchema calls in dependency order — InsertSchema only needs a
// ref's target to already be in the corpus when that ref is itself
// chased at validation time, not when the referencing document is
// inserted, so one pass over the batch (in any order) is sufficient.
func (l *Loader) InsertAll(docs map[string][]byte) (map[string]struct{}, error) {
	remaining := make(map[string]struct{})
	for base, data := range docs {
		unresolved, err := l.InsertSchema(data, base)
		if err != nil {
			return nil, err
		}
		for ref := range unresolved {
			remaining[ref] = struct{}{}
		}
	}
	for ref := range remaining {
		refBase, pointer, err := ParseRef(ref)
		if err == nil && l.corpus.has(SchemaURI{Base: refBase, Pointer: normalizeFragment(pointer)}) {
			delete(remaining, ref)
		}
	}
	return remaining, nil
}
