package jsonschema

import (
	"sync"

	"github.com/arborschema/jsonschema/document"
)

// Corpus is the schema store: a mapping from SchemaURI to the schema node
// living there, plus a designated root. Ingestion (InsertSchema,
// SetRootSchema) requires exclusive access; once loading has finished,
// concurrent Validate calls against distinct instances are safe, since
// they only read (§5 "Concurrency and resource model").
type Corpus struct {
	mu      sync.RWMutex
	schemas map[SchemaURI]*Schema
	root    SchemaURI
	hasRoot bool
}

// NewCorpus returns an empty schema store.
func NewCorpus() *Corpus {
	return &Corpus{schemas: make(map[SchemaURI]*Schema)}
}

// get looks up a schema by URI under a read lock.
func (c *Corpus) get(uri SchemaURI) (*Schema, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.schemas[uri]
	return s, ok
}

// has reports whether uri is already present, under a read lock.
func (c *Corpus) has(uri SchemaURI) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.schemas[uri]
	return ok
}

// insertAll merges a batch of resolved nodes into the corpus atomically:
// either every URI in the batch is new and all are inserted, or none are
// and ErrDuplicateSchemaURI is returned (§4.3 "atomicity of ingestion").
func (c *Corpus) insertAll(nodes map[SchemaURI]*document.Node) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for uri := range nodes {
		if _, exists := c.schemas[uri]; exists {
			return &SchemaError{Op: "insert", URI: uri, Err: ErrDuplicateSchemaURI}
		}
	}
	for uri, node := range nodes {
		c.schemas[uri] = newSchema(uri, node)
	}
	return nil
}

// SetRootSchema designates uri as the corpus's root, the schema Validate
// uses when called without an explicit URI. uri must already be present.
func (c *Corpus) SetRootSchema(uri SchemaURI) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.schemas[uri]; !ok {
		return &SchemaError{Op: "set_root_schema", URI: uri, Err: ErrSchemaNotFound}
	}
	c.root = uri
	c.hasRoot = true
	return nil
}

// RootSchema returns the designated root schema.
func (c *Corpus) RootSchema() (*Schema, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.hasRoot {
		return nil, &SchemaError{Op: "root_schema", Err: ErrNoRootSchema}
	}
	return c.schemas[c.root], nil
}

// Schema returns the schema registered at uri.
func (c *Corpus) Schema(uri SchemaURI) (*Schema, error) {
	s, ok := c.get(uri)
	if !ok {
		return nil, &SchemaError{Op: "schema", URI: uri, Err: ErrSchemaNotFound}
	}
	return s, nil
}

// Len returns the number of schema nodes in the corpus.
func (c *Corpus) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.schemas)
}
