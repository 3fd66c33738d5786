package docs

import (
	"fmt"
	"slices"

	derrors "git.home.luguber.info/inful/docsite/internal/docs/errors"
)

// Registry maps document ids to documents. It is filled once during discovery
// and read concurrently afterwards.
type Registry struct {
	docs  map[string]Document
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{docs: make(map[string]Document)}
}

// NewStaticRegistry builds a registry from known documents, mostly for tests
// and for sites whose content lives outside the filesystem.
func NewStaticRegistry(docs ...Document) (*Registry, error) {
	r := NewRegistry()
	for _, d := range docs {
		if err := r.Add(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add registers a document. Two documents with the same id are an error.
func (r *Registry) Add(d Document) error {
	if existing, ok := r.docs[d.ID]; ok {
		return fmt.Errorf("%w: %q from %s and %s", derrors.ErrDuplicateDocument, d.ID, existing.RelativePath, d.RelativePath)
	}
	r.docs[d.ID] = d
	r.order = append(r.order, d.ID)
	return nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.docs[id]
	return ok
}

// Lookup returns the document for id.
func (r *Registry) Lookup(id string) (Document, bool) {
	d, ok := r.docs[id]
	return d, ok
}

// IDs returns registered ids in sorted order.
func (r *Registry) IDs() []string {
	ids := slices.Clone(r.order)
	slices.Sort(ids)
	return ids
}

// Documents returns registered documents sorted by id.
func (r *Registry) Documents() []Document {
	ids := r.IDs()
	out := make([]Document, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.docs[id])
	}
	return out
}

// Len returns the number of registered documents.
func (r *Registry) Len() int { return len(r.order) }
