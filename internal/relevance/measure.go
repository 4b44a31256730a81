// Package relevance scores how relevant a candidate keyphrase is to one
// document within a fixed text collection. Two interchangeable
// strategies implement the Measure interface: CosineMeasure ranks in a
// TF or TF-IDF vector space shared by the whole collection, and
// ASTMeasure delegates to per-document structural text models supplied
// by the caller.
package relevance

import "errors"

var (
	// ErrNotConfigured is returned by Relevance before SetCollection
	// has succeeded.
	ErrNotConfigured = errors.New("relevance: collection not configured")
	// ErrNotImplemented is returned for configuration variants that are
	// recognized but not supported, such as the lemmata vector space.
	ErrNotImplemented = errors.New("relevance: not implemented")
	// ErrDocumentIndex is returned for a document index outside the
	// configured collection.
	ErrDocumentIndex = errors.New("relevance: document index out of range")
)

// Synonimizer resolves synonym equivalence between terms by mapping
// each term to a canonical representative of its synonym group.
type Synonimizer interface {
	Canonical(term string) string
}

// Measure scores a keyphrase against one document of a configured text
// collection. Documents are addressed by their index in the slice
// passed to SetCollection; that index is the stable identifier for the
// lifetime of the configuration.
//
// SetCollection fully replaces any previously built state and may be
// called again at any time. It must not run concurrently with
// Relevance on the same instance; implementations do no internal
// locking. Once configured, Relevance calls are read-only and safe to
// issue concurrently.
type Measure interface {
	SetCollection(texts []string) error
	Relevance(keyphrase string, doc int, syn Synonimizer) (float64, error)
}
