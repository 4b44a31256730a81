package relevance

import (
	"fmt"

	"keyrel/internal/text"
)

// CosineMeasure scores keyphrases by cosine similarity between a query
// vector and a document vector in a vector space spanned by the terms
// of the whole collection. The vocabulary, term-frequency matrix, and
// inverse-document-frequency vector are built once per SetCollection
// and frozen; every Relevance call builds a fresh, call-local query
// vector against that frozen vocabulary.
type CosineMeasure struct {
	space     VectorSpace
	weighting TermWeighting
	norm      normalizer

	vocab vocabulary
	tf    [][]float64
	idf   []float64
	ready bool
}

// NewCosineMeasure creates a measure over the given vector space and
// weighting scheme. Selecting Lemmata fails with ErrNotImplemented.
func NewCosineMeasure(space VectorSpace, weighting TermWeighting) (*CosineMeasure, error) {
	norm, err := normalizerFor(space)
	if err != nil {
		return nil, err
	}
	switch weighting {
	case TF, TFIDF:
	default:
		return nil, fmt.Errorf("relevance: unknown term weighting %q", weighting)
	}
	return &CosineMeasure{space: space, weighting: weighting, norm: norm}, nil
}

// SetCollection tokenizes and normalizes texts, builds the vocabulary
// from the union of their terms, and computes the TF matrix and IDF
// vector. It fully replaces any previous configuration.
func (m *CosineMeasure) SetCollection(texts []string) error {
	raw := make([][]string, len(texts))
	for i, t := range texts {
		raw[i] = text.Tokenize(t)
	}
	docs := normalizeDocs(raw, m.norm)
	vocab := buildVocabulary(docs)
	tf, idf := termStats(docs, vocab)
	m.vocab = vocab
	m.tf = tf
	m.idf = idf
	m.ready = true
	return nil
}

// Relevance scores keyphrase against the document at index doc. The
// keyphrase runs through the same tokenize-and-normalize pipeline as
// the collection; tokens outside the frozen vocabulary contribute
// nothing, so a keyphrase with no vocabulary overlap scores 0.
//
// syn is accepted for interface parity with the structural strategy
// and is not consulted here; callers needing synonym expansion must
// use ASTMeasure.
func (m *CosineMeasure) Relevance(keyphrase string, doc int, syn Synonimizer) (float64, error) {
	_ = syn
	if !m.ready {
		return 0, ErrNotConfigured
	}
	if doc < 0 || doc >= len(m.tf) {
		return 0, fmt.Errorf("%w: %d with collection size %d", ErrDocumentIndex, doc, len(m.tf))
	}

	query := normalizeDocs([][]string{text.Tokenize(keyphrase)}, m.norm)
	queryTF, queryIDF := termStats(query, m.vocab)

	docVector := m.tf[doc]
	queryVector := queryTF[0]
	if m.weighting == TFIDF {
		docVector = weigh(docVector, m.idf)
		queryVector = weigh(queryVector, queryIDF)
	}
	return cosineSimilarity(docVector, queryVector), nil
}
