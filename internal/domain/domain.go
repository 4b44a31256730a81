package domain

// Document is a single text loaded into a scoring session.
type Document struct {
	ID      string
	Path    string
	Content string
}

// ScoredDocument pairs a document with its relevance to a keyphrase.
// Index is the document's position in the configured collection and is
// the identifier accepted by the relevance measures.
type ScoredDocument struct {
	Index    int
	Document Document
	Score    float64
}
