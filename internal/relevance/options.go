package relevance

import "fmt"

// VectorSpace selects the term unit spanning the vector space.
type VectorSpace string

const (
	Words   VectorSpace = "words"
	Stems   VectorSpace = "stems"
	Lemmata VectorSpace = "lemmata"
)

// TermWeighting selects how document and query vectors are weighted.
type TermWeighting string

const (
	TF    TermWeighting = "tf"
	TFIDF TermWeighting = "tf_idf"
)

// ParseVectorSpace maps a configuration string to a VectorSpace. The
// empty string selects Stems, the default.
func ParseVectorSpace(s string) (VectorSpace, error) {
	switch VectorSpace(s) {
	case "":
		return Stems, nil
	case Words, Stems, Lemmata:
		return VectorSpace(s), nil
	}
	return "", fmt.Errorf("relevance: unknown vector space %q", s)
}

// ParseTermWeighting maps a configuration string to a TermWeighting.
// The empty string selects TFIDF, the default.
func ParseTermWeighting(s string) (TermWeighting, error) {
	switch TermWeighting(s) {
	case "":
		return TFIDF, nil
	case TF, TFIDF:
		return TermWeighting(s), nil
	}
	return "", fmt.Errorf("relevance: unknown term weighting %q", s)
}
