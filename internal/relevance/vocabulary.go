package relevance

import (
	"fmt"
	"sort"

	"keyrel/internal/text"
)

// vocabulary maps each distinct term of the collection to a fixed
// vector index. It is built once per SetCollection and never extended
// afterwards; query tokens outside it cannot be represented.
type vocabulary map[string]int

// buildVocabulary collects the distinct tokens of docs and assigns
// indices in sorted term order, so index assignment is reproducible
// across runs for the same input.
func buildVocabulary(docs [][]string) vocabulary {
	seen := make(map[string]struct{})
	for _, tokens := range docs {
		for _, t := range tokens {
			seen[t] = struct{}{}
		}
	}
	terms := make([]string, 0, len(seen))
	for t := range seen {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	v := make(vocabulary, len(terms))
	for i, t := range terms {
		v[t] = i
	}
	return v
}

// normalizer maps a raw token to the term unit of the vector space.
type normalizer func(token string) string

// normalizerFor returns the normalizer for a vector space. A nil
// normalizer means raw words. Lemmata is recognized but unsupported.
func normalizerFor(space VectorSpace) (normalizer, error) {
	switch space {
	case Words:
		return nil, nil
	case Stems:
		return text.Stem, nil
	case Lemmata:
		return nil, fmt.Errorf("%w: lemmata vector space", ErrNotImplemented)
	}
	return nil, fmt.Errorf("relevance: unknown vector space %q", space)
}

// normalizeDocs applies norm to every token of every document; a nil
// norm returns docs unchanged.
func normalizeDocs(docs [][]string, norm normalizer) [][]string {
	if norm == nil {
		return docs
	}
	out := make([][]string, len(docs))
	for i, tokens := range docs {
		terms := make([]string, len(tokens))
		for j, t := range tokens {
			terms[j] = norm(t)
		}
		out[i] = terms
	}
	return out
}
