package service

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"keyrel/internal/domain"
	"keyrel/internal/relevance"
)

// Scorer wires document loading to a relevance.Measure and ranks the
// whole collection for a keyphrase, issuing one Relevance call per
// document index.
type Scorer struct {
	measure relevance.Measure
	syn     relevance.Synonimizer
	docs    []domain.Document
}

// NewScorer creates a scorer over the given measure. syn may be nil;
// it is forwarded to every Relevance call and only consulted by
// measures that support synonym expansion.
func NewScorer(measure relevance.Measure, syn relevance.Synonimizer) *Scorer {
	return &Scorer{measure: measure, syn: syn}
}

// LoadDocuments reads the .txt files matched by paths (globs allowed)
// and configures the measure over their contents. It fully replaces
// any previously loaded collection.
func (s *Scorer) LoadDocuments(paths []string) error {
	var documents []domain.Document
	for _, p := range paths {
		matches, _ := filepath.Glob(p)
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			if !strings.HasSuffix(strings.ToLower(m), ".txt") {
				continue
			}
			data, err := os.ReadFile(m)
			if err != nil {
				return err
			}
			documents = append(documents, domain.Document{
				ID:      hashString(m),
				Path:    m,
				Content: string(data),
			})
		}
	}
	if len(documents) == 0 {
		return fmt.Errorf("no .txt documents found")
	}
	texts := make([]string, len(documents))
	for i, d := range documents {
		texts[i] = d.Content
	}
	if err := s.measure.SetCollection(texts); err != nil {
		return err
	}
	s.docs = documents
	return nil
}

// Documents returns the loaded collection in configuration order.
func (s *Scorer) Documents() []domain.Document {
	return s.docs
}

// Score ranks every loaded document by its relevance to keyphrase,
// highest first. Ties keep collection order.
func (s *Scorer) Score(keyphrase string) ([]domain.ScoredDocument, error) {
	scored := make([]domain.ScoredDocument, len(s.docs))
	for i, d := range s.docs {
		score, err := s.measure.Relevance(keyphrase, i, s.syn)
		if err != nil {
			return nil, err
		}
		scored[i] = domain.ScoredDocument{Index: i, Document: d, Score: score}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored, nil
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
