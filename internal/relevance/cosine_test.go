package relevance

import (
	"errors"
	"math"
	"testing"
)

var catsAndDogs = []string{
	"the cat sat",
	"the dog ran",
	"cats and dogs play",
}

func newConfigured(t *testing.T, space VectorSpace, weighting TermWeighting, texts []string) *CosineMeasure {
	t.Helper()
	m, err := NewCosineMeasure(space, weighting)
	if err != nil {
		t.Fatalf("NewCosineMeasure(%v, %v): %v", space, weighting, err)
	}
	if err := m.SetCollection(texts); err != nil {
		t.Fatalf("SetCollection: %v", err)
	}
	return m
}

func score(t *testing.T, m Measure, keyphrase string, doc int) float64 {
	t.Helper()
	got, err := m.Relevance(keyphrase, doc, nil)
	if err != nil {
		t.Fatalf("Relevance(%q, %d): %v", keyphrase, doc, err)
	}
	return got
}

func TestCosineMeasureWordsTFIDF(t *testing.T) {
	m := newConfigured(t, Words, TFIDF, catsAndDogs)

	rel0 := score(t, m, "cat", 0)
	rel1 := score(t, m, "cat", 1)
	if rel0 <= rel1 {
		t.Errorf("relevance(cat, 0) = %v should exceed relevance(cat, 1) = %v", rel0, rel1)
	}
	// Without stemming "cat" does not match "cats", so only document 0
	// overlaps at all.
	if rel1 != 0 {
		t.Errorf("relevance(cat, 1) = %v, want 0", rel1)
	}
	if rel2 := score(t, m, "cat", 2); rel2 != 0 {
		t.Errorf("relevance(cat, 2) = %v, want 0", rel2)
	}
	if rel0 <= 0 || rel0 > 1 {
		t.Errorf("relevance(cat, 0) = %v, want within (0,1]", rel0)
	}
}

func TestCosineMeasureStemsUnifyInflections(t *testing.T) {
	m := newConfigured(t, Stems, TFIDF, catsAndDogs)
	if got := score(t, m, "cats", 2); got <= 0 {
		t.Errorf("relevance(cats, 2) = %v, want > 0 (stems unify cat/cats)", got)
	}
	if got := score(t, m, "cat", 2); got <= 0 {
		t.Errorf("relevance(cat, 2) = %v, want > 0 (stems unify cat/cats)", got)
	}
}

func TestCosineMeasureTFWeightingPreservesRanking(t *testing.T) {
	tf := newConfigured(t, Words, TF, catsAndDogs)
	if score(t, tf, "cat", 0) <= score(t, tf, "cat", 1) {
		t.Error("TF weighting should still rank document 0 above document 1 for cat")
	}

	// Under stems the terms have unequal document frequencies, so the
	// two schemes produce different numbers for a mixed phrase.
	stemTF := newConfigured(t, Stems, TF, catsAndDogs)
	stemTFIDF := newConfigured(t, Stems, TFIDF, catsAndDogs)
	if math.Abs(score(t, stemTF, "cat sat", 0)-score(t, stemTFIDF, "cat sat", 0)) < 1e-12 {
		t.Error("expected TF and TF-IDF scores to differ for a mixed phrase")
	}
}

func TestCosineMeasureOutOfVocabularyPhrase(t *testing.T) {
	m := newConfigured(t, Words, TFIDF, catsAndDogs)
	for doc := range catsAndDogs {
		if got := score(t, m, "zebra quagga", doc); got != 0 {
			t.Errorf("relevance(zebra quagga, %d) = %v, want 0", doc, got)
		}
	}
}

func TestCosineMeasureEmptyDocument(t *testing.T) {
	m := newConfigured(t, Words, TFIDF, []string{"the cat sat", ""})
	if got := score(t, m, "cat", 1); got != 0 {
		t.Errorf("relevance against empty document = %v, want 0", got)
	}
	if got := score(t, m, "cat", 0); got <= 0 {
		t.Errorf("relevance(cat, 0) = %v, want > 0", got)
	}
}

func TestCosineMeasureIdempotentQueries(t *testing.T) {
	m := newConfigured(t, Stems, TFIDF, catsAndDogs)
	first := score(t, m, "cats play", 2)
	for i := 0; i < 10; i++ {
		if got := score(t, m, "cats play", 2); got != first {
			t.Fatalf("call %d: relevance drifted from %v to %v", i, first, got)
		}
	}
}

func TestCosineMeasureReconfigurationDeterminism(t *testing.T) {
	a := newConfigured(t, Words, TFIDF, catsAndDogs)
	b := newConfigured(t, Words, TFIDF, catsAndDogs)
	if sa, sb := score(t, a, "cat sat", 0), score(t, b, "cat sat", 0); sa != sb {
		t.Errorf("independent instances disagree: %v vs %v", sa, sb)
	}

	// Reconfiguring fully replaces the model.
	if err := a.SetCollection([]string{"penguins swim", "penguins fly badly"}); err != nil {
		t.Fatalf("SetCollection: %v", err)
	}
	if got := score(t, a, "cat", 0); got != 0 {
		t.Errorf("old vocabulary leaked through reconfiguration: %v", got)
	}
	if got := score(t, a, "penguins", 0); got <= 0 {
		t.Errorf("relevance(penguins, 0) after reconfiguration = %v, want > 0", got)
	}
}

func TestCosineMeasureSynonimizerIgnored(t *testing.T) {
	m := newConfigured(t, Words, TFIDF, catsAndDogs)
	base := score(t, m, "cat", 0)
	got, err := m.Relevance("cat", 0, canonicalFunc(func(term string) string { return "dog" }))
	if err != nil {
		t.Fatalf("Relevance with synonimizer: %v", err)
	}
	if got != base {
		t.Errorf("synonimizer changed the cosine score: %v vs %v", got, base)
	}
}

func TestCosineMeasureErrors(t *testing.T) {
	m, err := NewCosineMeasure(Words, TFIDF)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Relevance("cat", 0, nil); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("unconfigured: want ErrNotConfigured, got %v", err)
	}
	if err := m.SetCollection(catsAndDogs); err != nil {
		t.Fatal(err)
	}
	for _, doc := range []int{-1, 3, 100} {
		if _, err := m.Relevance("cat", doc, nil); !errors.Is(err, ErrDocumentIndex) {
			t.Errorf("doc %d: want ErrDocumentIndex, got %v", doc, err)
		}
	}
}

func TestNewCosineMeasureRejectsLemmata(t *testing.T) {
	if _, err := NewCosineMeasure(Lemmata, TFIDF); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("want ErrNotImplemented, got %v", err)
	}
}

func TestNewCosineMeasureRejectsUnknownOptions(t *testing.T) {
	if _, err := NewCosineMeasure(VectorSpace("bogus"), TFIDF); err == nil {
		t.Error("unknown vector space accepted")
	}
	if _, err := NewCosineMeasure(Words, TermWeighting("bogus")); err == nil {
		t.Error("unknown term weighting accepted")
	}
}

// canonicalFunc adapts a func to the Synonimizer interface.
type canonicalFunc func(term string) string

func (f canonicalFunc) Canonical(term string) string { return f(term) }
