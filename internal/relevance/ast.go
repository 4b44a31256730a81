package relevance

import "fmt"

// TextModel is a structural model of one document (such as an
// annotated suffix tree) that can score a keyphrase directly.
type TextModel interface {
	Score(keyphrase string, normalized bool, syn Synonimizer) float64
}

// TextModelBuilder constructs the per-document text model for a chosen
// structural algorithm. The concrete algorithms live behind this
// interface; this package only orchestrates them.
type TextModelBuilder interface {
	Build(text string) (TextModel, error)
}

// ASTMeasure scores keyphrases against per-document structural text
// models. The builder selects the underlying algorithm; normalized is
// passed through to every model unchanged.
//
// The concurrency contract of Measure applies: SetCollection must not
// overlap Relevance on the same instance.
type ASTMeasure struct {
	builder    TextModelBuilder
	normalized bool
	models     []TextModel
}

// NewASTMeasure creates a structural measure over models produced by
// builder.
func NewASTMeasure(builder TextModelBuilder, normalized bool) *ASTMeasure {
	return &ASTMeasure{builder: builder, normalized: normalized}
}

// SetCollection builds one text model per document. On any build error
// the previous models are discarded and the instance must be
// reconfigured before use.
func (m *ASTMeasure) SetCollection(texts []string) error {
	models := make([]TextModel, len(texts))
	for i, t := range texts {
		model, err := m.builder.Build(t)
		if err != nil {
			m.models = nil
			return fmt.Errorf("relevance: building text model for document %d: %w", i, err)
		}
		models[i] = model
	}
	m.models = models
	return nil
}

// Relevance delegates scoring to the document's text model, passing
// the normalization flag and the optional synonimizer through.
func (m *ASTMeasure) Relevance(keyphrase string, doc int, syn Synonimizer) (float64, error) {
	if m.models == nil {
		return 0, ErrNotConfigured
	}
	if doc < 0 || doc >= len(m.models) {
		return 0, fmt.Errorf("%w: %d with collection size %d", ErrDocumentIndex, doc, len(m.models))
	}
	return m.models[doc].Score(keyphrase, m.normalized, syn), nil
}
