package tokenize

import (
	"github.com/usestring/surveyfreq/internal/cache"
	"github.com/usestring/surveyfreq/pkg/nlp"
)

// Tokenizer binds an annotation pipeline to an optional annotation cache and
// applies extraction policies to cells. It implements Annotator itself so
// policies transparently hit the cache.
type Tokenizer struct {
	pipeline nlp.Pipeline
	cache    *cache.AnnotationCache
}

// New creates a Tokenizer. The cache may be nil to annotate every cell anew.
func New(pipeline nlp.Pipeline, c *cache.AnnotationCache) *Tokenizer {
	return &Tokenizer{pipeline: pipeline, cache: c}
}

// Annotate returns the annotation for text, consulting the cache first.
func (t *Tokenizer) Annotate(text string) (*nlp.Doc, error) {
	if t.cache != nil {
		if doc, ok := t.cache.Get(text); ok {
			return doc, nil
		}
	}
	doc, err := t.pipeline.Annotate(text)
	if err != nil {
		return nil, err
	}
	if t.cache != nil {
		t.cache.Put(text, doc)
	}
	return doc, nil
}

// Tokenize produces the ordered token sequence for one cell under the given
// policy. An empty cell yields an empty sequence for every policy.
func (t *Tokenizer) Tokenize(cell string, policy Policy) ([]string, error) {
	if cell == "" {
		return nil, nil
	}
	return policy.Extract(t, cell)
}
