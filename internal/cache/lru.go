// Package cache provides caching for language-annotation results.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/usestring/surveyfreq/pkg/nlp"
)

// AnnotationCache memoizes Pipeline.Annotate results per unique input text.
// Annotation is the expensive call in the pipeline and survey responses
// repeat short answers often, so identical cells hit the cache.
// Thread-safe.
type AnnotationCache struct {
	cache *lru.Cache[string, *nlp.Doc]
}

// NewAnnotationCache creates an LRU cache holding at most maxItems docs.
func NewAnnotationCache(maxItems int) (*AnnotationCache, error) {
	c, err := lru.New[string, *nlp.Doc](maxItems)
	if err != nil {
		return nil, err
	}
	return &AnnotationCache{cache: c}, nil
}

// Get retrieves the annotation for text, if cached.
func (c *AnnotationCache) Get(text string) (*nlp.Doc, bool) {
	return c.cache.Get(text)
}

// Put stores the annotation for text.
func (c *AnnotationCache) Put(text string, doc *nlp.Doc) {
	c.cache.Add(text, doc)
}

// Len returns the current number of cached annotations.
func (c *AnnotationCache) Len() int {
	return c.cache.Len()
}
