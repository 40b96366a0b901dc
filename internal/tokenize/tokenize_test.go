package tokenize

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/surveyfreq/internal/cache"
	"github.com/usestring/surveyfreq/pkg/nlp"
)

// fakePipeline returns canned docs keyed by exact input text.
type fakePipeline struct {
	docs  map[string]*nlp.Doc
	err   error
	calls int
}

func (f *fakePipeline) Annotate(text string) (*nlp.Doc, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if d, ok := f.docs[text]; ok {
		return d, nil
	}
	return &nlp.Doc{}, nil
}

func word(text, lemma, tag string) nlp.Token {
	return nlp.Token{Text: text, Lemma: lemma, Tag: tag}
}

func stop(text string) nlp.Token {
	return nlp.Token{Text: text, Lemma: text, Tag: "DT", Stop: true}
}

func punct(text string) nlp.Token {
	return nlp.Token{Text: text, Lemma: text, Tag: ".", Punct: true}
}

// catSatDoc annotates "The cat sat." the way an English pipeline would.
func catSatDoc() *nlp.Doc {
	return &nlp.Doc{
		Sentences: []nlp.Sentence{{
			Text: "The cat sat.",
			Tokens: []nlp.Token{
				stop("The"),
				word("cat", "cat", "NN"),
				word("sat", "sit", "VBD"),
				punct("."),
			},
		}},
	}
}

func TestFullTextExtract(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		docs     map[string]*nlp.Doc
		expected []string
	}{
		{
			name:     "stop words and punctuation filtered, lemmas emitted",
			cell:     "The cat sat.",
			docs:     map[string]*nlp.Doc{"The cat sat.": catSatDoc()},
			expected: []string{"cat", "sit"},
		},
		{
			name: "lemmas lowercased",
			cell: "Amazing Art",
			docs: map[string]*nlp.Doc{"Amazing Art": {
				Sentences: []nlp.Sentence{{Tokens: []nlp.Token{
					word("Amazing", "Amazing", "JJ"),
					word("Art", "Art", "NN"),
				}}},
			}},
			expected: []string{"amazing", "art"},
		},
		{
			name: "only stop words yields empty",
			cell: "the and",
			docs: map[string]*nlp.Doc{"the and": {
				Sentences: []nlp.Sentence{{Tokens: []nlp.Token{stop("the"), stop("and")}}},
			}},
			expected: nil,
		},
		{
			name: "sentence order preserved",
			cell: "Nice. Bold colors.",
			docs: map[string]*nlp.Doc{"Nice. Bold colors.": {
				Sentences: []nlp.Sentence{
					{Tokens: []nlp.Token{word("Nice", "nice", "JJ"), punct(".")}},
					{Tokens: []nlp.Token{word("Bold", "bold", "JJ"), word("colors", "color", "NNS"), punct(".")}},
				},
			}},
			expected: []string{"nice", "bold", "color"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := New(&fakePipeline{docs: tt.docs}, nil)
			got, err := tok.Tokenize(tt.cell, FullText{})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAdjectiveListExtract(t *testing.T) {
	happyDoc := &nlp.Doc{
		Sentences: []nlp.Sentence{{Tokens: []nlp.Token{word("happy", "happy", "JJ")}}},
	}

	tests := []struct {
		name     string
		cell     string
		docs     map[string]*nlp.Doc
		expected []string
	}{
		{
			name:     "repeated adjective counted per comma-split piece",
			cell:     "happy, happy",
			docs:     map[string]*nlp.Doc{"happy": happyDoc},
			expected: []string{"happy", "happy"},
		},
		{
			name: "non-adjectives dropped",
			cell: "bright, cat",
			docs: map[string]*nlp.Doc{
				"bright": {Sentences: []nlp.Sentence{{Tokens: []nlp.Token{word("bright", "bright", "JJ")}}}},
				"cat":    {Sentences: []nlp.Sentence{{Tokens: []nlp.Token{word("cat", "cat", "NN")}}}},
			},
			expected: []string{"bright"},
		},
		{
			name:     "empty pieces after trimming skipped",
			cell:     " , happy ,, ",
			docs:     map[string]*nlp.Doc{"happy": happyDoc},
			expected: []string{"happy"},
		},
		{
			name: "comparative and superlative tags kept",
			cell: "brighter, brightest",
			docs: map[string]*nlp.Doc{
				"brighter":  {Sentences: []nlp.Sentence{{Tokens: []nlp.Token{word("brighter", "bright", "JJR")}}}},
				"brightest": {Sentences: []nlp.Sentence{{Tokens: []nlp.Token{word("brightest", "bright", "JJS")}}}},
			},
			expected: []string{"bright", "bright"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := New(&fakePipeline{docs: tt.docs}, nil)
			got, err := tok.Tokenize(tt.cell, AdjectiveList{})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNamedEntitiesExtract(t *testing.T) {
	docs := map[string]*nlp.Doc{
		"Painted in Paris by Monet.": {
			Entities: []nlp.Entity{
				{Text: "Paris", Label: "GPE"},
				{Text: "Monet", Label: "PERSON"},
			},
		},
	}
	tok := New(&fakePipeline{docs: docs}, nil)

	got, err := tok.Tokenize("Painted in Paris by Monet.", NamedEntities{})
	require.NoError(t, err)
	// Surface text verbatim, document order, no folding.
	assert.Equal(t, []string{"Paris", "Monet"}, got)
}

func TestTokenizeEmptyCell(t *testing.T) {
	fake := &fakePipeline{}
	tok := New(fake, nil)

	for _, policy := range []Policy{FullText{}, AdjectiveList{}, NamedEntities{}} {
		got, err := tok.Tokenize("", policy)
		require.NoError(t, err)
		assert.Empty(t, got, "policy %s", policy.Name())
	}
	assert.Zero(t, fake.calls, "empty cells must not reach the pipeline")
}

func TestTokenizePropagatesAnnotationError(t *testing.T) {
	fail := errors.New("model blew up")
	tok := New(&fakePipeline{err: fail}, nil)

	for _, policy := range []Policy{FullText{}, AdjectiveList{}, NamedEntities{}} {
		_, err := tok.Tokenize("some text", policy)
		assert.ErrorIs(t, err, fail, "policy %s", policy.Name())
	}
}

func TestTokenizerUsesCache(t *testing.T) {
	fake := &fakePipeline{docs: map[string]*nlp.Doc{"The cat sat.": catSatDoc()}}
	annCache, err := cache.NewAnnotationCache(16)
	require.NoError(t, err)
	tok := New(fake, annCache)

	first, err := tok.Tokenize("The cat sat.", FullText{})
	require.NoError(t, err)
	second, err := tok.Tokenize("The cat sat.", FullText{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, fake.calls, "second identical cell must hit the cache")
}
