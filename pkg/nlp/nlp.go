// Package nlp defines the language-annotation capability used by the
// tokenization pipeline: sentence segmentation, per-token attributes
// (POS tag, lemma, punctuation/stop-word flags) and named-entity spans.
package nlp

import "strings"

// Token is a single word-level unit with its linguistic attributes.
// Attributes are computed with awareness of the token's enclosing sentence.
type Token struct {
	Text  string // surface form as it appears in the input
	Lemma string // lowercased dictionary base form
	Tag   string // Penn treebank POS tag (e.g. "NN", "JJ", "VBD")
	Punct bool   // token is punctuation
	Space bool   // token is whitespace only
	Stop  bool   // token is a stop word
}

// Adjective reports whether the token is tagged as an adjective
// (JJ, JJR or JJS).
func (t Token) Adjective() bool {
	return strings.HasPrefix(t.Tag, "JJ")
}

// Sentence is an ordered sequence of tokens.
type Sentence struct {
	Text   string
	Tokens []Token
}

// Entity is a recognized named-entity span.
type Entity struct {
	Text  string // verbatim surface text
	Label string // entity category (e.g. "PERSON", "GPE")
}

// Doc is the annotation result for one input string: sentences in document
// order, each with tokens in sentence order, plus entity spans in document
// order.
type Doc struct {
	Sentences []Sentence
	Entities  []Entity
}

// Pipeline annotates raw text. Implementations must be deterministic for a
// fixed input; a pipeline is loaded once and reused for all calls in a run.
// An error from Annotate is a capability failure and aborts the run.
type Pipeline interface {
	Annotate(text string) (*Doc, error)
}
