// Package tokenize extracts normalized linguistic units from raw survey
// cells under one of three extraction policies.
package tokenize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/usestring/surveyfreq/pkg/nlp"
)

// Annotator is the subset of the annotation capability a policy needs.
// Satisfied by nlp.Pipeline implementations and by the caching Tokenizer.
type Annotator interface {
	Annotate(text string) (*nlp.Doc, error)
}

// Policy owns the filtering and emission rule for one extraction variant.
// The set of policies is closed: FullText, AdjectiveList, NamedEntities.
type Policy interface {
	// Name identifies the policy in logs and output file naming.
	Name() string
	// Extract produces the ordered token sequence for one cell.
	Extract(an Annotator, cell string) ([]string, error)
}

// foldLower lowercases with English casing rules. A fresh Caser per call:
// Caser values carry internal state and are not safe to share across the
// concurrently running passes.
func foldLower(s string) string {
	return cases.Lower(language.English).String(s)
}

// FullText emits the lowercased lemma of every token in the cell that is not
// punctuation, whitespace or a stop word. The whole cell is annotated at
// once so token attributes carry full-sentence context.
type FullText struct{}

func (FullText) Name() string { return "fulltext" }

func (FullText) Extract(an Annotator, cell string) ([]string, error) {
	doc, err := an.Annotate(cell)
	if err != nil {
		return nil, err
	}
	var tokens []string
	for _, sent := range doc.Sentences {
		for _, tok := range sent.Tokens {
			if tok.Punct || tok.Space || tok.Stop {
				continue
			}
			if lemma := foldLower(tok.Lemma); lemma != "" {
				tokens = append(tokens, lemma)
			}
		}
	}
	return tokens, nil
}

// AdjectiveList treats the cell as comma-separated phrases and emits the
// lowercased lemma of each adjective token. Each phrase is annotated on its
// own, so context stays local to the phrase.
type AdjectiveList struct{}

func (AdjectiveList) Name() string { return "adjectives" }

func (AdjectiveList) Extract(an Annotator, cell string) ([]string, error) {
	var tokens []string
	for _, piece := range strings.Split(cell, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		doc, err := an.Annotate(piece)
		if err != nil {
			return nil, err
		}
		for _, sent := range doc.Sentences {
			for _, tok := range sent.Tokens {
				if !tok.Adjective() || tok.Stop || tok.Punct {
					continue
				}
				if lemma := foldLower(tok.Lemma); lemma != "" {
					tokens = append(tokens, lemma)
				}
			}
		}
	}
	return tokens, nil
}

// NamedEntities emits the verbatim surface text of every recognized entity
// span in document order. No case folding, no lemmatization.
type NamedEntities struct{}

func (NamedEntities) Name() string { return "entities" }

func (NamedEntities) Extract(an Annotator, cell string) ([]string, error) {
	doc, err := an.Annotate(cell)
	if err != nil {
		return nil, err
	}
	var tokens []string
	for _, ent := range doc.Entities {
		if ent.Text != "" {
			tokens = append(tokens, ent.Text)
		}
	}
	return tokens, nil
}
