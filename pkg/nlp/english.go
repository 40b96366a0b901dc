package nlp

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// EnglishPipeline implements Pipeline for English text. Segmentation, POS
// tagging and entity extraction come from prose; lemmas from the golem
// English lexicon. Safe for concurrent use: the underlying models are
// read-only after construction.
type EnglishPipeline struct {
	lemmas *golem.Lemmatizer
	lang   language.Tag
}

// NewEnglishPipeline loads the English lexicon and returns a ready pipeline.
func NewEnglishPipeline() (*EnglishPipeline, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load english lexicon: %w", err)
	}
	return &EnglishPipeline{lemmas: lem, lang: language.English}, nil
}

// Annotate segments text into sentences, tags each sentence as its own unit
// so token attributes reflect full-sentence context, and extracts entity
// spans over the whole input.
func (p *EnglishPipeline) Annotate(text string) (*Doc, error) {
	doc := &Doc{}
	if strings.TrimSpace(text) == "" {
		return doc, nil
	}

	full, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("annotate: %w", err)
	}

	for _, ent := range full.Entities() {
		doc.Entities = append(doc.Entities, Entity{Text: ent.Text, Label: ent.Label})
	}

	for _, sent := range full.Sentences() {
		sd, err := prose.NewDocument(sent.Text,
			prose.WithSegmentation(false),
			prose.WithExtraction(false))
		if err != nil {
			return nil, fmt.Errorf("annotate sentence: %w", err)
		}
		s := Sentence{Text: sent.Text}
		for _, tok := range sd.Tokens() {
			s.Tokens = append(s.Tokens, p.token(tok.Text, tok.Tag))
		}
		doc.Sentences = append(doc.Sentences, s)
	}

	return doc, nil
}

func (p *EnglishPipeline) token(text, tag string) Token {
	lower := p.fold(text)
	t := Token{
		Text:  text,
		Tag:   tag,
		Space: strings.TrimSpace(text) == "",
		Punct: isPunct(text, tag),
		Stop:  IsStopWord(lower),
	}
	if t.Punct || t.Space {
		t.Lemma = lower
		return t
	}
	t.Lemma = p.fold(p.lemmas.Lemma(lower))
	return t
}

// fold lowercases with English casing rules.
func (p *EnglishPipeline) fold(s string) string {
	return cases.Lower(p.lang).String(s)
}

// punctTags are the Penn treebank tags assigned to punctuation tokens.
var punctTags = map[string]bool{
	".": true, ",": true, ":": true, ";": true,
	"(": true, ")": true, "``": true, "''": true,
	"-LRB-": true, "-RRB-": true, "HYPH": true,
}

func isPunct(text, tag string) bool {
	if punctTags[tag] {
		return true
	}
	for _, r := range text {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return text != ""
}
