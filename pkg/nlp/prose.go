package nlp

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

var proseLabels = map[string]Label{
	"PERSON": Person,
	"GPE":    GPE,
	"ORG":    Org,
}

// Prose runs the prose averaged-perceptron tagger and entity model. The model is loaded
// once and shared; prediction only reads it.
type Prose struct {
	model *prose.Model
}

// NewProse loads the embedded prose model.
func NewProse() (p *Prose, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("load prose model: %v", r)
		}
	}()
	seed, err := prose.NewDocument("Jane Doe lives in Berlin.", prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("load prose model: %w", err)
	}
	return &Prose{model: seed.Model}, nil
}

func (p *Prose) Available() bool { return true }

// Analyze tags text with prose. prose reports no offsets, so tokens and entities are
// located in the source text left to right; anything that cannot be found is dropped.
func (p *Prose) Analyze(text string) (doc *Doc) {
	doc = &Doc{Text: text}
	defer func() {
		if r := recover(); r != nil {
			doc = &Doc{Text: text}
		}
	}()
	if strings.TrimSpace(text) == "" {
		return doc
	}
	pd, err := prose.NewDocument(text, prose.WithSegmentation(false), prose.UsingModel(p.model))
	if err != nil {
		return doc
	}

	cursor := 0
	for _, t := range pd.Tokens() {
		start, ok := locate(text, t.Text, cursor)
		if !ok {
			continue
		}
		end := start + len(t.Text)
		doc.Tokens = append(doc.Tokens, Token{Text: t.Text, POS: proseTag(t.Tag), Start: start, End: end})
		cursor = end
	}

	cursor = 0
	for _, e := range pd.Entities() {
		label, ok := proseLabels[e.Label]
		if !ok {
			continue
		}
		start, ok := locate(text, e.Text, cursor)
		if !ok {
			continue
		}
		end := start + len(e.Text)
		doc.Entities = append(doc.Entities, Entity{Text: e.Text, Label: label, Start: start, End: end})
		cursor = end
	}
	return doc
}

// proseTag maps Penn Treebank tags onto the coarse tags the resume rules use.
func proseTag(tag string) POS {
	switch tag {
	case "NNP", "NNPS":
		return PropNoun
	case "CD":
		return Num
	case "RP":
		return Particle
	}
	return Other
}

func locate(text, s string, from int) (int, bool) {
	if s == "" || from > len(text) {
		return 0, false
	}
	i := strings.Index(text[from:], s)
	if i < 0 {
		return 0, false
	}
	return from + i, true
}
