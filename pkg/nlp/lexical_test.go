package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeparser/pkg/lexicon"
)

func newLexical(t *testing.T) *Lexical {
	t.Helper()
	r, err := NewLexical(lexicon.Default())
	require.NoError(t, err)
	return r
}

func entityTexts(ents []Entity) []string {
	out := make([]string, 0, len(ents))
	for _, e := range ents {
		out = append(out, e.Text)
	}
	return out
}

func TestLexicalEntities(t *testing.T) {
	r := newLexical(t)
	require.True(t, r.Available())

	doc := r.Analyze("Jane Doe\nSoftware Engineer at Acme Corp, Mountain View, CA\nStanford University\nUsed Kafka and GraphQL")

	assert.Equal(t, []string{"Jane Doe"}, entityTexts(doc.Filter(Person)))
	assert.Equal(t, []string{"Acme Corp", "Stanford University"}, entityTexts(doc.Filter(Org)))
	assert.Equal(t, []string{"Mountain View, CA"}, entityTexts(doc.Filter(GPE)))
	assert.Equal(t, []string{"Kafka", "GraphQL"}, entityTexts(doc.Filter(Product)))
}

func TestLexicalRegionAfterComma(t *testing.T) {
	doc := newLexical(t).Analyze("Based in Berlin, Germany")
	assert.Equal(t, []string{"Berlin, Germany"}, entityTexts(doc.Filter(GPE)))
}

func TestLexicalTags(t *testing.T) {
	doc := newLexical(t).Analyze("Ludwig van Beethoven 2020 Senior Engineer")
	require.Len(t, doc.Tokens, 6)
	tags := make([]POS, 0, len(doc.Tokens))
	for _, tok := range doc.Tokens {
		tags = append(tags, tok.POS)
	}
	assert.Equal(t, []POS{PropNoun, Particle, PropNoun, Num, Other, Other}, tags)
}

func TestRunsDoNotCrossLines(t *testing.T) {
	doc := newLexical(t).Analyze("Jane\nDoe")
	assert.Empty(t, doc.Filter(Person))
	assert.False(t, doc.SameLine(0, 1))
}

func TestDisabled(t *testing.T) {
	var r Recognizer = Disabled{}
	assert.False(t, r.Available())
	doc := r.Analyze("Jane Doe")
	assert.Empty(t, doc.Entities)
	assert.Empty(t, doc.Tokens)
	assert.False(t, doc.Has(Person))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "moved to new york in 2019", Normalize("Moved to New-York in 2019"))
	assert.Equal(t, "c", Normalize("  C++ "))
	assert.Equal(t, "", Normalize("---"))
}

func TestNew(t *testing.T) {
	for _, model := range []string{"", "lexical"} {
		r, err := New(model, lexicon.Default())
		require.NoError(t, err)
		assert.True(t, r.Available(), model)
	}

	r, err := New("none", lexicon.Default())
	require.NoError(t, err)
	assert.False(t, r.Available())

	_, err = New("spacy", lexicon.Default())
	assert.Error(t, err)
}

func TestSameLine(t *testing.T) {
	doc := newLexical(t).Analyze("Resume\nJane Doe")
	require.Len(t, doc.Tokens, 3)
	assert.True(t, doc.SameLine(0, 0))
	assert.True(t, doc.SameLine(1, 2))
	assert.False(t, doc.SameLine(0, 1))

	for _, text := range []string{"Resume", "hello", "worked on many things with the team"} {
		assert.NotPanics(t, func() { newLexical(t).Analyze(text) }, text)
	}
}
