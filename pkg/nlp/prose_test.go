package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeparser/pkg/lexicon"
)

func TestProseOffsetsMatchText(t *testing.T) {
	r, err := New("prose", lexicon.Default())
	require.NoError(t, err)
	require.True(t, r.Available())

	text := "Jane Doe moved to Berlin in 2019 and joined Google.\nSenior Engineer"
	doc := r.Analyze(text)
	require.NotEmpty(t, doc.Tokens)

	prev := 0
	for _, tok := range doc.Tokens {
		assert.Equal(t, tok.Text, text[tok.Start:tok.End])
		assert.GreaterOrEqual(t, tok.Start, prev)
		prev = tok.End
	}
	for _, e := range doc.Entities {
		assert.Equal(t, e.Text, text[e.Start:e.End])
	}
}

func TestProseEmptyInput(t *testing.T) {
	r, err := NewProse()
	require.NoError(t, err)

	doc := r.Analyze("  \n ")
	assert.Empty(t, doc.Tokens)
	assert.Empty(t, doc.Entities)
}

func TestProseTag(t *testing.T) {
	cases := map[string]POS{
		"NNP":  PropNoun,
		"NNPS": PropNoun,
		"CD":   Num,
		"RP":   Particle,
		"NN":   Other,
		"VBD":  Other,
	}
	for tag, want := range cases {
		assert.Equal(t, want, proseTag(tag), tag)
	}
}

func TestLocate(t *testing.T) {
	i, ok := locate("a b a", "a", 1)
	require.True(t, ok)
	assert.Equal(t, 4, i)

	_, ok = locate("abc", "z", 0)
	assert.False(t, ok)
	_, ok = locate("abc", "", 0)
	assert.False(t, ok)
}
