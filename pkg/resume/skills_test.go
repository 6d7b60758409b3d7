package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeparser/pkg/lexicon"
	"github.com/artem13815/resumeparser/pkg/nlp"
)

func TestParseSkills(t *testing.T) {
	p := NewParser()
	lines := []string{
		"Skills",
		"Python, Go; Docker",
		"• Kubernetes",
		"2019",
		"Comfortable presenting complex findings to large mixed audiences regularly",
	}
	got := p.parseSkills(lines)
	assert.Equal(t, []string{"Docker", "Go", "Kubernetes", "Python", "docker", "go", "kubernetes", "python"}, got)
}

func TestParseSkillsEmpty(t *testing.T) {
	p := NewParser()
	got := p.parseSkills(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPlausibleSkill(t *testing.T) {
	cases := map[string]bool{
		"Go":                          true,
		"C":                           false,
		"2019":                        false,
		"Spring Boot":                 true,
		"++":                          false,
		"one two three four five":     true,
		"one two three four five six": false,
	}
	for in, want := range cases {
		assert.Equal(t, want, plausibleSkill(in), in)
	}
}

func TestParseSkillsBulletBlock(t *testing.T) {
	lexical, err := nlp.NewLexical(lexicon.Default())
	require.NoError(t, err)

	for name, p := range map[string]*Parser{
		"no model": NewParser(),
		"lexical":  NewParser(WithRecognizer(lexical)),
	} {
		t.Run(name, func(t *testing.T) {
			for _, lines := range [][]string{
				{"Python, React, Node.js", "• AWS"},
				{"Skills", "Python, React, Node.js", "• AWS"},
			} {
				got := p.parseSkills(lines)
				assert.Subset(t, got, []string{"python", "react", "aws", "node.js"})
				assert.Subset(t, got, []string{"Python", "React", "Node.js", "AWS"})
				assert.NotContains(t, got, "Skills")
			}
		})
	}
}
