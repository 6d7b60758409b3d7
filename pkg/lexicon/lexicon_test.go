package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTables(t *testing.T) {
	lx := Default()
	require.NotNil(t, lx)

	keys := make([]string, 0, len(lx.Sections))
	for _, s := range lx.Sections {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []string{
		"SUMMARY", "EXPERIENCE", "EDUCATION", "SKILLS", "PROJECTS",
		"PUBLICATIONS", "CERTIFICATIONS", "AWARDS", "LEADERSHIP", "OTHERS",
	}, keys)
	assert.Contains(t, lx.Skills, "node.js")
	assert.Contains(t, lx.Degrees, "bachelor of science")
	assert.Contains(t, lx.Bullets, "•")
	assert.Contains(t, lx.Education.Honors, "summa cum laude")
	assert.Same(t, lx, Default())
}

func TestByLengthDescIsStable(t *testing.T) {
	got := ByLengthDesc([]string{"ba", "bachelor of arts", "bs", "mba", "ms"})
	assert.Equal(t, []string{"bachelor of arts", "mba", "ba", "bs", "ms"}, got)
}

func TestLoadOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lex.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sections:
  - key: SKILLS
    aliases: [skills, stack]
degrees: [bsc]
`), 0o644))

	lx, err := Load(path)
	require.NoError(t, err)
	require.Len(t, lx.Sections, 1)
	assert.Equal(t, []string{"skills", "stack"}, lx.AllAliases())
}

func TestParseRejectsBrokenTables(t *testing.T) {
	cases := map[string]string{
		"no sections":   "degrees: [bs]\n",
		"empty aliases": "sections:\n  - key: SKILLS\n    aliases: []\ndegrees: [bs]\n",
		"duplicate":     "sections:\n  - key: A\n    aliases: [a]\n  - key: A\n    aliases: [b]\ndegrees: [bs]\n",
		"no degrees":    "sections:\n  - key: A\n    aliases: [a]\n",
		"bad yaml":      "sections: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}
