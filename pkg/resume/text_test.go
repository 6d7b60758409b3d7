package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"blank only", " \t\r\n ", ""},
		{"line endings and blanks", "  Jane  Doe  \r\n\r\n\tEngineer\t\tat Acme\r", "Jane Doe\nEngineer at Acme"},
		{"non ascii dropped", "Café — résumé", "Caf rsum"},
		{"bullets dropped", "• Go\n• SQL", "Go\nSQL"},
		{"already clean", "Jane Doe\nAustin, TX", "Jane Doe\nAustin, TX"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CleanText(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, CleanText(got), "must be idempotent")
		})
	}
}

func TestTextHelpers(t *testing.T) {
	assert.True(t, isTitle("Senior Software Engineer"))
	assert.False(t, isTitle("Senior software Engineer"))
	assert.False(t, isTitle("GPA: 3.9"))
	assert.False(t, isTitle("2019"))

	assert.True(t, isUpper("JOHN SMITH"))
	assert.False(t, isUpper("John SMITH"))
	assert.False(t, isUpper("123"))

	assert.Equal(t, "Magna cum laude", capitalize("MAGNA cum LAUDE"))
	assert.Equal(t, "Acme Corp", collapse(" - Acme   Corp, "))
	assert.Equal(t, "Acme Corp\nBuilt APIs", squeezeBlanks("Acme  Corp  \n  Built APIs ,"))
}
