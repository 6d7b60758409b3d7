package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchHeader(t *testing.T) {
	p := NewParser()
	cases := []struct {
		line string
		key  string
		ok   bool
	}{
		{"EXPERIENCE", SectionExperience, true},
		{"Work Experience", SectionExperience, true},
		{"Skills:", SectionSkills, true},
		{"Technical Skills: Go, Python", SectionSkills, true},
		{"Education", SectionEducation, true},
		{"Leadership & Activities", SectionLeadership, true},
		{"Experienced engineer building distributed systems", "", false},
		{"Summary of qualifications", "", false},
		{"Built payment APIs in Go.", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			key, ok := p.matchHeader(tc.line)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.key, key)
		})
	}
}

func TestSegment(t *testing.T) {
	p := NewParser()
	got := p.segment([]string{
		"Intro line",
		"SUMMARY",
		"Builds things.",
		"Experience",
		"Engineer at Acme",
		"Skills: Go, SQL",
	})
	assert.Equal(t, Sections{
		SectionSummary:    {"Builds things."},
		SectionExperience: {"Engineer at Acme"},
		SectionSkills:     {"Skills: Go, SQL"},
	}, got)
}

func TestContentStart(t *testing.T) {
	p := NewParser()
	rec := &Record{FullName: "Jane Doe", Email: "jane@example.com", Phone: "5551234567", Location: "Austin, TX"}

	lines := []string{"Jane Doe", "jane@example.com | 555-123-4567", "Austin, TX", "Experience"}
	assert.Equal(t, 3, p.contentStart(lines, rec))

	assert.Equal(t, 2, p.contentStart([]string{"Jane Doe", "jane@example.com", "Experience"}, rec))
	assert.Equal(t, 1, p.contentStart([]string{"Jane Doe", "Experience"}, rec))
	assert.Equal(t, 0, p.contentStart([]string{"Curriculum Vitae", "Jane Doe"}, rec))
	assert.Equal(t, 0, p.contentStart(lines, &Record{}))
}
