package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeparser/pkg/lexicon"
	"github.com/artem13815/resumeparser/pkg/nlp"
)

const sampleResume = `Jane Doe
jane.doe@Example.com | (555) 123-4567 | Austin, TX
linkedin.com/in/janedoe | github.com/janedoe
Summary
Backend engineer focused on payments.
Experience
Senior Software Engineer at Acme Corp, Austin, TX Jan 2020 - Present
Built payment APIs in Go.
Education
Stanford University, BS 2015 - 2019
Skills
Go, PostgreSQL, Docker
Leadership
Mentored four junior engineers.`

var sampleLinks = []string{"https://www.linkedin.com/in/janedoe/", "https://github.com/janedoe"}

func TestParseSample(t *testing.T) {
	p := NewParser()
	rec := p.Parse(sampleResume, sampleLinks)

	assert.Equal(t, "Jane Doe", rec.FullName)
	assert.Equal(t, "Jane", rec.FirstName)
	assert.Equal(t, "Doe", rec.LastName)
	assert.Equal(t, "jane.doe@example.com", rec.Email)
	assert.Equal(t, "5551234567", rec.Phone)
	assert.Equal(t, "Austin, TX", rec.Location)
	assert.Equal(t, "https://www.linkedin.com/in/janedoe", rec.LinkedInURL)
	assert.Equal(t, "https://github.com/janedoe", rec.GitHubURL)
	assert.Empty(t, rec.TwitterURL)
	assert.Equal(t, "Backend engineer focused on payments.\n\nLeadership: Mentored four junior engineers.", rec.Summary)
	assert.Equal(t, []string{"Docker", "Go", "PostgreSQL", "docker", "go", "postgresql"}, rec.Skills)

	require.Len(t, rec.Experience, 1)
	assert.Equal(t, ExperienceEntry{
		JobTitle:    "Senior Software Engineer",
		Company:     "Acme Corp",
		Location:    "Austin, TX",
		StartDate:   "Jan 2020",
		EndDate:     "Present",
		Description: "Built payment APIs in Go.",
	}, rec.Experience[0])

	require.Len(t, rec.Education, 1)
	assert.Equal(t, EducationEntry{
		School:    "Stanford University",
		Degree:    "BS",
		StartDate: "2015",
		EndDate:   "2019",
	}, rec.Education[0])
}

func TestParseIsTotal(t *testing.T) {
	p := NewParser()
	for _, in := range []string{"", "   \n\t\n", "\x00\x01###", "((((", "@@@ | | |"} {
		rec := p.Parse(in, nil)
		assert.NotNil(t, rec.OtherLinks, "%q", in)
		assert.NotNil(t, rec.Skills, "%q", in)
		assert.NotNil(t, rec.Education, "%q", in)
		assert.NotNil(t, rec.Experience, "%q", in)
		assert.Empty(t, rec.Experience, "%q", in)
	}
}

func TestParseLeadershipWithoutSummary(t *testing.T) {
	p := NewParser()
	rec := p.Parse("Jane Doe\nLeadership\nCaptain of the chess club.", nil)
	assert.Equal(t, "Leadership: Captain of the chess club.", rec.Summary)
}

func TestParseWithLexicalRecognizer(t *testing.T) {
	lexical, err := nlp.NewLexical(lexicon.Default())
	require.NoError(t, err)
	p := NewParser(WithRecognizer(lexical))

	rec := p.Parse(sampleResume, sampleLinks)
	assert.Equal(t, "Jane Doe", rec.FullName)
	assert.Equal(t, "jane.doe@example.com", rec.Email)
	assert.Equal(t, "Austin, TX", rec.Location)
	assert.NotEmpty(t, rec.Experience)
	assert.NotEmpty(t, rec.Education)
	assert.Subset(t, rec.Skills, []string{"Docker", "Go", "PostgreSQL"})
}

func TestParseIsDeterministic(t *testing.T) {
	p := NewParser()
	reversed := []string{sampleLinks[1], sampleLinks[0]}
	assert.Equal(t, p.Parse(sampleResume, sampleLinks), p.Parse(sampleResume, reversed))
}

func TestParseLexicalOnPlainInput(t *testing.T) {
	lexical, err := nlp.NewLexical(lexicon.Default())
	require.NoError(t, err)
	p := NewParser(WithRecognizer(lexical))

	rec := p.Parse("John Smith\njohn@example.com\nExperience\nBackend engineer at Initech 2019 - 2021", nil)
	assert.Equal(t, "John Smith", rec.FullName)
	assert.Equal(t, "john@example.com", rec.Email)
	require.Len(t, rec.Experience, 1)
	assert.Equal(t, "Backend engineer", rec.Experience[0].JobTitle)
	assert.Equal(t, "Initech", rec.Experience[0].Company)
	assert.Equal(t, "2019", rec.Experience[0].StartDate)
	assert.Equal(t, "2021", rec.Experience[0].EndDate)

	for _, in := range []string{"Resume", "hello", "just some lowercase words without any structure at all"} {
		rec := p.Parse(in, nil)
		assert.Empty(t, rec.FullName, in)
		assert.NotNil(t, rec.Skills, in)
		assert.NotNil(t, rec.Experience, in)
	}
}
