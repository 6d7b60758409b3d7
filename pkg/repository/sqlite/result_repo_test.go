package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeparser/pkg/resume"
	"github.com/artem13815/resumeparser/pkg/storage/sqlite"
)

func newRepo(t *testing.T) *ResultRepository {
	t.Helper()
	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo, err := NewResultRepository(db)
	require.NoError(t, err)
	return repo
}

func TestResultRepositorySaveGet(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	res := resume.ParseResult{
		ID:      uuid.New(),
		FileKey: "cv/jane.pdf",
		Record: resume.Record{
			FullName:   "Jane Doe",
			FirstName:  "Jane",
			LastName:   "Doe",
			Email:      "jane@example.com",
			OtherLinks: []string{},
			Skills:     []string{"Go", "SQL"},
			Education:  []resume.EducationEntry{{School: "Stanford University", Degree: "BS"}},
			Experience: []resume.ExperienceEntry{{JobTitle: "Engineer", Company: "Acme Inc"}},
		},
		Timings:   resume.Timings{DownloadMS: 12, ExtractMS: 30, ParseMS: 4},
		CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, res))

	got, err := repo.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, res, got)

	_, err = repo.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, resume.ErrNotFound)
}

func TestResultRepositoryList(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	empty, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, key := range []string{"a.pdf", "b.docx", "c.pdf"} {
		require.NoError(t, repo.Save(ctx, resume.ParseResult{
			ID:        uuid.New(),
			FileKey:   key,
			Record:    resume.Record{OtherLinks: []string{}, Skills: []string{}},
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	page, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "c.pdf", page[0].FileKey)
	assert.Equal(t, "b.docx", page[1].FileKey)

	rest, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "a.pdf", rest[0].FileKey)
}
