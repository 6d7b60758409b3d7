package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/resumeparser/pkg/resume"
)

// ResultRepository is the SQLite flavour of the parse-result store, used for
// single-node deployments and local runs.
type ResultRepository struct {
	db *sql.DB
}

func NewResultRepository(db *sql.DB) (*ResultRepository, error) {
	r := &ResultRepository{db: db}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ResultRepository) ensureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS parse_results (
	id TEXT PRIMARY KEY,
	file_key TEXT NOT NULL,
	record TEXT NOT NULL,
	download_ms INTEGER NOT NULL DEFAULT 0,
	extract_ms INTEGER NOT NULL DEFAULT 0,
	parse_ms INTEGER NOT NULL DEFAULT 0,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS parse_results_created_at_idx ON parse_results (created_at DESC);
`)
	return err
}

func (r *ResultRepository) Save(ctx context.Context, res resume.ParseResult) error {
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now().UTC()
	}
	record, err := json.Marshal(res.Record)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO parse_results (id, file_key, record, download_ms, extract_ms, parse_ms, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET record = excluded.record
`, res.ID.String(), res.FileKey, string(record), res.Timings.DownloadMS, res.Timings.ExtractMS,
		res.Timings.ParseMS, res.CreatedAt.UnixNano())
	return err
}

func (r *ResultRepository) Get(ctx context.Context, id uuid.UUID) (resume.ParseResult, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, file_key, record, download_ms, extract_ms, parse_ms, created_at
FROM parse_results WHERE id = ?
`, id.String())
	res, err := scanResult(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return resume.ParseResult{}, resume.ErrNotFound
		}
		return resume.ParseResult{}, err
	}
	return res, nil
}

func (r *ResultRepository) List(ctx context.Context, limit, offset int) ([]resume.ParseResult, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT id, file_key, record, download_ms, extract_ms, parse_ms, created_at
FROM parse_results
ORDER BY created_at DESC
LIMIT ? OFFSET ?
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []resume.ParseResult{}
	for rows.Next() {
		item, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (resume.ParseResult, error) {
	var (
		res     resume.ParseResult
		id      string
		record  string
		created int64
	)
	if err := row.Scan(&id, &res.FileKey, &record, &res.Timings.DownloadMS,
		&res.Timings.ExtractMS, &res.Timings.ParseMS, &created); err != nil {
		return resume.ParseResult{}, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return resume.ParseResult{}, fmt.Errorf("bad id %q: %w", id, err)
	}
	res.ID = parsed
	if err := json.Unmarshal([]byte(record), &res.Record); err != nil {
		return resume.ParseResult{}, fmt.Errorf("decode record %s: %w", id, err)
	}
	res.CreatedAt = time.Unix(0, created).UTC()
	return res, nil
}
