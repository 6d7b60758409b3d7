package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/resumeparser/pkg/resume"
)

// ResultRepository хранит результаты разбора документов.
type ResultRepository struct {
	pool *pgxpool.Pool
}

func NewResultRepository(pool *pgxpool.Pool) (*ResultRepository, error) {
	r := &ResultRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ResultRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS parse_results (
	id UUID PRIMARY KEY,
	file_key TEXT NOT NULL,
	record JSONB NOT NULL,
	download_ms BIGINT NOT NULL DEFAULT 0,
	extract_ms BIGINT NOT NULL DEFAULT 0,
	parse_ms BIGINT NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL
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
	_, err = r.pool.Exec(ctx, `
INSERT INTO parse_results (id, file_key, record, download_ms, extract_ms, parse_ms, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET record = EXCLUDED.record
`, res.ID, res.FileKey, record, res.Timings.DownloadMS, res.Timings.ExtractMS, res.Timings.ParseMS, res.CreatedAt)
	return err
}

func (r *ResultRepository) Get(ctx context.Context, id uuid.UUID) (resume.ParseResult, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, file_key, record, download_ms, extract_ms, parse_ms, created_at
FROM parse_results WHERE id = $1
`, id)
	res, err := scanResult(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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
	rows, err := r.pool.Query(ctx, `
SELECT id, file_key, record, download_ms, extract_ms, parse_ms, created_at
FROM parse_results
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
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

func scanResult(row pgx.Row) (resume.ParseResult, error) {
	var (
		res     resume.ParseResult
		record  []byte
		created time.Time
	)
	if err := row.Scan(&res.ID, &res.FileKey, &record, &res.Timings.DownloadMS,
		&res.Timings.ExtractMS, &res.Timings.ParseMS, &created); err != nil {
		return resume.ParseResult{}, err
	}
	if err := json.Unmarshal(record, &res.Record); err != nil {
		return resume.ParseResult{}, fmt.Errorf("decode record %s: %w", res.ID, err)
	}
	res.CreatedAt = created.UTC()
	return res, nil
}
