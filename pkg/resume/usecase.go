package resume

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DocumentService describes the application use case: fetch, extract, parse, store.
type DocumentService interface {
	ParseDocument(ctx context.Context, key string) (ParseResult, error)
	Result(ctx context.Context, id uuid.UUID) (ParseResult, error)
	Results(ctx context.Context, limit, offset int) ([]ParseResult, error)
}

type documentService struct {
	fetcher   Fetcher
	extractor Extractor
	parser    *Parser
	repo      Repository
	log       *slog.Logger
}

// NewDocumentService creates the default implementation. repo may be nil, in which case
// results are not kept.
func NewDocumentService(fetcher Fetcher, extractor Extractor, parser *Parser, repo Repository, log *slog.Logger) DocumentService {
	if log == nil {
		log = slog.Default()
	}
	return &documentService{fetcher: fetcher, extractor: extractor, parser: parser, repo: repo, log: log}
}

func (s *documentService) ParseDocument(ctx context.Context, key string) (ParseResult, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return ParseResult{}, ErrEmptyKey
	}
	log := s.log.With("file_key", key)

	started := time.Now()
	data, err := s.fetcher.Fetch(ctx, key)
	if err != nil {
		log.Error("download failed", "err", err)
		return ParseResult{}, fmt.Errorf("download %s: %w", key, err)
	}
	downloaded := time.Now()
	log.Info("downloaded", "bytes", len(data), "ms", downloaded.Sub(started).Milliseconds())

	text, links, err := s.extractor.Extract(data, key)
	if err != nil {
		log.Error("extraction failed", "err", err)
		return ParseResult{}, fmt.Errorf("extract %s: %w", key, err)
	}
	extracted := time.Now()
	log.Info("extracted", "chars", len(text), "links", len(links), "ms", extracted.Sub(downloaded).Milliseconds())

	rec := s.parser.Parse(text, links)
	parsed := time.Now()
	log.Info("parsed", "experience", len(rec.Experience), "education", len(rec.Education),
		"skills", len(rec.Skills), "ms", parsed.Sub(extracted).Milliseconds())

	res := ParseResult{
		ID:      uuid.New(),
		FileKey: key,
		Record:  rec,
		Timings: Timings{
			DownloadMS: downloaded.Sub(started).Milliseconds(),
			ExtractMS:  extracted.Sub(downloaded).Milliseconds(),
			ParseMS:    parsed.Sub(extracted).Milliseconds(),
		},
		CreatedAt: parsed.UTC(),
	}
	// best-effort
	if s.repo != nil {
		if err := s.repo.Save(ctx, res); err != nil {
			log.Warn("failed to save parse result", "err", err)
		}
	}
	return res, nil
}

func (s *documentService) Result(ctx context.Context, id uuid.UUID) (ParseResult, error) {
	if s.repo == nil {
		return ParseResult{}, ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

func (s *documentService) Results(ctx context.Context, limit, offset int) ([]ParseResult, error) {
	if s.repo == nil {
		return []ParseResult{}, nil
	}
	return s.repo.List(ctx, limit, offset)
}
