package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrEmptyKey           = errors.New("file_key is required")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrUnsupportedType    = errors.New("unsupported file type: only pdf and docx are allowed")
	ErrStorageUnavailable = errors.New("object storage unavailable")
	ErrTooLarge           = errors.New("file too large")
)

// ParseResult хранит результат разбора одного документа.
type ParseResult struct {
	ID        uuid.UUID `json:"id"`
	FileKey   string    `json:"file_key"`
	Record    Record    `json:"record"`
	Timings   Timings   `json:"timings"`
	CreatedAt time.Time `json:"created_at"`
}

// Timings are stage durations in milliseconds.
type Timings struct {
	DownloadMS int64 `json:"download_ms"`
	ExtractMS  int64 `json:"extract_ms"`
	ParseMS    int64 `json:"parse_ms"`
}

// Fetcher returns the raw bytes stored under key. It fails with ErrDocumentNotFound
// or ErrStorageUnavailable.
type Fetcher interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// Extractor returns the plain text and hyperlinks of a PDF or DOCX document. It fails
// with ErrUnsupportedType when key has another extension.
type Extractor interface {
	Extract(data []byte, key string) (text string, links []string, err error)
}

// Repository хранит результаты разбора.
type Repository interface {
	Save(ctx context.Context, r ParseResult) error
	Get(ctx context.Context, id uuid.UUID) (ParseResult, error)
	List(ctx context.Context, limit, offset int) ([]ParseResult, error)
}
