// Package extract turns stored PDF and DOCX documents into plain text plus the
// hyperlinks embedded in them.
package extract

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/artem13815/resumeparser/pkg/resume"
)

// Kind is the document format derived from the file key.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindDOCX Kind = "docx"
)

// KindOf returns the document kind for key, ignoring case and any query or
// fragment suffix. ok is false for every other extension.
func KindOf(key string) (Kind, bool) {
	if i := strings.IndexAny(key, "?#"); i >= 0 {
		key = key[:i]
	}
	switch strings.ToLower(filepath.Ext(key)) {
	case ".pdf":
		return KindPDF, true
	case ".docx":
		return KindDOCX, true
	default:
		return "", false
	}
}

// Extractor implements resume.Extractor.
type Extractor struct{}

func New() *Extractor { return &Extractor{} }

// Extract extracts plain text and links from supported documents.
// Supports: .pdf and .docx
func (e *Extractor) Extract(data []byte, key string) (string, []string, error) {
	kind, ok := KindOf(key)
	if !ok {
		return "", nil, fmt.Errorf("%s: %w", key, resume.ErrUnsupportedType)
	}
	var (
		text  string
		links []string
		err   error
	)
	switch kind {
	case KindPDF:
		text, links, err = extractFromPDF(data)
	case KindDOCX:
		text, links, err = extractFromDocx(data)
	}
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", kind, err)
	}
	return normalizeWhitespace(text), dedupe(links), nil
}

var (
	reBlanks   = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlines = regexp.MustCompile(`\n{3,}`)
)

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = reBlanks.ReplaceAllString(s, " ")
	// keep paragraph breaks, the parser relies on them
	s = reNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

func dedupe(links []string) []string {
	out := make([]string, 0, len(links))
	seen := make(map[string]struct{}, len(links))
	for _, l := range links {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
