package extract

import (
	"bytes"
	"fmt"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// extractFromPDF reads every page's text and the URI targets of its link
// annotations. Malformed content streams make the pdf package panic, so the
// whole walk is guarded.
func extractFromPDF(data []byte) (text string, links []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, links, err = "", nil, fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", nil, err
	}

	fonts := make(map[string]*pdf.Font)
	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		for _, name := range page.Fonts() {
			if _, ok := fonts[name]; !ok {
				f := page.Font(name)
				fonts[name] = &f
			}
		}
		pageText, err := page.GetPlainText(fonts)
		if err != nil {
			return "", nil, fmt.Errorf("page %d: %w", i, err)
		}
		b.WriteString(pageText)
		b.WriteString("\n")
		links = append(links, pageLinks(page)...)
	}
	return b.String(), links, nil
}

func pageLinks(page pdf.Page) []string {
	annots := page.V.Key("Annots")
	var out []string
	for i := 0; i < annots.Len(); i++ {
		a := annots.Index(i)
		if a.Key("Subtype").Name() != "Link" {
			continue
		}
		uri := a.Key("A").Key("URI")
		if uri.Kind() != pdf.String {
			continue
		}
		if s := strings.TrimSpace(uri.RawString()); s != "" {
			out = append(out, s)
		}
	}
	return out
}
