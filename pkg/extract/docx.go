package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	docxBody = "word/document.xml"
	docxRels = "word/_rels/document.xml.rels"

	hyperlinkRelType = "/hyperlink"
)

func extractFromDocx(data []byte) (string, []string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", nil, err
	}
	var body, rels *zip.File
	for _, f := range zr.File {
		switch f.Name {
		case docxBody:
			body = f
		case docxRels:
			rels = f
		}
	}
	if body == nil {
		return "", nil, errors.New("no document.xml found in docx")
	}

	rc, err := body.Open()
	if err != nil {
		return "", nil, err
	}
	defer rc.Close()
	text, err := docxText(rc)
	if err != nil {
		return "", nil, fmt.Errorf("document.xml: %w", err)
	}

	var links []string
	if rels != nil {
		rr, err := rels.Open()
		if err != nil {
			return "", nil, err
		}
		defer rr.Close()
		if links, err = docxLinks(rr); err != nil {
			return "", nil, fmt.Errorf("document.xml.rels: %w", err)
		}
	}
	return text, links, nil
}

// docxText streams the WordprocessingML body: text runs are kept, tabs and
// breaks become whitespace, every paragraph ends with a newline.
func docxText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var (
		b      strings.Builder
		inText bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteString("\t")
			case "br", "cr":
				b.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

type relationships struct {
	Items []struct {
		Type       string `xml:"Type,attr"`
		Target     string `xml:"Target,attr"`
		TargetMode string `xml:"TargetMode,attr"`
	} `xml:"Relationship"`
}

// docxLinks returns the external hyperlink targets in document order of the
// relationship part.
func docxLinks(r io.Reader) ([]string, error) {
	var rels relationships
	if err := xml.NewDecoder(r).Decode(&rels); err != nil {
		return nil, err
	}
	var out []string
	for _, rel := range rels.Items {
		if !strings.HasSuffix(rel.Type, hyperlinkRelType) || !strings.EqualFold(rel.TargetMode, "External") {
			continue
		}
		out = append(out, rel.Target)
	}
	return out, nil
}
