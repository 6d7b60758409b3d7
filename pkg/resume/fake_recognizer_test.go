package resume

import (
	"sort"
	"strings"

	"github.com/artem13815/resumeparser/pkg/nlp"
)

// fakeRecognizer labels every occurrence of the configured phrases. It never tags tokens.
type fakeRecognizer struct {
	entities map[string]nlp.Label
}

func (f fakeRecognizer) Available() bool { return true }

func (f fakeRecognizer) Analyze(text string) *nlp.Doc {
	doc := &nlp.Doc{Text: text}
	for phrase, label := range f.entities {
		from := 0
		for {
			i := strings.Index(text[from:], phrase)
			if i < 0 {
				break
			}
			start := from + i
			doc.Entities = append(doc.Entities, nlp.Entity{Text: phrase, Label: label, Start: start, End: start + len(phrase)})
			from = start + len(phrase)
		}
	}
	sort.Slice(doc.Entities, func(i, j int) bool { return doc.Entities[i].Start < doc.Entities[j].Start })
	return doc
}
