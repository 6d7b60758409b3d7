package nlp

import (
	"fmt"
	"strings"

	"github.com/artem13815/resumeparser/pkg/lexicon"
)

// Label is a named-entity category.
type Label string

const (
	Person    Label = "PERSON"
	Org       Label = "ORG"
	GPE       Label = "GPE"
	Product   Label = "PRODUCT"
	Tech      Label = "TECH"
	Language  Label = "LANGUAGE"
	NORP      Label = "NORP"
	WorkOfArt Label = "WORK_OF_ART"
)

// POS is a coarse part-of-speech tag.
type POS string

const (
	PropNoun POS = "PROPN"
	Particle POS = "PART"
	Num      POS = "NUM"
	Other    POS = "X"
)

// Entity is a labelled span of the analysed text. Start and End are byte offsets.
type Entity struct {
	Text  string
	Label Label
	Start int
	End   int
}

type Token struct {
	Text  string
	POS   POS
	Start int
	End   int
}

// Doc is the analysis of one piece of text.
type Doc struct {
	Text     string
	Tokens   []Token
	Entities []Entity
}

// Recognizer finds entities and tags tokens. Implementations must be safe for concurrent use.
type Recognizer interface {
	// Available reports whether a language model is loaded. Rules that depend on
	// entities or tags are skipped when it is false.
	Available() bool
	Analyze(text string) *Doc
}

// Filter returns the entities carrying one of the given labels, in document order.
func (d *Doc) Filter(labels ...Label) []Entity {
	if d == nil {
		return nil
	}
	var out []Entity
	for _, e := range d.Entities {
		for _, l := range labels {
			if e.Label == l {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// Has reports whether any entity carries the label.
func (d *Doc) Has(label Label) bool {
	return len(d.Filter(label)) > 0
}

// SameLine reports whether no line break separates tokens i and j. A token is always
// on its own line, so i >= j reports true.
func (d *Doc) SameLine(i, j int) bool {
	if i >= j {
		return true
	}
	return !strings.ContainsAny(d.Text[d.Tokens[i].End:d.Tokens[j].Start], "\n\r")
}

// Disabled is the recognizer used when no model could be loaded.
type Disabled struct{}

func (Disabled) Available() bool { return false }

func (Disabled) Analyze(text string) *Doc { return &Doc{Text: text} }

// New returns the recognizer for the named model: "lexical" (default), "prose" or "none".
func New(model string, lx *lexicon.Lexicon) (Recognizer, error) {
	switch model {
	case "", "lexical":
		return NewLexical(lx)
	case "prose":
		return NewProse()
	case "none":
		return Disabled{}, nil
	default:
		return nil, fmt.Errorf("unknown nlp model %q", model)
	}
}
