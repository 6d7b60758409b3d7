package nlp

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/artem13815/resumeparser/pkg/lexicon"
)

//go:embed gazetteer.yaml
var gazetteerYAML []byte

type gazetteer struct {
	FirstNames  []string `yaml:"first_names"`
	Cities      []string `yaml:"cities"`
	USStates    []string `yaml:"us_states"`
	Products    []string `yaml:"products"`
	Languages   []string `yaml:"languages"`
	Particles   []string `yaml:"particles"`
	CommonWords []string `yaml:"common_words"`
}

var (
	reToken     = regexp.MustCompile(`[\p{L}\p{N}][\p{L}\p{N}'&.+#-]*`)
	reCityState = regexp.MustCompile(`\b([A-Z][a-zA-Z.]+(?: [A-Z][a-zA-Z.]+){0,2}), ([A-Z]{2})\b`)
	reCityName  = regexp.MustCompile(`\b([A-Z][a-zA-Z.]+(?: [A-Z][a-zA-Z.]+){0,2}), ([A-Z][a-zA-Z]+(?: [A-Z][a-zA-Z]+)?)\b`)
)

// connectors may sit inside an organisation name.
var connectors = map[string]struct{}{"of": {}, "&": {}, "and": {}, "the": {}, "for": {}}

// Lexical is a dictionary and capitalisation based recognizer. It knows far less
// than a statistical model, but it is deterministic, fast and has no external state.
type Lexical struct {
	stop       map[string]struct{}
	firstNames map[string]struct{}
	places     map[string]struct{}
	states     map[string]struct{}
	regions    map[string]struct{}
	products   map[string]struct{}
	languages  map[string]struct{}
	particles  map[string]struct{}
	schools    map[string]struct{}
	suffixes   map[string]struct{}
}

// NewLexical builds the recognizer from the embedded gazetteer and the given keyword tables.
func NewLexical(lx *lexicon.Lexicon) (*Lexical, error) {
	var g gazetteer
	if err := yaml.Unmarshal(gazetteerYAML, &g); err != nil {
		return nil, fmt.Errorf("decode gazetteer: %w", err)
	}
	r := &Lexical{
		firstNames: lexicon.Set(g.FirstNames),
		places:     lexicon.Set(append(append([]string(nil), g.Cities...), lx.Regions...)),
		states:     make(map[string]struct{}, len(g.USStates)),
		regions:    lexicon.Set(lx.Regions),
		products:   lexicon.Set(g.Products),
		languages:  lexicon.Set(g.Languages),
		particles:  lexicon.Set(g.Particles),
		schools:    lexicon.Set(lx.Schools),
		suffixes:   make(map[string]struct{}, len(lx.CompanySuffixes)),
		stop:       lexicon.Set(g.CommonWords),
	}
	for _, s := range g.USStates {
		r.states[strings.ToUpper(s)] = struct{}{}
	}
	for _, s := range lx.CompanySuffixes {
		r.suffixes[strings.TrimSuffix(strings.ToLower(s), ".")] = struct{}{}
	}
	addWords := func(phrases []string) {
		for _, p := range phrases {
			for _, w := range strings.Fields(strings.ToLower(p)) {
				r.stop[strings.Trim(w, ".:&")] = struct{}{}
			}
		}
	}
	addWords(lx.AllAliases())
	addWords(lx.JobTitles)
	addWords(lx.Degrees)
	addWords(lx.Schools)
	addWords(lx.CompanySuffixes)
	addWords(lx.Skills)
	return r, nil
}

func (r *Lexical) Available() bool { return true }

func (r *Lexical) Analyze(text string) *Doc {
	doc := &Doc{Text: text, Tokens: r.tokenize(text)}
	var spans spanSet
	add := func(start, end int, label Label) {
		if start >= end || spans.overlaps(start, end) {
			return
		}
		spans.add(start, end)
		doc.Entities = append(doc.Entities, Entity{Text: text[start:end], Label: label, Start: start, End: end})
	}

	for _, m := range reCityState.FindAllStringSubmatchIndex(text, -1) {
		if _, ok := r.states[text[m[4]:m[5]]]; ok {
			add(m[0], m[1], GPE)
		}
	}
	for _, m := range reCityName.FindAllStringSubmatchIndex(text, -1) {
		if _, ok := r.regions[strings.ToLower(text[m[4]:m[5]])]; ok {
			add(m[0], m[1], GPE)
		}
	}
	for _, run := range r.capitalisedRuns(doc) {
		if r.isOrganisation(doc.Tokens[run[0]:run[1]]) {
			add(doc.Tokens[run[0]].Start, doc.Tokens[run[1]-1].End, Org)
		}
	}
	for _, run := range r.personRuns(doc) {
		add(doc.Tokens[run[0]].Start, doc.Tokens[run[1]-1].End, Person)
	}
	r.gazetteerPhrases(doc, add)

	sort.SliceStable(doc.Entities, func(i, j int) bool { return doc.Entities[i].Start < doc.Entities[j].Start })
	return doc
}

func (r *Lexical) tokenize(text string) []Token {
	locs := reToken.FindAllStringIndex(text, -1)
	out := make([]Token, 0, len(locs))
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		for end > start+1 && strings.ContainsRune(".-'", rune(text[end-1])) {
			end--
		}
		word := text[start:end]
		out = append(out, Token{Text: word, POS: r.tag(word), Start: start, End: end})
	}
	return out
}

func (r *Lexical) tag(word string) POS {
	lower := strings.ToLower(word)
	if _, ok := r.particles[lower]; ok && word == lower {
		return Particle
	}
	if isDigits(word) {
		return Num
	}
	runes := []rune(word)
	if !unicode.IsUpper(runes[0]) {
		return Other
	}
	for _, c := range runes {
		if !unicode.IsLetter(c) && c != '\'' && c != '-' {
			return Other
		}
	}
	if _, ok := r.stop[lower]; ok {
		return Other
	}
	return PropNoun
}

// capitalisedRuns returns [from, to) token ranges of capitalised words separated only
// by spaces, allowing lower-case connectors between them.
func (r *Lexical) capitalisedRuns(doc *Doc) [][2]int {
	var runs [][2]int
	start := -1
	flush := func(end int) {
		for end > start && start >= 0 && isConnector(doc.Tokens[end-1].Text) {
			end--
		}
		if start >= 0 && end > start {
			runs = append(runs, [2]int{start, end})
		}
		start = -1
	}
	for i, tok := range doc.Tokens {
		capital := unicode.IsUpper([]rune(tok.Text)[0])
		if start >= 0 && strings.Trim(doc.Text[doc.Tokens[i-1].End:tok.Start], " &") != "" {
			flush(i)
		}
		switch {
		case capital:
			if start < 0 {
				start = i
			}
		case start >= 0 && isConnector(tok.Text):
		default:
			if start >= 0 {
				flush(i)
			}
		}
	}
	if start >= 0 {
		flush(len(doc.Tokens))
	}
	return runs
}

func (r *Lexical) isOrganisation(toks []Token) bool {
	last := strings.ToLower(strings.TrimSuffix(toks[len(toks)-1].Text, "."))
	if _, ok := r.suffixes[last]; ok && len(toks) > 1 {
		return true
	}
	for _, t := range toks {
		if _, ok := r.schools[strings.ToLower(t.Text)]; ok {
			return len(toks) > 1
		}
	}
	return false
}

// personRuns finds 2-3 proper nouns on one line that start with a known first name.
func (r *Lexical) personRuns(doc *Doc) [][2]int {
	var runs [][2]int
	for i := 0; i < len(doc.Tokens); i++ {
		if _, ok := r.firstNames[strings.ToLower(doc.Tokens[i].Text)]; !ok {
			continue
		}
		if !unicode.IsUpper([]rune(doc.Tokens[i].Text)[0]) {
			continue
		}
		j := i + 1
		for j < len(doc.Tokens) && j-i < 3 && doc.Tokens[j].POS == PropNoun && doc.SameLine(j-1, j) {
			j++
		}
		if j-i >= 2 {
			runs = append(runs, [2]int{i, j})
			i = j - 1
		}
	}
	return runs
}

func (r *Lexical) gazetteerPhrases(doc *Doc, add func(start, end int, label Label)) {
	toks := doc.Tokens
	for i := 0; i < len(toks); i++ {
		for n := 3; n >= 1; n-- {
			if i+n > len(toks) || !doc.SameLine(i, i+n-1) {
				continue
			}
			words := make([]string, n)
			for k := 0; k < n; k++ {
				words[k] = toks[i+k].Text
			}
			phrase := Normalize(strings.Join(words, " "))
			capital := unicode.IsUpper([]rune(toks[i].Text)[0])
			start, end := toks[i].Start, toks[i+n-1].End
			if _, ok := r.products[phrase]; ok {
				add(start, end, Product)
				break
			}
			if !capital {
				continue
			}
			if _, ok := r.places[phrase]; ok {
				add(start, end, GPE)
				break
			}
			if _, ok := r.languages[phrase]; ok {
				add(start, end, Language)
				break
			}
		}
	}
}

func isConnector(word string) bool {
	_, ok := connectors[strings.ToLower(word)]
	return ok
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

type spanSet [][2]int

func (s *spanSet) overlaps(start, end int) bool {
	for _, sp := range *s {
		if start < sp[1] && sp[0] < end {
			return true
		}
	}
	return false
}

func (s *spanSet) add(start, end int) { *s = append(*s, [2]int{start, end}) }
