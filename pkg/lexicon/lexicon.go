// Package lexicon holds the keyword tables the resume heuristics run on.
// The default tables are embedded; a YAML file with the same shape can replace them.
package lexicon

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var embedded []byte

// Section is one canonical resume section and the header spellings that announce it.
type Section struct {
	Key     string   `yaml:"key"`
	Aliases []string `yaml:"aliases"`
}

type Education struct {
	SummaryKeywords  []string `yaml:"summary_keywords"`
	SubfieldPrefixes []string `yaml:"subfield_prefixes"`
	Honors           []string `yaml:"honors"`
}

type Experience struct {
	AwardKeywords     []string `yaml:"award_keywords"`
	NonHeaderPrefixes []string `yaml:"non_header_prefixes"`
}

// Lexicon is the full set of keyword tables.
type Lexicon struct {
	Sections        []Section  `yaml:"sections"`
	Degrees         []string   `yaml:"degrees"`
	ShortDegrees    []string   `yaml:"short_degrees"`
	Schools         []string   `yaml:"schools"`
	JobTitles       []string   `yaml:"job_titles"`
	CompanySuffixes []string   `yaml:"company_suffixes"`
	CompanyForms    []string   `yaml:"company_forms"`
	Skills          []string   `yaml:"skills"`
	Portfolio       []string   `yaml:"portfolio"`
	Bullets         []string   `yaml:"bullets"`
	NameDelimiters  []string   `yaml:"name_delimiters"`
	Credentials     []string   `yaml:"credentials"`
	Education       Education  `yaml:"education"`
	Experience      Experience `yaml:"experience"`
	Regions         []string   `yaml:"regions"`
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
)

// Default returns the embedded tables. The result is shared and must not be mutated.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		lx, err := Parse(embedded)
		if err != nil {
			panic(fmt.Sprintf("lexicon: embedded tables: %v", err))
		}
		defaultLex = lx
	})
	return defaultLex
}

// Load reads tables from a YAML file. An empty path yields the embedded tables.
func Load(path string) (*Lexicon, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML tables and validates that the required ones are present.
func Parse(data []byte) (*Lexicon, error) {
	var lx Lexicon
	if err := yaml.Unmarshal(data, &lx); err != nil {
		return nil, fmt.Errorf("decode lexicon: %w", err)
	}
	if err := lx.validate(); err != nil {
		return nil, err
	}
	return &lx, nil
}

func (lx *Lexicon) validate() error {
	if len(lx.Sections) == 0 {
		return fmt.Errorf("lexicon: no sections defined")
	}
	seen := make(map[string]struct{}, len(lx.Sections))
	for _, s := range lx.Sections {
		if s.Key == "" || len(s.Aliases) == 0 {
			return fmt.Errorf("lexicon: section %q has no aliases", s.Key)
		}
		if _, dup := seen[s.Key]; dup {
			return fmt.Errorf("lexicon: duplicate section %q", s.Key)
		}
		seen[s.Key] = struct{}{}
	}
	if len(lx.Degrees) == 0 {
		return fmt.Errorf("lexicon: no degree keywords")
	}
	return nil
}

// AllAliases returns every section alias, lower-cased, in table order.
func (lx *Lexicon) AllAliases() []string {
	var out []string
	for _, s := range lx.Sections {
		for _, a := range s.Aliases {
			out = append(out, strings.ToLower(a))
		}
	}
	return out
}

// ByLengthDesc returns a copy of words ordered longest first. Ties keep table order.
func ByLengthDesc(words []string) []string {
	out := append([]string(nil), words...)
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}

// Set builds a lower-cased lookup set.
func Set(words []string) map[string]struct{} {
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		out[strings.ToLower(w)] = struct{}{}
	}
	return out
}
