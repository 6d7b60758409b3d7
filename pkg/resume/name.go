package resume

import (
	"strings"

	"github.com/artem13815/resumeparser/pkg/nlp"
)

type nameRule struct {
	name    string
	resolve func(p *Parser, doc *nlp.Doc, lines []string) string
}

// nameRules run in order; the first non-empty answer is the name.
var nameRules = []nameRule{
	{"proper-noun run", (*Parser).nameFromTags},
	{"person entity", (*Parser).nameFromEntities},
	{"first line segment", (*Parser).nameFromFirstSegment},
	{"first line", (*Parser).nameFromFirstLine},
}

// resolveName returns the full name and its first/last split.
func (p *Parser) resolveName(doc *nlp.Doc, lines []string) (full, first, last string) {
	for _, rule := range nameRules {
		if full = rule.resolve(p, doc, lines); full != "" {
			p.log.Debug("name resolved", "rule", rule.name, "name", full)
			break
		}
	}
	if full == "" {
		p.log.Debug("no name found")
		return "", "", ""
	}
	parts := strings.SplitN(full, " ", 2)
	first = parts[0]
	if len(parts) > 1 {
		last = parts[1]
	}
	return full, first, last
}

// nameFromTags finds the earliest run of 2-4 proper nouns on one line. A lower-case
// "van" or "de" may sit between two of them.
func (p *Parser) nameFromTags(doc *nlp.Doc, _ []string) string {
	if !p.nlp.Available() || doc == nil {
		return ""
	}
	toks := doc.Tokens
	adjacent := func(i, j int) bool {
		return strings.TrimSpace(doc.Text[toks[i].End:toks[j].Start]) == "" && doc.SameLine(i, j)
	}
	for i := 0; i < len(toks); i++ {
		if toks[i].POS != nlp.PropNoun {
			continue
		}
		j, count := i+1, 1
		for j < len(toks) && count < 4 && adjacent(j-1, j) {
			switch {
			case toks[j].POS == nlp.PropNoun:
				j++
				count++
				continue
			case (toks[j].Text == "van" || toks[j].Text == "de") &&
				j+1 < len(toks) && toks[j+1].POS == nlp.PropNoun && adjacent(j, j+1):
				j += 2
				count++
				continue
			}
			break
		}
		if count >= 2 {
			if name := strings.TrimSpace(doc.Text[toks[i].Start:toks[j-1].End]); len(name) < 50 {
				return name
			}
		}
		i = j - 1
	}
	return ""
}

func (p *Parser) nameFromEntities(doc *nlp.Doc, _ []string) string {
	if !p.nlp.Available() || doc == nil {
		return ""
	}
	for _, e := range doc.Filter(nlp.Person) {
		name := strings.TrimSpace(e.Text)
		words := strings.Fields(name)
		if len(words) < 2 || len(words) > 4 || !allStartUpper(words) || len(name) >= 50 {
			continue
		}
		if reNameNoise.MatchString(name) || p.containsAlias(name) {
			continue
		}
		return name
	}
	return ""
}

// nameFromFirstSegment cuts the first line at the earliest delimiter (credentials,
// separators, contact labels) and validates what is left.
func (p *Parser) nameFromFirstSegment(_ *nlp.Doc, lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	segment := lines[0]
	lower := strings.ToLower(segment)
	cut := len(segment)
	for _, d := range p.lex.NameDelimiters {
		if idx := strings.Index(lower, strings.ToLower(d)); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	segment = strings.Trim(segment[:cut], " ,-")
	if segment == "" {
		return ""
	}

	words := strings.Fields(segment)
	if len(words) < 2 || len(words) > 4 || !allStartUpper(words) {
		return ""
	}
	allCaps := true
	for _, w := range words {
		if len(w) > 1 && !isUpper(w) {
			allCaps = false
			break
		}
	}
	if allCaps {
		return ""
	}
	if reNameNoise.MatchString(segment) || len(segment) >= 50 || len(segment) <= 3 {
		return ""
	}
	if p.isAlias(segment) {
		p.log.Debug("first line segment is a section header", "segment", segment)
		return ""
	}
	return segment
}

func (p *Parser) nameFromFirstLine(_ *nlp.Doc, lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	line := lines[0]
	if hasAnyPrefix(strings.ToLower(line), p.aliases) {
		return ""
	}
	contact := (strings.Contains(line, "@") && strings.Contains(line, "|")) ||
		rePhone.MatchString(line) || reEmail.MatchString(line)
	if contact {
		return ""
	}
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 || !allStartUpper(words) {
		return ""
	}
	if reRawLineJunk.MatchString(line) || len(line) >= 50 {
		return ""
	}
	return line
}
