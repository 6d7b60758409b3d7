package resume

import (
	"strings"
)

// Sections maps a canonical section key to its content lines, in document order.
type Sections map[string][]string

// matchHeader reports which section, if any, the line announces. Sections are tried in
// table order and each section's aliases longest first.
func (p *Parser) matchHeader(line string) (string, bool) {
	norm := strings.ToLower(line)
	if norm == "" {
		return "", false
	}
	words := len(strings.Fields(norm))
	for _, sec := range p.sections {
		for _, alias := range sec.aliases {
			if !headerMatches(norm, alias, words) {
				continue
			}
			// A short single-word alias inside a longer line is most likely prose.
			bare := strings.TrimLeft(norm[len(alias):], ": \t") == ""
			if !bare && len(norm) > len(alias)+10 && len(alias) < 10 && !strings.Contains(alias, " ") {
				continue
			}
			return sec.key, true
		}
	}
	return "", false
}

func headerMatches(norm, alias string, words int) bool {
	switch {
	case norm == alias, norm == alias+":":
		return true
	case strings.HasPrefix(norm, alias+" "):
		return true
	case strings.HasPrefix(norm, alias) && len(norm) < len(alias)+25 && words < 6:
		return true
	}
	return false
}

// onlyHeader reports whether the line, trimmed of colons and spaces, is exactly one of
// the section's aliases.
func (p *Parser) onlyHeader(key, line string) bool {
	return p.isSectionAlias(key, strings.Trim(strings.ToLower(line), ": "))
}

// segment assigns lines to sections. The current section is the only state; lines seen
// before the first header are dropped.
func (p *Parser) segment(lines []string) Sections {
	out := make(Sections, len(p.sections))
	current := ""
	for i, line := range lines {
		if line == "" {
			continue
		}
		key, ok := p.matchHeader(line)
		switch {
		case ok:
			if key != current {
				p.log.Debug("section switch", "line", i, "section", key)
				current = key
			}
			if !p.onlyHeader(key, line) {
				out[current] = append(out[current], line)
			}
		case current != "":
			out[current] = append(out[current], line)
		}
	}
	return out
}

// contentStart returns how many leading lines (0-3) hold the name and contact details
// and should not be segmented.
func (p *Parser) contentStart(lines []string, rec *Record) int {
	if rec.FullName == "" || len(lines) == 0 || strings.ToLower(strings.TrimSpace(lines[0])) != strings.ToLower(rec.FullName) {
		return 0
	}
	if len(lines) < 2 {
		return 1
	}
	second := strings.ToLower(lines[1])
	contactLike := p.mentionsContact(second, rec) ||
		(strings.Contains(second, "@") && strings.ContainsAny(second, "|·•")) ||
		rePhone.MatchString(second)
	if !contactLike {
		return 1
	}
	if len(lines) < 3 {
		return 2
	}
	third := strings.ToLower(lines[2])
	if p.mentionsContact(third, rec) && !containsAny(third, p.canonical) {
		return 3
	}
	return 2
}

// mentionsContact reports whether a lower-cased line repeats an extracted contact detail.
func (p *Parser) mentionsContact(line string, rec *Record) bool {
	switch {
	case rec.Email != "" && strings.Contains(line, rec.Email):
		return true
	case rec.Phone != "" && strings.Contains(strings.ReplaceAll(line, " ", ""), rec.Phone):
		return true
	case rec.Location != "" && strings.Contains(line, strings.ToLower(rec.Location)):
		return true
	}
	if rec.LinkedInURL != "" {
		id := rec.LinkedInURL[strings.LastIndex(rec.LinkedInURL, "/")+1:]
		return id != "" && strings.Contains(line, id)
	}
	return false
}
