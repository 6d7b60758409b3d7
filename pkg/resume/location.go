package resume

import (
	"regexp"
	"strings"

	"github.com/artem13815/resumeparser/pkg/nlp"
)

var (
	reEarlyLocation = regexp.MustCompile(`\b([A-Za-z\s.-]+,\s*(?:[A-Z]{2}|[A-Za-z]+(?: [A-Za-z]+)?))\b`)
	reLocationShape = regexp.MustCompile(`^(?:[A-Za-z\s.-]+,\s*[A-Za-z.]{2,}|\bRemote\b)`)
	reCityPart      = regexp.MustCompile(`^[A-Z][A-Za-z .-]*$`)
	reRemoteTail    = regexp.MustCompile(`(?i)(?:^|[,(|]|\s-)\s*(remote)\s*\)?\s*$`)
)

// locationFromHeader scans the first three lines for a "City, ST" or "City, State"
// mention that is not part of the name, a credential list, a URL or a section header.
func (p *Parser) locationFromHeader(lines []string, fullName string) string {
	if len(lines) > 3 {
		lines = lines[:3]
	}
	name := strings.ToLower(fullName)
	var found []string
	for _, line := range lines {
		for _, m := range reEarlyLocation.FindAllStringSubmatch(line, -1) {
			cand := CleanText(m[1])
			lower := strings.ToLower(cand)
			switch {
			case name != "" && strings.Contains(name, lower):
			case containsAny(lower, p.lex.Credentials):
			case strings.Contains(lower, "www.") || strings.Contains(lower, "http") || strings.Contains(lower, ".com"):
			case strings.Count(cand, ",") != 1 || len(cand) > 50:
			case p.containsAlias(lower):
			default:
				found = append(found, cand)
			}
		}
	}
	if len(found) == 0 {
		return ""
	}
	chosen := found[0]
	for _, c := range found {
		if !strings.Contains(c, "/") {
			chosen = c
			break
		}
	}
	if i := strings.Index(chosen, "/"); i >= 0 {
		chosen = CleanText(chosen[:i])
	}
	return chosen
}

// locationFromEntities falls back to place entities of the whole document, preferring
// one shaped like "City, ST" or "Remote".
func (p *Parser) locationFromEntities(doc *nlp.Doc, fullName string) string {
	if !p.nlp.Available() || doc == nil {
		return ""
	}
	name := strings.ToLower(fullName)
	var valid []string
	for _, e := range doc.Filter(nlp.GPE) {
		cand := strings.TrimSpace(e.Text)
		if len(cand) <= 2 || len(cand) >= 50 || !reLetter.MatchString(cand) {
			continue
		}
		if name != "" && strings.Contains(name, strings.ToLower(cand)) {
			continue
		}
		if p.isAlias(cand) {
			continue
		}
		valid = append(valid, cand)
	}
	if len(valid) == 0 {
		return ""
	}
	for _, c := range valid {
		if reLocationShape.MatchString(c) {
			return CleanText(c)
		}
	}
	return CleanText(valid[0])
}

// cutEntryLocation takes a trailing or comma-preceded "City, ST" / "City, Region" /
// "Remote" off an experience header. The state part must be an upper-case code that is
// not a company legal form, or a known region name.
func (p *Parser) cutEntryLocation(header string) (location, rest string) {
	if m := reRemoteTail.FindStringSubmatchIndex(header); m != nil {
		return "Remote", strings.Trim(header[:m[0]], " ,-(|")
	}

	parts := strings.Split(header, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	for i := len(parts) - 1; i >= 1; i-- {
		if strings.EqualFold(parts[i], "remote") {
			return "Remote", joinParts(parts, i, i+1)
		}
		city, state := parts[i-1], parts[i]
		if !reCityPart.MatchString(city) || len(strings.Fields(city)) > 4 || !p.isStateOrRegion(state) {
			continue
		}
		// Without a comma in front the city part is the whole header prefix.
		if i-1 == 0 && len(parts) > 2 {
			continue
		}
		return CleanText(city + ", " + state), joinParts(parts, i-1, i+1)
	}
	return "", header
}

func (p *Parser) isStateOrRegion(s string) bool {
	if len(s) == 2 && isUpper(s) {
		_, form := p.companyForms[s]
		return !form
	}
	_, ok := p.regions[strings.ToLower(s)]
	return ok
}

// joinParts glues comma parts back together without the [from, to) range.
func joinParts(parts []string, from, to int) string {
	kept := append(append([]string(nil), parts[:from]...), parts[to:]...)
	var nonEmpty []string
	for _, k := range kept {
		if k != "" {
			nonEmpty = append(nonEmpty, k)
		}
	}
	return strings.Trim(strings.Join(nonEmpty, ", "), " ,-")
}
