package resume

import (
	"regexp"
	"strings"

	"github.com/artem13815/resumeparser/pkg/nlp"
)

var reEduFallbackSplit = regexp.MustCompile(`(?i)\s+at\s+|\s+from\s+|\s*-\s*|\s*,\s*`)

// parseEducation splits the section into entries and parses each one.
func (p *Parser) parseEducation(lines []string) []EducationEntry {
	entries := []EducationEntry{}
	var current []string
	flush := func() {
		if len(current) == 0 {
			return
		}
		if e, ok := p.parseEducationEntry(current); ok {
			entries = append(entries, e)
		}
	}
	for _, raw := range lines {
		line := CleanText(raw)
		if line == "" {
			continue
		}
		if p.startsEducationEntry(line, current) && len(current) > 0 {
			flush()
			current = []string{raw}
			continue
		}
		current = append(current, raw)
	}
	flush()
	p.log.Debug("education parsed", "entries", len(entries))
	return entries
}

func (p *Parser) startsEducationEntry(line string, current []string) bool {
	if p.startsWithBullet(line) {
		return false
	}
	lower := strings.ToLower(line)
	dated := containsDate(line)
	degree := anyMatch(p.degreeWords, lower)
	school := anyMatch(p.schoolWords, lower)
	words := strings.Fields(line)
	short := len(words) < 9

	switch {
	case dated && (degree || school || (short && isTitle(line))):
		return true
	case degree && school && short:
		return true
	case len(current) == 0 && (dated || degree || school):
		return true
	case short && (isTitle(line) || startsUpper(words[0])) && !hasAnyPrefix(lower, p.lex.Education.SubfieldPrefixes):
		if len(current) == 0 {
			return true
		}
		prev := strings.ToLower(current[len(current)-1])
		prevHeader := containsDate(prev) || anyMatch(p.degreeWords, prev) ||
			anyMatch(p.schoolWords, prev) || strings.HasPrefix(prev, "summary")
		return !prevHeader
	}
	return false
}

// parseEducationEntry decomposes one entry into degree, school, dates and summary.
// ok is false when nothing was found.
func (p *Parser) parseEducationEntry(lines []string) (EducationEntry, bool) {
	var e EducationEntry
	text := CleanText(strings.Join(lines, "\n"))
	var rest string
	e.StartDate, e.EndDate, rest = ExtractDateRange(text)

	var remaining []string
	for _, l := range strings.Split(rest, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			remaining = append(remaining, l)
		}
	}
	if len(remaining) == 0 {
		return e, !e.empty()
	}

	header := remaining[0]
	body := remaining[1:]
	if hasAnyPrefix(strings.ToLower(header), p.lex.Education.SummaryKeywords) && len(strings.Fields(header)) < 5 {
		header, body = "", remaining
	}
	e.Summary = strings.Join(body, " ")

	if header = strings.Trim(header, " ,-"); header != "" {
		e.Degree, e.School = p.degreeAndSchool(header)
	}
	e.Degree = keepAlnum(CleanText(e.Degree))
	e.School = keepAlnum(CleanText(e.School))
	p.foldHonors(&e)

	p.log.Debug("education entry", "degree", e.Degree, "school", e.School, "start", e.StartDate, "end", e.EndDate)
	return e, !e.empty()
}

// degreeAndSchool reads degree and school off an entry header. The longest degree
// keyword wins; without one the header is split in two and the halves are classified.
func (p *Parser) degreeAndSchool(header string) (degree, school string) {
	lower := strings.ToLower(header)
	for _, kw := range p.degrees {
		m := kw.re.FindString(header)
		if m == "" {
			continue
		}
		cand := strings.Trim(m, " ,-")
		// "School of Engineering" names a school, not an engineering degree.
		if i := strings.LastIndex(lower, "school of"); i >= 0 && wordIn(kw.word, lower[i+len("school of"):]) &&
			!containsAny(strings.ToLower(cand), p.lex.ShortDegrees) {
			continue
		}
		return cand, p.schoolAround(header, cand)
	}
	return p.splitEducationHeader(header)
}

// schoolAround removes the degree from the header and keeps what is left when it is
// long enough to be a school name.
func (p *Parser) schoolAround(header, degree string) string {
	lowerDeg := strings.ToLower(degree)
	var cand string
	if i := strings.LastIndex(header, ","); i >= 0 && strings.HasPrefix(strings.ToLower(strings.TrimSpace(header[i+1:])), lowerDeg) {
		cand = trimConnectors(header[:i])
	} else {
		lower := strings.ToLower(header)
		switch {
		case strings.HasPrefix(lower, lowerDeg):
			cand = trimConnectors(header[len(degree):])
		case strings.HasSuffix(lower, lowerDeg):
			cand = trimConnectors(header[:len(header)-len(degree)])
		default:
			if i := strings.Index(lower, lowerDeg); i >= 0 {
				cand = trimConnectors(header[:i])
			}
		}
	}
	if len(cand) > 3 {
		return cand
	}
	return ""
}

func (p *Parser) splitEducationHeader(header string) (degree, school string) {
	parts := reEduFallbackSplit.Split(header, 2)
	if len(parts) == 1 {
		if p.hasSchoolWord(parts[0]) || p.hasEntity(parts[0], nlp.Org) {
			return "", strings.TrimSpace(parts[0])
		}
		return strings.TrimSpace(parts[0]), ""
	}
	p0, p1 := strings.Trim(parts[0], " ,-"), strings.Trim(parts[1], " ,-")
	p0School := p.hasSchoolWord(p0) || p.hasEntity(p0, nlp.Org)
	p1School := p.hasSchoolWord(p1) || p.hasEntity(p1, nlp.Org)
	p0Degree := containsAny(strings.ToLower(p0), p.lex.ShortDegrees)
	p1Degree := containsAny(strings.ToLower(p1), p.lex.ShortDegrees)

	switch {
	case p0Degree && p1School:
		return p0, p1
	case p0School && p1Degree:
		return p1, p0
	case p1School:
		return p0, p1
	case p0School:
		return p1, p0
	}
	return p0, p1
}

// foldHonors moves a Latin honour from school (or else degree) into the summary.
func (p *Parser) foldHonors(e *EducationEntry) {
	honor := ""
	for _, field := range []*string{&e.School, &e.Degree} {
		if *field == "" {
			continue
		}
		for _, h := range p.honors {
			if !strings.Contains(strings.ToLower(*field), h.word) {
				continue
			}
			*field = strings.Trim(h.re.ReplaceAllString(*field, ""), " ,-")
			honor = capitalize(h.word)
			break
		}
		if honor != "" {
			break
		}
	}
	if honor == "" {
		return
	}
	if e.Summary != "" {
		e.Summary = honor + "; " + e.Summary
	} else {
		e.Summary = honor
	}
}

// trimConnectors strips separators and dangling "of"/"in"/"at"/"from" words.
func trimConnectors(s string) string {
	for {
		s = strings.Trim(s, " ,-@")
		lower := strings.ToLower(s)
		trimmed := false
		for _, w := range []string{"of", "in", "at", "from"} {
			if strings.HasPrefix(lower, w+" ") {
				s, trimmed = s[len(w)+1:], true
				break
			}
			if strings.HasSuffix(lower, " "+w) {
				s, trimmed = s[:len(s)-len(w)-1], true
				break
			}
		}
		if !trimmed {
			return s
		}
	}
}

func keepAlnum(s string) string {
	if hasAlnum(s) {
		return s
	}
	return ""
}

func wordIn(word, text string) bool {
	for _, w := range strings.Fields(text) {
		if w == word {
			return true
		}
	}
	return false
}
