package resume

import (
	"regexp"
	"strings"

	"github.com/artem13815/resumeparser/pkg/nlp"
)

var reAtSplit = regexp.MustCompile(`(?i)\s+at\s+`)

// lineSignals are the features the experience header rules look at.
type lineSignals struct {
	line        string
	lower       string
	words       []string
	dated       bool
	jobWord     bool
	suffix      bool
	school      bool
	titleCase   bool
	orgEntity   bool
	award       bool
	prevOrgLine bool
}

type headerRule struct {
	name  string
	match func(s *lineSignals) bool
}

// experienceHeaderRules decide whether a line opens a new entry. The first match wins.
var experienceHeaderRules = []headerRule{
	{"after organisation line", func(s *lineSignals) bool {
		return s.prevOrgLine && ((s.dated && len(s.words) < 10) ||
			(s.jobWord && len(s.words) < 10) ||
			(len(s.words) < 7 && isTitle(s.line)))
	}},
	{"dated entry", func(s *lineSignals) bool {
		return s.dated && (s.suffix || s.jobWord || s.titleCase || s.orgEntity || s.school) && !s.award
	}},
	{"short organisation line", func(s *lineSignals) bool {
		return len(s.words) <= 9 && s.titleCase && (s.orgEntity || s.suffix || s.school) && !s.award
	}},
	{"title with employer", func(s *lineSignals) bool {
		return s.jobWord && (s.suffix || s.orgEntity || s.school) && len(s.words) < 12
	}},
	{"organisation name", func(s *lineSignals) bool {
		if !(s.orgEntity || s.school) || !s.titleCase || len(s.words) > 9 {
			return false
		}
		switch s.lower {
		case "company", "organization", "department", "university", "college", "school":
			return len(s.words) != 1
		}
		return true
	}},
}

// parseExperience splits the section into entries and parses each one.
func (p *Parser) parseExperience(lines []string) []ExperienceEntry {
	entries := []ExperienceEntry{}
	var current []string
	flush := func() {
		if len(current) == 0 {
			return
		}
		if e, ok := p.parseExperienceEntry(current); ok {
			entries = append(entries, e)
		}
	}
	for _, raw := range lines {
		line := CleanText(raw)
		if line == "" {
			continue
		}
		header := p.looksLikeExperienceHeader(line, current) || (len(current) == 0 && p.looksLikeEmployer(line))
		if header && len(current) > 0 {
			flush()
			current = []string{raw}
			continue
		}
		current = append(current, raw)
	}
	flush()
	p.log.Debug("experience parsed", "entries", len(entries))
	return entries
}

func (p *Parser) looksLikeExperienceHeader(line string, current []string) bool {
	line = CleanText(line)
	words := strings.Fields(line)
	if len(words) == 0 || p.startsWithBullet(line) {
		return false
	}
	s := &lineSignals{line: line, lower: strings.ToLower(line), words: words}
	s.dated = containsDate(line)
	s.jobWord = anyMatch(p.jobWords, s.lower)
	s.suffix = anyMatch(p.suffixWords, s.lower)
	s.school = anyMatch(p.schoolWords, s.lower)

	if len(words) > 15 && !(s.dated && (s.jobWord || s.suffix || s.school)) {
		return false
	}
	if len(current) == 1 {
		prev := CleanText(current[0])
		s.prevOrgLine = len(strings.Fields(prev)) <= 6 && isTitle(prev) &&
			(p.hasEntity(prev, nlp.Org) || p.hasCompanySuffix(prev) || p.hasSchoolWord(prev))
	}

	capWords := 0
	for _, w := range words {
		if startsUpper(w) {
			capWords++
		}
	}
	s.titleCase = isTitle(line) ||
		(len(words) < 12 && capWords > 0 && float64(capWords)/float64(len(words)) >= 0.35) ||
		(len(words) <= 7 && capWords >= 1)
	s.orgEntity = p.orgLikeEntity(line, len(words))
	s.award = containsAny(s.lower, p.lex.Experience.AwardKeywords)

	for _, rule := range experienceHeaderRules {
		if rule.match(s) {
			p.log.Debug("experience header", "rule", rule.name, "line", line)
			return true
		}
	}
	return false
}

func (p *Parser) orgLikeEntity(line string, words int) bool {
	if !p.nlp.Available() {
		return false
	}
	lower := strings.ToLower(line)
	for _, e := range p.nlp.Analyze(line).Filter(nlp.Org, nlp.GPE) {
		n := len(strings.Fields(e.Text))
		if n < 1 || n > 7 {
			continue
		}
		if len(e.Text) > 3 || (words <= 8 && strings.Contains(lower, strings.ToLower(e.Text))) {
			return true
		}
	}
	return false
}

// looksLikeEmployer accepts a short title-case organisation line as the first header
// of the section.
func (p *Parser) looksLikeEmployer(line string) bool {
	if len(strings.Fields(line)) > 6 || !isTitle(line) {
		return false
	}
	if hasAnyPrefix(strings.ToLower(line), p.lex.Experience.NonHeaderPrefixes) {
		return false
	}
	return p.hasEntity(line, nlp.Org) || p.hasCompanySuffix(line) || p.hasSchoolWord(line)
}

// parseExperienceEntry decomposes an entry: the first line is the header, the rest
// is the description.
func (p *Parser) parseExperienceEntry(lines []string) (ExperienceEntry, bool) {
	var e ExperienceEntry
	header := CleanText(lines[0])
	var desc []string
	for _, l := range lines[1:] {
		if l = CleanText(l); l != "" {
			desc = append(desc, l)
		}
	}
	e.Description = strings.TrimSpace(strings.Join(desc, " "))

	e.StartDate, e.EndDate, header = ExtractDateRange(header)
	e.Location, header = p.cutEntryLocation(header)
	header = stripDateLeftovers(header)

	if header != "" {
		e.JobTitle, e.Company = p.titleAndCompany(header)
	}
	e.JobTitle = keepAlnum(CleanText(e.JobTitle))
	e.Company = keepAlnum(CleanText(e.Company))

	p.log.Debug("experience entry", "title", e.JobTitle, "company", e.Company, "location", e.Location,
		"start", e.StartDate, "end", e.EndDate)
	return e, !e.empty()
}

// splitHeader breaks a header on " at ", then " - ", then a last comma followed by
// something organisation-like, then a bare hyphen.
func (p *Parser) splitHeader(header string) []string {
	switch {
	case reAtSplit.MatchString(header):
		return reAtSplit.Split(header, 2)
	case strings.Contains(header, " - "):
		return strings.SplitN(header, " - ", 2)
	case strings.Contains(header, ","):
		i := strings.LastIndex(header, ",")
		before, after := strings.TrimSpace(header[:i]), strings.TrimSpace(header[i+1:])
		employer := p.hasCompanySuffix(after) || p.hasSchoolWord(after) ||
			(len(strings.Fields(after)) < 5 && p.hasEntity(after, nlp.Org))
		if employer && before != "" {
			return []string{before, after}
		}
		return []string{header}
	case strings.Contains(header, "-") && !strings.Contains(strings.ToLower(header), "co-op"):
		return strings.SplitN(header, "-", 2)
	}
	return []string{header}
}

func (p *Parser) titleAndCompany(header string) (title, company string) {
	parts := p.splitHeader(header)
	if len(parts) == 2 {
		return p.assignTitleCompany(strings.Trim(parts[0], " ,-"), strings.Trim(parts[1], " ,-"))
	}
	return p.splitSegment(strings.Trim(parts[0], " ,-"))
}

type partSignals struct {
	org, suffix, school bool
	jobWords            int
	words               int
}

func (p *Parser) partSignals(part string) partSignals {
	lower := strings.ToLower(part)
	s := partSignals{
		org:    p.hasEntity(part, nlp.Org),
		suffix: p.hasCompanySuffix(part),
		school: p.hasSchoolWord(part),
		words:  len(strings.Fields(part)),
	}
	for _, kw := range p.lex.JobTitles {
		if strings.Contains(lower, kw) {
			s.jobWords++
		}
	}
	return s
}

func (s partSignals) employer() bool { return s.org || s.suffix || s.school }

// assignTitleCompany decides which half of a split header is the title. Ties keep
// the written order: title first, company second.
func (p *Parser) assignTitleCompany(p0, p1 string) (title, company string) {
	if p0 == "" || p1 == "" {
		if p0 != "" {
			return p0, ""
		}
		return p1, ""
	}
	a, b := p.partSignals(p0), p.partSignals(p1)
	switch {
	case b.employer() && !a.employer():
		return p0, p1
	case a.employer() && !b.employer():
		return p1, p0
	case a.jobWords > b.jobWords && !a.suffix && !a.school:
		return p0, p1
	case b.jobWords > a.jobWords && !b.suffix && !b.school:
		return p1, p0
	case a.words > b.words && b.employer():
		return p0, p1
	case b.words > a.words && a.employer():
		return p1, p0
	}
	return p0, p1
}

// splitSegment handles a header that could not be split: the longest organisation
// entity is the company, then a company suffix marks it, then keywords decide.
func (p *Parser) splitSegment(seg string) (title, company string) {
	if seg == "" {
		return "", ""
	}
	if p.nlp.Available() {
		longest := ""
		for _, e := range p.nlp.Analyze(seg).Filter(nlp.Org) {
			if len(e.Text) > len(longest) {
				longest = e.Text
			}
		}
		if len(longest) > 2 && strings.Contains(strings.ToLower(seg), strings.ToLower(longest)) {
			company = strings.TrimSpace(longest)
			re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(company) + `\b`)
			if rest := strings.Trim(re.ReplaceAllString(seg, ""), " ,-@"); len(rest) > 2 {
				title = rest
			}
			return title, company
		}
	}

	for _, re := range p.suffixSplits {
		m := re.FindString(seg)
		if m == "" {
			continue
		}
		cand := strings.TrimSpace(m)
		rest := strings.Trim(strings.ReplaceAll(seg, cand, ""), " ,-@")
		if rest == "" {
			return "", cand
		}
		if len(rest) > 2 {
			return rest, cand
		}
	}

	lower := strings.ToLower(seg)
	switch {
	case containsAny(lower, p.lex.JobTitles):
		return seg, ""
	case containsAny(lower, p.lex.Schools):
		return "", seg
	}
	return seg, ""
}
