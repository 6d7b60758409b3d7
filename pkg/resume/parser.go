package resume

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/artem13815/resumeparser/pkg/lexicon"
	"github.com/artem13815/resumeparser/pkg/nlp"
)

// Canonical section keys.
const (
	SectionSummary        = "SUMMARY"
	SectionExperience     = "EXPERIENCE"
	SectionEducation      = "EDUCATION"
	SectionSkills         = "SKILLS"
	SectionProjects       = "PROJECTS"
	SectionPublications   = "PUBLICATIONS"
	SectionCertifications = "CERTIFICATIONS"
	SectionAwards         = "AWARDS"
	SectionLeadership     = "LEADERSHIP"
	SectionOthers         = "OTHERS"
)

// Parser turns normalised resume text into a Record. It holds only read-only state
// after construction and is safe for concurrent use.
type Parser struct {
	lex *lexicon.Lexicon
	nlp nlp.Recognizer
	log *slog.Logger

	sections     []sectionAliases
	aliases      []string
	degrees      []keywordPattern
	degreeWords  []*regexp.Regexp
	schoolWords  []*regexp.Regexp
	jobWords     []*regexp.Regexp
	suffixWords  []*regexp.Regexp
	suffixSplits []*regexp.Regexp
	skills       []keywordPattern
	honors       []keywordPattern
	regions      map[string]struct{}
	companyForms map[string]struct{}
	canonical    []string
}

// Option configures a Parser.
type Option func(*Parser)

// WithRecognizer sets the entity recognizer. Defaults to nlp.Disabled.
func WithRecognizer(r nlp.Recognizer) Option {
	return func(p *Parser) {
		if r != nil {
			p.nlp = r
		}
	}
}

// WithLexicon replaces the embedded keyword tables.
func WithLexicon(lx *lexicon.Lexicon) Option {
	return func(p *Parser) {
		if lx != nil {
			p.lex = lx
		}
	}
}

// WithLogger sets the logger for per-section debug output. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.log = l
		}
	}
}

type keywordPattern struct {
	word string
	re   *regexp.Regexp
}

type sectionAliases struct {
	key     string
	aliases []string // lower-case, longest first
}

// NewParser builds a Parser and compiles its keyword and section patterns once.
// Without options it uses the embedded lexicon and no recognizer, so name, company
// and location detection fall back to the regex rules.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		lex: lexicon.Default(),
		nlp: nlp.Disabled{},
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.compile()
	return p
}

func (p *Parser) compile() {
	lx := p.lex
	for _, s := range lx.Sections {
		lower := make([]string, 0, len(s.Aliases))
		for _, a := range s.Aliases {
			lower = append(lower, strings.ToLower(a))
		}
		p.sections = append(p.sections, sectionAliases{key: s.Key, aliases: lexicon.ByLengthDesc(lower)})
		p.canonical = append(p.canonical, strings.ToLower(s.Key))
	}
	p.aliases = lx.AllAliases()

	for _, d := range lexicon.ByLengthDesc(lx.Degrees) {
		p.degrees = append(p.degrees, keywordPattern{
			word: d,
			re: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(d) +
				`\b(?:(?:,\s*)?(?:in|of|with a major in|with a concentration in|honors program in|honors)\s+[\w\s-]+)?(?:,\s*[\w\s.-]+)?`),
		})
	}
	p.degreeWords = wordPatterns(lx.Degrees)
	p.schoolWords = wordPatterns(lx.Schools)
	p.jobWords = wordPatterns(lx.JobTitles)
	p.suffixWords = wordPatterns(lx.CompanySuffixes)
	for _, s := range lexicon.ByLengthDesc(lx.CompanySuffixes) {
		p.suffixSplits = append(p.suffixSplits, regexp.MustCompile(`(?i)([\w\s.,'&]+?)\s*\b`+regexp.QuoteMeta(s)+`\b`))
	}
	for _, s := range lx.Skills {
		p.skills = append(p.skills, keywordPattern{word: s, re: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(s) + `\b`)})
	}
	for _, h := range lx.Education.Honors {
		h = strings.ToLower(h)
		p.honors = append(p.honors, keywordPattern{word: h, re: regexp.MustCompile(`(?i)(?:,\s*)?` + regexp.QuoteMeta(h) + `\b`)})
	}
	p.regions = lexicon.Set(lx.Regions)
	p.companyForms = make(map[string]struct{}, len(lx.CompanyForms))
	for _, f := range lx.CompanyForms {
		p.companyForms[strings.ToUpper(f)] = struct{}{}
	}
}

func wordPatterns(words []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		out = append(out, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(w)+`\b`))
	}
	return out
}

func anyMatch(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// hasEntity runs the recognizer over s and reports whether any entity has one of the labels.
func (p *Parser) hasEntity(s string, labels ...nlp.Label) bool {
	if !p.nlp.Available() {
		return false
	}
	return len(p.nlp.Analyze(s).Filter(labels...)) > 0
}

func (p *Parser) hasCompanySuffix(s string) bool {
	return containsAny(strings.ToLower(s), p.lex.CompanySuffixes)
}

func (p *Parser) hasSchoolWord(s string) bool {
	return containsAny(strings.ToLower(s), p.lex.Schools)
}

func (p *Parser) isAlias(s string) bool {
	s = strings.ToLower(s)
	for _, a := range p.aliases {
		if s == a {
			return true
		}
	}
	return false
}

func (p *Parser) containsAlias(s string) bool {
	return containsAny(strings.ToLower(s), p.aliases)
}

func (p *Parser) startsWithBullet(s string) bool {
	return hasAnyPrefix(s, p.lex.Bullets)
}

// Parse builds a Record from raw resume text and the document's hyperlinks. It never
// fails: missing signals leave fields empty.
func (p *Parser) Parse(text string, links []string) (rec Record) {
	rec = newRecord()
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("resume parse panicked, returning partial record", "panic", r)
		}
	}()

	cleaned := CleanText(text)
	lines := splitLines(cleaned)
	if len(lines) == 0 {
		p.log.Warn("no content lines after cleaning")
		return rec
	}

	var doc *nlp.Doc
	if p.nlp.Available() {
		doc = p.nlp.Analyze(cleaned)
	}

	rec.FullName, rec.FirstName, rec.LastName = p.resolveName(doc, lines)
	rec.Email = ExtractEmail(cleaned)
	rec.Phone = ExtractPhone(cleaned)
	rec.Location = p.locationFromHeader(lines, rec.FullName)

	l := ClassifyLinks(cleaned, links, p.lex.Portfolio)
	rec.LinkedInURL, rec.GitHubURL, rec.TwitterURL, rec.PortfolioURL = l.LinkedIn, l.GitHub, l.Twitter, l.Portfolio
	rec.OtherLinks = l.Other

	start := p.contentStart(lines, &rec)
	p.log.Debug("segmenting", "skip", start, "lines", len(lines))
	sections := p.segment(lines[start:])

	rec.Summary = p.sectionText(SectionSummary, sections[SectionSummary])
	if s := sections[SectionSkills]; len(s) > 0 {
		rec.Skills = p.parseSkills(s)
	}
	if s := sections[SectionEducation]; len(s) > 0 {
		rec.Education = p.parseEducation(s)
	}
	if s := sections[SectionExperience]; len(s) > 0 {
		rec.Experience = p.parseExperience(s)
	}
	if lead := p.sectionText(SectionLeadership, sections[SectionLeadership]); lead != "" {
		if rec.Summary != "" {
			rec.Summary += "\n\nLeadership: " + lead
		} else {
			rec.Summary = "Leadership: " + lead
		}
	}

	if rec.Location == "" {
		rec.Location = p.locationFromEntities(doc, rec.FullName)
	}
	if !p.nlp.Available() {
		p.log.Debug("entity recognizer unavailable, used rule-based fallbacks only")
	}
	return rec
}

// sectionText joins a prose section into one line, dropping a leading header line.
func (p *Parser) sectionText(key string, lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	first := strings.ToLower(CleanText(lines[0]))
	if p.isSectionAlias(key, first) || (strings.HasSuffix(first, ":") && p.isSectionAlias(key, strings.TrimSuffix(first, ":"))) {
		lines = lines[1:]
	}
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, CleanText(l))
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func (p *Parser) isSectionAlias(key, s string) bool {
	for _, sec := range p.sections {
		if sec.key != key {
			continue
		}
		for _, a := range sec.aliases {
			if s == a {
				return true
			}
		}
	}
	return false
}
