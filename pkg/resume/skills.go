package resume

import (
	"regexp"
	"sort"
	"strings"

	"github.com/artem13815/resumeparser/pkg/nlp"
)

var reSkillSplit = regexp.MustCompile(`[\n,;]|\s*[•*\-◦▪]\s+`)

var skillLabels = []nlp.Label{nlp.Org, nlp.Product, nlp.Tech, nlp.Language, nlp.NORP, nlp.WorkOfArt}

var institutionWords = []string{"university", "college", "inc.", "ltd."}

// parseSkills unions vocabulary hits, delimiter-split fragments and entity hints from
// the skills section. The result is sorted and free of duplicates.
func (p *Parser) parseSkills(lines []string) []string {
	if len(lines) == 0 {
		return []string{}
	}
	block := strings.Join(lines, "\n")
	if p.onlyHeader(SectionSkills, lines[0]) {
		block = strings.Join(lines[1:], "\n")
	}

	set := make(map[string]struct{})
	for _, s := range p.skills {
		if s.re.MatchString(block) {
			set[s.word] = struct{}{}
		}
	}

	for _, frag := range reSkillSplit.Split(block, -1) {
		frag = strings.Trim(frag, " .,;")
		if frag == "" || p.isAlias(frag) {
			continue
		}
		if plausibleSkill(frag) {
			set[frag] = struct{}{}
		}
	}

	if p.nlp.Available() {
		for _, e := range p.nlp.Analyze(block).Filter(skillLabels...) {
			text := strings.Trim(e.Text, " .,;")
			if plausibleSkill(text) && !containsAny(strings.ToLower(text), institutionWords) {
				set[text] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(set))
	for s := range set {
		s = strings.TrimSpace(s)
		if len(s) > 1 && !isDigits(s) {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return dedupeSorted(out)
}

func plausibleSkill(s string) bool {
	return len(s) >= 2 && len(s) <= 50 && !isDigits(s) && reLetter.MatchString(s) && len(strings.Fields(s)) <= 5
}

func dedupeSorted(in []string) []string {
	out := in[:0]
	for i, s := range in {
		if i == 0 || s != in[i-1] {
			out = append(out, s)
		}
	}
	return out
}
