package resume

import (
	"regexp"
	"strings"
)

const (
	singleDate  = `\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}|\d{1,2}/\d{4}|\b\d{4}\b`
	presentDate = `\bPresent\b|\bCurrent\b`
	dateSep     = `\s*(?:-|–|—|to)\s*|\s+`
)

var (
	reDateRange    = regexp.MustCompile(`(?i)(` + singleDate + `)?(?:` + dateSep + `)(` + singleDate + `|` + presentDate + `)`)
	reDateSingle   = regexp.MustCompile(`(?i)(` + singleDate + `|` + presentDate + `)`)
	reDateTrailing = regexp.MustCompile(`(?i)(` + singleDate + `|` + presentDate + `)$`)
	reDateLeftover = regexp.MustCompile(`(?i)\b(?:(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}|\d{1,2}/\d{4}|\b\d{4})\b`)
)

// ExtractDateRange finds the last date range in text, or failing that the last single
// date which is then taken as the end date. The matched span is cut out and the
// remaining text is returned with blanks squeezed; line breaks are kept so multi-line
// entries can still be split into header and body. Text without dates comes back unchanged.
func ExtractDateRange(text string) (start, end, rest string) {
	if m := lastDateMatch(reDateRange, text); m != nil {
		end = CleanText(text[m[4]:m[5]])
		cut := m[0]
		if m[2] >= 0 {
			start = CleanText(text[m[2]:m[3]])
		} else {
			// "Jan 2020 - Present" can match as " - Present" after an earlier
			// " Jan 2020"; pick the start date back up if it ends the prefix.
			before := strings.TrimRight(text[:m[0]], " \t\n")
			if pm := reDateTrailing.FindStringSubmatchIndex(before); pm != nil && !strings.EqualFold(before[pm[2]:pm[3]], "present") {
				start = CleanText(before[pm[2]:pm[3]])
				cut = pm[0]
			}
		}
		return start, end, squeezeBlanks(text[:cut] + " " + text[m[1]:])
	}
	if m := lastDateMatch(reDateSingle, text); m != nil {
		end = CleanText(text[m[2]:m[3]])
		return "", end, squeezeBlanks(text[:m[0]] + " " + text[m[1]:])
	}
	return "", "", text
}

// containsDate reports whether the line carries any date-like token.
func containsDate(line string) bool {
	return lastDateMatch(reDateRange, line) != nil || lastDateMatch(reDateSingle, line) != nil
}

// stripDateLeftovers removes bare month-year, MM/YYYY and year fragments.
func stripDateLeftovers(s string) string {
	return collapse(strings.Trim(reDateLeftover.ReplaceAllString(s, " "), " ,-"))
}

// lastDateMatch returns the submatch indexes of the last match not directly followed by a digit.
func lastDateMatch(re *regexp.Regexp, s string) []int {
	var last []int
	for _, m := range re.FindAllStringSubmatchIndex(s, -1) {
		if m[1] < len(s) && s[m[1]] >= '0' && s[m[1]] <= '9' {
			continue
		}
		last = m
	}
	return last
}
