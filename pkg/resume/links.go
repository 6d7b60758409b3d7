package resume

import (
	"regexp"
	"sort"
	"strings"
)

var (
	reURL      = regexp.MustCompile(`(?i)(?:https?://|www\.)[^\s<>"']+`)
	reLinkedIn = regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?linkedin\.com/(?:in|pub|company)/[\w\-_]+`)
	reGitHub   = regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?github\.com/[\w\-_]+`)
	reTwitter  = regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?(?:twitter|x)\.com/\w+`)
)

// Links is the outcome of link classification. Each primary slot holds at most one URL.
type Links struct {
	LinkedIn  string
	GitHub    string
	Twitter   string
	Portfolio string
	Other     []string
}

type linkSlot struct {
	re   *regexp.Regexp
	slot func(*Links) *string
}

// primarySlots are tried in order; a URL lands in the first empty slot whose pattern matches.
var primarySlots = []linkSlot{
	{reLinkedIn, func(l *Links) *string { return &l.LinkedIn }},
	{reGitHub, func(l *Links) *string { return &l.GitHub }},
	{reTwitter, func(l *Links) *string { return &l.Twitter }},
}

// ClassifyLinks buckets document hyperlinks plus URLs found in text. Candidates are
// visited in sorted order so the result does not depend on where links appear.
func ClassifyLinks(text string, annotations []string, portfolioKeywords []string) Links {
	seen := make(map[string]struct{})
	add := func(u string) {
		u = strings.TrimRight(strings.TrimSpace(u), "/")
		if u != "" {
			seen[u] = struct{}{}
		}
	}
	for _, u := range reURL.FindAllString(text, -1) {
		add(u)
	}
	for _, u := range annotations {
		add(u)
	}
	candidates := make([]string, 0, len(seen))
	for u := range seen {
		candidates = append(candidates, u)
	}
	sort.Strings(candidates)

	out := Links{Other: []string{}}
	var rest []string
	for _, u := range candidates {
		switch assignPrimary(&out, u) {
		case slotFilled:
		case slotTaken:
			// a second profile for a filled slot is never a portfolio candidate
			if !strings.Contains(u, "@") {
				out.Other = append(out.Other, u)
			}
		default:
			rest = append(rest, u)
		}
	}

	for _, u := range rest {
		lower := strings.ToLower(u)
		switch {
		case out.Portfolio == "" && containsAny(lower, portfolioKeywords):
			out.Portfolio = u
		case strings.Contains(u, "@"):
		default:
			out.Other = append(out.Other, u)
		}
	}
	sort.Strings(out.Other)
	return out
}

type slotResult int

const (
	slotNone   slotResult = iota // matched no primary pattern
	slotFilled                   // stored in its slot
	slotTaken                    // matched a pattern whose slot was already filled
)

// assignPrimary tests u against the primary patterns in order. The first matching
// pattern decides, whether or not its slot is still free.
func assignPrimary(l *Links, u string) slotResult {
	for _, s := range primarySlots {
		if !s.re.MatchString(u) {
			continue
		}
		dst := s.slot(l)
		if *dst != "" {
			return slotTaken
		}
		*dst = u
		return slotFilled
	}
	return slotNone
}
