package resume

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reBlanks      = regexp.MustCompile(`[ \t]+`)
	reMultiSpace  = regexp.MustCompile(`\s{2,}`)
	reLineEdge    = regexp.MustCompile(`[ \t]*\n[ \t]*`)
	reMultiBlank  = regexp.MustCompile(`[ \t]{2,}`)
	reAlnum       = regexp.MustCompile(`[a-zA-Z0-9]`)
	reLetter      = regexp.MustCompile(`[a-zA-Z]`)
	reNameNoise   = regexp.MustCompile(`(?i)\d|@|://|\.com|\.org|\.edu`)
	reRawLineJunk = regexp.MustCompile(`\d|@|/|\|`)
)

// CleanText normalises raw extracted text: unified line breaks, printable ASCII only,
// trimmed lines with collapsed blanks, no empty lines. CleanText(CleanText(s)) == CleanText(s).
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var b strings.Builder
	b.Grow(len(text))
	for _, c := range text {
		if (c >= 32 && c <= 126) || c == '\t' || c == '\n' {
			b.WriteRune(c)
		}
	}

	lines := strings.Split(b.String(), "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = reBlanks.ReplaceAllString(strings.TrimSpace(line), " ")
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// splitLines returns the non-empty lines of already cleaned text.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func hasAlnum(s string) bool { return reAlnum.MatchString(s) }

// collapse squeezes whitespace runs (line breaks included) and trims separators.
func collapse(s string) string {
	return strings.Trim(reMultiSpace.ReplaceAllString(s, " "), " ,-")
}

// squeezeBlanks is collapse for multi-line text: blanks around line breaks are dropped
// and the line breaks themselves survive.
func squeezeBlanks(s string) string {
	s = reLineEdge.ReplaceAllString(s, "\n")
	return strings.Trim(reMultiBlank.ReplaceAllString(s, " "), " ,-\n")
}

// isTitle reports whether every word starts upper-case and continues lower-case.
func isTitle(s string) bool {
	cased, prevCased := false, false
	for _, c := range s {
		switch {
		case unicode.IsUpper(c):
			if prevCased {
				return false
			}
			prevCased, cased = true, true
		case unicode.IsLower(c):
			if !prevCased {
				return false
			}
			prevCased, cased = true, true
		default:
			prevCased = false
		}
	}
	return cased
}

// isUpper reports whether s has cased letters and all of them are upper-case.
func isUpper(s string) bool {
	cased := false
	for _, c := range s {
		if unicode.IsLower(c) {
			return false
		}
		if unicode.IsUpper(c) {
			cased = true
		}
	}
	return cased
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !unicode.IsDigit(c) {
			return false
		}
	}
	return true
}

func startsUpper(word string) bool {
	for _, c := range word {
		return unicode.IsUpper(c)
	}
	return false
}

// allStartUpper reports whether every word starts with an upper-case letter.
func allStartUpper(words []string) bool {
	for _, w := range words {
		if !startsUpper(w) {
			return false
		}
	}
	return true
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
