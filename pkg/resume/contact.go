package resume

import (
	"regexp"
	"strings"
)

var (
	reEmail     = regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	rePhone     = regexp.MustCompile(`\(?\b\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`)
	rePhoneJunk = regexp.MustCompile(`[()\s.-]`)
)

// ExtractEmail returns the first email address in text, lower-cased.
func ExtractEmail(text string) string {
	return strings.ToLower(reEmail.FindString(text))
}

// ExtractPhone returns the first 3-3-4 phone number in text with separators removed.
func ExtractPhone(text string) string {
	return rePhoneJunk.ReplaceAllString(rePhone.FindString(text), "")
}
