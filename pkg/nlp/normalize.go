package nlp

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`[^a-z0-9]+`)
var multiSpace = regexp.MustCompile(`\s+`)

// Normalize приводит строку к нижнему регистру и заменяет все "не-слова" на пробелы.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = nonWord.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
