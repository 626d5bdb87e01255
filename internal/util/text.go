package util

import (
	"regexp"
	"strings"
	"unicode"
)

var newlineRuns = regexp.MustCompile(`[\r\n]+`)

// Normalize drops everything that is not a letter, digit, underscore or
// whitespace, lowercases and trims. Applied to both sides of a match.
func Normalize(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '_' {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return strings.TrimSpace(b.String())
}

// CollapseNewlines replaces every run of CR/LF with a single space.
func CollapseNewlines(input string) string {
	return newlineRuns.ReplaceAllString(input, " ")
}
