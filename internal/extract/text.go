// Package extract provides pure pattern-matching extractors that map free-form
// transcript text to typed resume field candidates. Extractors never fail: an
// input that matches nothing yields an empty result.
package extract

import (
	"regexp"
	"strings"
	"unicode"
)

var wordPattern = regexp.MustCompile(`\S+`)

// CapitalizeWords upper-cases the first letter of every whitespace-delimited
// word. This is the only case transformation applied to extracted values.
func CapitalizeWords(value string) string {
	return wordPattern.ReplaceAllStringFunc(value, func(word string) string {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		return string(runes)
	})
}

var listSeparator = regexp.MustCompile(`,|\band\b|और`)

// SplitList splits a free-text enumeration on commas and the conjunctions
// "and" / "और", trims each token, and drops empty tokens.
func SplitList(list string) []string {
	var out []string
	for _, token := range listSeparator.Split(list, -1) {
		token = strings.TrimSpace(token)
		if token != "" {
			out = append(out, token)
		}
	}
	return out
}
