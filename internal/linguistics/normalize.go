// Package linguistics provides heuristic classifiers for single interview utterances.
package linguistics

import (
	"regexp"
	"strings"
)

var punctuationPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)

// Normalize lower-cases, trims and strips punctuation from text
func Normalize(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	stripped := punctuationPattern.ReplaceAllString(lowered, "")
	return strings.Join(strings.Fields(stripped), " ")
}

// WordCount returns the number of whitespace-delimited words in text
func WordCount(text string) int {
	return len(strings.Fields(text))
}
