package linguistics

import "strings"

// DefaultMinWords is the word count at which a stakeholder reply counts as substantial
const DefaultMinWords = 18

// closedPrefixes are auxiliary verbs that open a yes/no question
var closedPrefixes = map[string]bool{
	"is": true, "are": true, "do": true, "does": true, "did": true,
	"can": true, "could": true, "should": true, "would": true, "will": true,
	"have": true, "has": true, "may": true, "might": true,
}

// IsClosedQuestion reports whether text opens with an auxiliary verb, which
// invites a yes/no answer.
func IsClosedQuestion(text string) bool {
	words := strings.Fields(Normalize(text))
	if len(words) == 0 {
		return false
	}
	return closedPrefixes[words[0]]
}

// IsSubstantialResponse reports whether text has at least minWords words.
// A non-positive minWords uses DefaultMinWords.
func IsSubstantialResponse(text string, minWords int) bool {
	if minWords <= 0 {
		minWords = DefaultMinWords
	}
	return WordCount(text) >= minWords
}
