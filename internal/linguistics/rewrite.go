package linguistics

import (
	"regexp"
	"strings"
)

// rewriteRule turns a closed question into an open one
type rewriteRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules are evaluated in order; the first match wins. Patterns run against the
// trimmed question with its trailing punctuation removed.
var rewriteRules = []rewriteRule{
	{regexp.MustCompile(`(?i)^should\s+we\s+(build|implement|create|add)\b.*$`), "What problem would that solve for you, and how would you know it worked?"},
	{regexp.MustCompile(`(?i)^is\s+(.+)$`), "What makes $1 feel that way?"},
	{regexp.MustCompile(`(?i)^are\s+(.+)$`), "What makes $1 feel that way?"},
	{regexp.MustCompile(`(?i)^(?:do|does)\s+(.+)$`), "What happens when $1?"},
	{regexp.MustCompile(`(?i)^did\s+(.+)$`), "What happened when $1?"},
	{regexp.MustCompile(`(?i)^(?:can|could)\s+(.+)$`), "How could $1?"},
	{regexp.MustCompile(`(?i)^(?:should|would|will)\s+(.+)$`), "What do you think would happen if $1?"},
	{regexp.MustCompile(`(?i)^(?:have|has)\s+(.+)$`), "What has your experience been when $1?"},
	{regexp.MustCompile(`(?i)^(?:may|might)\s+(.+)$`), "What could lead to $1?"},
}

var (
	disjunctionPattern = regexp.MustCompile(`(?i)\b(or|either|both)\b`)
	openStarterPattern = regexp.MustCompile(`(?i)^(what|how|why|tell me|walk me|describe)\b`)
	trailingPunct      = regexp.MustCompile(`[\s?.!]+$`)
)

// RewriteToOpen suggests an open-ended version of a closed question. Choice
// questions ("A or B?") become "How do you feel about A or B". Anything else
// is returned unchanged, so the function is idempotent.
func RewriteToOpen(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return text
	}

	if IsClosedQuestion(trimmed) {
		body := trailingPunct.ReplaceAllString(trimmed, "")
		for _, rule := range rewriteRules {
			if rule.pattern.MatchString(body) {
				return rule.pattern.ReplaceAllString(body, rule.replacement)
			}
		}
	}

	if strings.HasSuffix(trimmed, "?") && disjunctionPattern.MatchString(trimmed) && !openStarterPattern.MatchString(trimmed) {
		return "How do you feel about " + strings.TrimSpace(strings.TrimSuffix(trimmed, "?"))
	}

	return text
}
