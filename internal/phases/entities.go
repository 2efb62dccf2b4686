package phases

import (
	"regexp"
	"sort"

	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/linguistics"
)

// Entity is a keyword family found in an utterance
type Entity string

// Entity tags produced by ExtractEntities
const (
	EntityTimeCost         Entity = "time_cost"
	EntityPeopleHandoff    Entity = "people_handoff"
	EntityTurnover         Entity = "turnover"
	EntityPriority         Entity = "priority"
	EntityMetric           Entity = "metric"
	EntityApprovalDeadline Entity = "approval_deadline"
	EntityShortAnswer      Entity = "short_answer"
)

// ShortAnswerWords is the word count below which an answer is short
const ShortAnswerWords = 8

var entityPatterns = []struct {
	entity  Entity
	pattern *regexp.Regexp
}{
	{EntityTimeCost, regexp.MustCompile(`(?i)\b(minutes?|hours?|days?|weeks?|months?|time|slow|slower|delays?|delayed|waiting|cost|costs|costly|expensive|budget|money|dollars?|pounds?|overtime)\b|[$£€]\s?\d`)},
	{EntityPeopleHandoff, regexp.MustCompile(`(?i)\b(hand\s?-?offs?|handover|handed|pass(es|ed)?\s+(it\s+)?(on|over|to)|team|teams|department|colleagues?|managers?|staff|someone\s+else|another\s+team)\b`)},
	{EntityTurnover, regexp.MustCompile(`(?i)\b(turnover|attrition|quit|quitting|resign(ed|ing|ation)?|leaving|left\s+the\s+company|churn|burn\s?-?out|burnt\s+out|morale)\b`)},
	{EntityPriority, regexp.MustCompile(`(?i)\b(priority|priorities|prioriti[sz]e|most\s+important|biggest|top|urgent|critical|first\s+thing|matters\s+most)\b`)},
	{EntityMetric, regexp.MustCompile(`(?i)\d+(\.\d+)?\s?%|\b(percent|kpis?|metrics?|measured?|measurement|rate|targets?|slas?|nps|score)\b`)},
	{EntityApprovalDeadline, regexp.MustCompile(`(?i)\b(approvals?|approved?|sign\s?-?off|signed\s+off|deadlines?|due\s+date|due\s+by|compliance|audit|regulat(ory|ion|ions)|legal)\b`)},
}

// Entities is the set of tags found in one utterance
type Entities map[Entity]bool

// Has reports whether e was found
func (s Entities) Has(e Entity) bool {
	return s[e]
}

// HasAny reports whether any of es was found
func (s Entities) HasAny(es []Entity) bool {
	for _, e := range es {
		if s[e] {
			return true
		}
	}
	return false
}

// List returns the tags in sorted order
func (s Entities) List() []Entity {
	out := make([]Entity, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ExtractEntities scans text for keyword families. Answers under
// ShortAnswerWords words are also tagged short_answer.
func ExtractEntities(text string) Entities {
	found := make(Entities)
	for _, ep := range entityPatterns {
		if ep.pattern.MatchString(text) {
			found[ep.entity] = true
		}
	}
	if linguistics.WordCount(text) < ShortAnswerWords {
		found[EntityShortAnswer] = true
	}
	return found
}

// KnownEntity reports whether e is produced by ExtractEntities
func KnownEntity(e Entity) bool {
	if e == EntityShortAnswer {
		return true
	}
	for _, ep := range entityPatterns {
		if ep.entity == e {
			return true
		}
	}
	return false
}
