package linguistics

import "strings"

// FollowUpDetector decides whether a learner turn builds on the stakeholder's
// previous answer. prevStakeholderText is empty when there was none.
type FollowUpDetector interface {
	IsFollowUp(text, prevStakeholderText string) bool
}

// FollowUpFunc adapts an ordinary function to FollowUpDetector
type FollowUpFunc func(text, prevStakeholderText string) bool

// IsFollowUp calls f(text, prevStakeholderText)
func (f FollowUpFunc) IsFollowUp(text, prevStakeholderText string) bool {
	return f(text, prevStakeholderText)
}

var defaultFollowUpStarters = []string{
	"you mentioned",
	"earlier you said",
	"can you expand",
	"tell me more",
	"what do you mean",
	"how so",
	"in what way",
	"that's interesting",
	"that sounds",
}

// PatternFollowUps matches a fixed set of follow-up sentence starters. It
// ignores the previous stakeholder turn.
type PatternFollowUps struct {
	starters []string
}

// NewPatternFollowUps builds a detector from starters; none uses the defaults
func NewPatternFollowUps(starters ...string) *PatternFollowUps {
	if len(starters) == 0 {
		starters = defaultFollowUpStarters
	}
	normalized := make([]string, 0, len(starters))
	for _, s := range starters {
		if n := Normalize(s); n != "" {
			normalized = append(normalized, n)
		}
	}
	return &PatternFollowUps{starters: normalized}
}

// IsFollowUp reports whether text starts with one of the starters
func (p *PatternFollowUps) IsFollowUp(text, _ string) bool {
	normalized := Normalize(text)
	for _, starter := range p.starters {
		if normalized == starter || strings.HasPrefix(normalized, starter+" ") {
			return true
		}
	}
	return false
}

var defaultDetector = NewPatternFollowUps()

// LooksLikeFollowUp applies the default pattern detector
func LooksLikeFollowUp(text, prevStakeholderText string) bool {
	return defaultDetector.IsFollowUp(text, prevStakeholderText)
}
