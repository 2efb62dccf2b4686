package phases

import (
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/linguistics"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/types"
)

// Input is what a condition may look at: the latest utterance, its
// entities and the data captured so far.
type Input struct {
	Event    types.EventType
	Text     string
	Entities Entities
	Data     *types.CapturedData
}

// NewInput extracts entities from text and bundles the evaluation input
func NewInput(event types.EventType, text string, data *types.CapturedData) Input {
	if data == nil {
		data = &types.CapturedData{}
	}
	return Input{Event: event, Text: text, Entities: ExtractEntities(text), Data: data}
}

// Condition is a named boolean predicate used by transitions
type Condition func(in Input) bool

// Conditions maps condition names to predicates
type Conditions map[string]Condition

// Register adds or replaces a condition
func (c Conditions) Register(name string, cond Condition) {
	c[name] = cond
}

// Clone returns a shallow copy of the registry
func (c Conditions) Clone() Conditions {
	out := make(Conditions, len(c))
	for name, cond := range c {
		out[name] = cond
	}
	return out
}

func mentions(e Entity) Condition {
	return func(in Input) bool { return in.Entities.Has(e) }
}

// DefaultConditions returns a fresh registry of the built-in conditions
func DefaultConditions() Conditions {
	return Conditions{
		"mentions_time_cost":         mentions(EntityTimeCost),
		"mentions_people_handoff":    mentions(EntityPeopleHandoff),
		"mentions_turnover":          mentions(EntityTurnover),
		"mentions_priority":          mentions(EntityPriority),
		"mentions_metric":            mentions(EntityMetric),
		"mentions_approval_deadline": mentions(EntityApprovalDeadline),
		"answer_is_short":            mentions(EntityShortAnswer),
		"answer_is_detailed": func(in Input) bool {
			return linguistics.IsSubstantialResponse(in.Text, linguistics.DefaultMinWords)
		},
		"pain_points_min_2":         func(in Input) bool { return len(in.Data.PainPoints) >= 2 },
		"impact_captured":           func(in Input) bool { return len(in.Data.ImpactNotes) > 0 },
		"priority_chosen":           func(in Input) bool { return in.Data.ChosenPriority != "" },
		"root_cause_captured":       func(in Input) bool { return len(in.Data.RootCauses) > 0 },
		"success_criteria_captured": func(in Input) bool { return len(in.Data.SuccessCriteria) > 0 },
		"constraints_captured":      func(in Input) bool { return len(in.Data.Constraints) > 0 },
		"next_steps_captured":       func(in Input) bool { return len(in.Data.NextSteps) > 0 },
	}
}
