package phases

import "github.com/Techascendconsulting/stakeholder-v1-sub011/internal/types"

// Phase ids of the default graph
const (
	PhaseWarmUp             = "warm_up"
	PhaseProblemExploration = "problem_exploration"
	PhaseImpact             = "impact"
	PhasePrioritisation     = "prioritisation"
	PhaseRootCause          = "root_cause"
	PhaseSuccessCriteria    = "success_criteria"
	PhaseConstraints        = "constraints"
	PhaseNextSteps          = "next_steps"
	PhaseWrapUp             = "wrap_up"
)

func advanceTo(id string) Transition {
	return Transition{On: types.EventAdvance, To: id}
}

func answerTo(id string, conds ...string) Transition {
	return Transition{On: types.EventAnswerReceived, If: conds, To: id}
}

// DefaultPhases returns a fresh copy of the built-in nine-phase interview.
// Every phase can be left with an explicit advance; answers move the
// session on automatically once the phase has what it needs.
func DefaultPhases() []Phase {
	return []Phase{
		{
			ID:             PhaseWarmUp,
			Name:           "Warm-up",
			Goal:           "Build rapport and learn the stakeholder's role.",
			Cards:          []string{"intro", "role"},
			Transitions:    []Transition{advanceTo(PhaseProblemExploration)},
			ProgressWeight: 5,
			Initial:        true,
		},
		{
			ID:             PhaseProblemExploration,
			Name:           "Problem exploration",
			Goal:           "Surface at least two concrete pain points.",
			Entry:          EntryRequirement{MinExamples: 1},
			ExitConditions: []string{"pain_points_min_2"},
			Cards:          []string{"pain_points", "blockers", "handoffs"},
			Transitions: []Transition{
				answerTo(PhaseImpact, "pain_points_min_2", "mentions_time_cost"),
				advanceTo(PhaseImpact),
			},
			ProgressWeight: 20,
			Capture:        &CaptureRule{Field: types.CapturePainPoints},
		},
		{
			ID:             PhaseImpact,
			Name:           "Impact",
			Goal:           "Quantify what the problems cost in time, money or people.",
			Entry:          EntryRequirement{MinExamples: 2},
			ExitConditions: []string{"impact_captured"},
			Cards:          []string{"impact"},
			Transitions: []Transition{
				answerTo(PhasePrioritisation, "impact_captured", "mentions_priority"),
				advanceTo(PhasePrioritisation),
			},
			ProgressWeight: 15,
			Capture: &CaptureRule{
				Field: types.CaptureImpactNotes,
				When:  []Entity{EntityTimeCost, EntityMetric, EntityTurnover, EntityPeopleHandoff},
			},
		},
		{
			ID:             PhasePrioritisation,
			Name:           "Prioritisation",
			Goal:           "Agree which problem matters most.",
			ExitConditions: []string{"priority_chosen"},
			Cards:          []string{"priority"},
			Transitions: []Transition{
				answerTo(PhaseRootCause, "priority_chosen"),
				advanceTo(PhaseRootCause),
			},
			ProgressWeight: 10,
			Capture:        &CaptureRule{Field: types.CapturePriority, When: []Entity{EntityPriority}},
		},
		{
			ID:             PhaseRootCause,
			Name:           "Root cause",
			Goal:           "Find why the chosen problem happens.",
			ExitConditions: []string{"root_cause_captured"},
			Cards:          []string{"root_causes"},
			Transitions: []Transition{
				answerTo(PhaseSuccessCriteria, "root_cause_captured", "mentions_people_handoff"),
				advanceTo(PhaseSuccessCriteria),
			},
			ProgressWeight: 15,
			Capture:        &CaptureRule{Field: types.CaptureRootCauses},
		},
		{
			ID:             PhaseSuccessCriteria,
			Name:           "Success criteria",
			Goal:           "Define how the stakeholder will know it is fixed.",
			ExitConditions: []string{"success_criteria_captured"},
			Cards:          []string{"success_criteria"},
			Transitions: []Transition{
				answerTo(PhaseConstraints, "success_criteria_captured"),
				advanceTo(PhaseConstraints),
			},
			ProgressWeight: 15,
			Capture:        &CaptureRule{Field: types.CaptureSuccessCriteria, When: []Entity{EntityMetric}},
		},
		{
			ID:             PhaseConstraints,
			Name:           "Constraints",
			Goal:           "Uncover approvals, deadlines and budget limits.",
			ExitConditions: []string{"constraints_captured"},
			Cards:          []string{"constraints"},
			Transitions: []Transition{
				answerTo(PhaseNextSteps, "constraints_captured"),
				advanceTo(PhaseNextSteps),
			},
			ProgressWeight: 10,
			Capture: &CaptureRule{
				Field: types.CaptureConstraints,
				When:  []Entity{EntityApprovalDeadline, EntityTimeCost},
			},
		},
		{
			ID:             PhaseNextSteps,
			Name:           "Next steps",
			Goal:           "Agree follow-up actions and owners.",
			ExitConditions: []string{"next_steps_captured"},
			Cards:          []string{"next_steps"},
			Transitions: []Transition{
				answerTo(PhaseWrapUp, "next_steps_captured"),
				advanceTo(PhaseWrapUp),
			},
			ProgressWeight: 5,
			Capture:        &CaptureRule{Field: types.CaptureNextSteps},
		},
		{
			ID:             PhaseWrapUp,
			Name:           "Wrap-up",
			Goal:           "Summarise and thank the stakeholder.",
			ProgressWeight: 5,
			Terminal:       true,
		},
	}
}

// Default returns a machine over DefaultPhases and DefaultConditions
func Default() *Machine {
	m, err := NewMachine(DefaultPhases(), DefaultConditions())
	if err != nil {
		panic(err)
	}
	return m
}
