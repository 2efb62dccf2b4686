// Package phases defines the guided-interview phase graph and evaluates its transitions.
package phases

import "github.com/Techascendconsulting/stakeholder-v1-sub011/internal/types"

// EntryRequirement gates entry into a phase
type EntryRequirement struct {
	// MinExamples is the number of learner questions needed before entering
	MinExamples int `json:"min_examples,omitempty" yaml:"min_examples,omitempty"`
}

// Transition moves the session to To when an event of type On arrives and
// every named condition in If holds.
type Transition struct {
	On types.EventType `json:"event" yaml:"event"`
	If []string        `json:"if,omitempty" yaml:"if,omitempty"`
	To string          `json:"to" yaml:"to"`
}

// CaptureRule stores stakeholder answers into a CapturedData field. When
// When is non-empty the answer must carry at least one of the entities.
type CaptureRule struct {
	Field types.CaptureField `json:"field" yaml:"field"`
	When  []Entity           `json:"when,omitempty" yaml:"when,omitempty"`
}

// Phase is one node of the interview graph. ExitConditions name the
// predicates that mark the phase's goal as met; they are reported by
// Machine.ExitReady and never block a transition, which only Transition.If does.
type Phase struct {
	ID             string           `json:"id" yaml:"id"`
	Name           string           `json:"name" yaml:"name"`
	Goal           string           `json:"goal,omitempty" yaml:"goal,omitempty"`
	Entry          EntryRequirement `json:"entry,omitempty" yaml:"entry,omitempty"`
	ExitConditions []string         `json:"exit_conditions,omitempty" yaml:"exit_conditions,omitempty"`
	Cards          []string         `json:"cards,omitempty" yaml:"cards,omitempty"`
	Transitions    []Transition     `json:"transitions,omitempty" yaml:"transitions,omitempty"`
	ProgressWeight float64          `json:"progress_weight" yaml:"progress_weight"`
	Capture        *CaptureRule     `json:"capture,omitempty" yaml:"capture,omitempty"`
	Initial        bool             `json:"initial,omitempty" yaml:"initial,omitempty"`
	Terminal       bool             `json:"terminal,omitempty" yaml:"terminal,omitempty"`
}
