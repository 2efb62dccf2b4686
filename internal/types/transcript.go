// Package types provides type definitions for structured data used throughout the coaching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Role identifies who spoke an utterance
type Role string

const (
	// RoleLearner is the business analyst being coached
	RoleLearner Role = "learner"
	// RoleStakeholder is the (simulated) interviewee
	RoleStakeholder Role = "stakeholder"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleLearner || r == RoleStakeholder
}

// Utterance is a single turn of an interview transcript
type Utterance struct {
	Role      Role       `json:"role" yaml:"role" validate:"required,oneof=learner stakeholder"`
	Text      string     `json:"text" yaml:"text"`
	Timestamp *time.Time `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// Transcript is an ordered sequence of utterances. Order is significant:
// adjacency pairs a question with its answer.
type Transcript []Utterance

// MeetingRecord is a transcript attached to the stage it was run against
type MeetingRecord struct {
	StageID      string             `json:"stage_id" yaml:"stage_id" validate:"required"`
	Transcript   Transcript         `json:"transcript" yaml:"transcript" validate:"dive"`
	Independence map[string]float64 `json:"independence,omitempty" yaml:"independence,omitempty"`
}
