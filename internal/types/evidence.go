//nolint:revive // types is a standard Go package name pattern
package types

// EvidenceKind describes how a learner turn came to address a key
type EvidenceKind string

const (
	// EvidenceDirectQuestion is a fresh question aimed at the key
	EvidenceDirectQuestion EvidenceKind = "direct_question"
	// EvidenceFollowUp is a probe that builds on the previous answer
	EvidenceFollowUp EvidenceKind = "follow_up"
	// EvidenceStakeholderPrompted is a question on a topic the stakeholder raised first
	EvidenceStakeholderPrompted EvidenceKind = "stakeholder_prompted"
)

// Evidence records a learner turn attributed to a must-cover key
type Evidence struct {
	Key       string       `json:"key"`
	TurnIndex int          `json:"turn_index"`
	Kind      EvidenceKind `json:"kind"`
}
