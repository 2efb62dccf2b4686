//nolint:revive // types is a standard Go package name pattern
package types

// ClosedExample is a closed question found in a transcript with a suggested open rewrite
type ClosedExample struct {
	TurnIndex int    `json:"turn_index"`
	Original  string `json:"original"`
	Rewrite   string `json:"rewrite"`
}

// CoachingAnalysis is the turn-by-turn coaching feedback for a transcript
type CoachingAnalysis struct {
	StageID        string          `json:"stage_id"`
	TotalQuestions int             `json:"total_questions"`
	ClosedCount    int             `json:"closed_count"`
	ClosedExamples []ClosedExample `json:"closed_examples"`
	FollowUpCount  int             `json:"follow_up_count"`
	// KeyCoverage counts substantial stakeholder replies per must-cover key
	KeyCoverage  map[string]float64 `json:"key_coverage"`
	Evidence     []Evidence         `json:"evidence"`
	WeakKeys     []string           `json:"weak_keys"`
	Unclassified []int              `json:"unclassified_turns"`
	Remediation  Remediation        `json:"remediation"`
}
