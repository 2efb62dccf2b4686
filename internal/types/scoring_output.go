//nolint:revive // types is a standard Go package name pattern
package types

// Weights is a preset for combining the three score families
type Weights struct {
	Name         string  `json:"name"`
	Coverage     float64 `json:"coverage"`
	Independence float64 `json:"independence"`
	Technique    float64 `json:"technique"`
}

// TechniqueScores holds interviewing-technique metrics
type TechniqueScores struct {
	TotalQuestions   int     `json:"total_questions"`
	OpenCount        int     `json:"open_count"`
	ClosedCount      int     `json:"closed_count"`
	FollowUpCount    int     `json:"follow_up_count"`
	LearnerWords     int     `json:"learner_words"`
	StakeholderWords int     `json:"stakeholder_words"`
	OpenRatio        float64 `json:"open_ratio"`
	FollowUpRatio    float64 `json:"follow_up_ratio"`
	TalkBalance      float64 `json:"talk_balance"`
	EarlySolutioning bool    `json:"early_solutioning"`
	Score            float64 `json:"score"`
}

// ScoringOutput is the aggregate result of scoring one transcript
type ScoringOutput struct {
	StageID         string             `json:"stage_id"`
	Coverage        map[string]float64 `json:"coverage"`
	Independence    map[string]float64 `json:"independence"`
	CoverageAvg     float64            `json:"coverage_avg"`
	IndependenceAvg float64            `json:"independence_avg"`
	Technique       TechniqueScores    `json:"technique"`
	Weights         Weights            `json:"weights"`
	Overall         float64            `json:"overall"`
	Pass            bool               `json:"pass"`
	PassThreshold   float64            `json:"pass_threshold"`
	CoveredAreas    []string           `json:"covered_areas"`
	MissedAreas     []string           `json:"missed_areas"`
	Evidence        []Evidence         `json:"evidence"`
	Remediation     Remediation        `json:"remediation"`
}
