//nolint:revive // types is a standard Go package name pattern
package types

// CoverMeta is static remediation content for a must-cover key
type CoverMeta struct {
	Key             string   `json:"key" yaml:"key"`
	CoachingTip     string   `json:"coaching_tip" yaml:"coaching_tip"`
	SampleQuestions []string `json:"sample_questions" yaml:"sample_questions"`
}

// CoverMetaTable maps a must-cover key to its remediation content
type CoverMetaTable map[string]CoverMeta

// MiniLesson is a coaching tip emitted for a weak key
type MiniLesson struct {
	Key string `json:"key"`
	Tip string `json:"tip"`
}

// Remediation is the "next time" feedback attached to analysis and scoring results
type Remediation struct {
	NextTimeScripts []string     `json:"next_time_scripts"`
	MiniLessons     []MiniLesson `json:"mini_lessons"`
}
