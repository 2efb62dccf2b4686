// Package scoring aggregates a classified transcript into coverage, technique
// and overall scores with a pass/fail verdict.
package scoring

import (
	"strings"

	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/types"
)

// DefaultPassThreshold is used when the caller does not supply one
const DefaultPassThreshold = 0.65

// Weight presets for the overall score
var (
	PracticeWeights = types.Weights{Name: "practice", Coverage: 0.7, Independence: 0.1, Technique: 0.2}
	AssessWeights   = types.Weights{Name: "assess", Coverage: 0.6, Independence: 0.2, Technique: 0.2}
)

// Technique sub-score weights
const (
	openRatioWeight   = 0.4
	followUpWeight    = 0.3
	talkBalanceWeight = 0.3

	earlySolutioningPenalty = 0.2
)

// coveredThreshold splits covered from missed keys
const coveredThreshold = 0.5

// WeightsFor selects the preset for a stage id
func WeightsFor(stageID string) types.Weights {
	if strings.Contains(strings.ToLower(stageID), "practice") {
		return PracticeWeights
	}
	return AssessWeights
}

// clamp restricts v to [0, 1]
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// average returns the mean of the values for keys, or 0 when keys is empty
func average(values map[string]float64, keys []string) float64 {
	if len(keys) == 0 {
		return 0
	}
	sum := 0.0
	for _, key := range keys {
		sum += values[key]
	}
	return sum / float64(len(keys))
}
