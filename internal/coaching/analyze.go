// Package coaching produces turn-by-turn coaching feedback for an interview transcript.
package coaching

import (
	"fmt"

	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/coverage"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/remediation"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/types"
)

const (
	// maxClosedExamples caps the closed-question examples in the analysis
	maxClosedExamples = 3
	// weakCoverageThreshold is the coverage counter below which a key is weak
	weakCoverageThreshold = 0.5
)

// Options configures the analyzer
type Options struct {
	Coverage   coverage.Config
	CoverMeta  types.CoverMetaTable
	MaxScripts int
	MaxLessons int
}

// Analyze walks a transcript and produces coaching feedback
func Analyze(in coverage.Input, opts Options) (*types.CoachingAnalysis, error) {
	pass, err := coverage.Walk(in, opts.Coverage)
	if err != nil {
		return nil, fmt.Errorf("failed to classify transcript: %w", err)
	}
	return AnalyzePass(pass, opts), nil
}

// AnalyzePass builds the analysis from an existing classification pass
func AnalyzePass(pass *coverage.Pass, opts Options) *types.CoachingAnalysis {
	stage := pass.Stage
	analysis := &types.CoachingAnalysis{
		StageID:        stage.ID,
		ClosedExamples: []types.ClosedExample{},
		KeyCoverage:    make(map[string]float64, len(stage.MustCover)),
		Evidence:       append([]types.Evidence{}, pass.Evidence...),
		WeakKeys:       []string{},
		Unclassified:   []int{},
	}
	for _, key := range stage.MustCover {
		analysis.KeyCoverage[key] = 0
	}

	evidenceCount := make(map[string]int, len(stage.MustCover))
	for _, ev := range pass.Evidence {
		evidenceCount[ev.Key]++
	}

	for i := range pass.Turns {
		turn := &pass.Turns[i]
		if !turn.IsLearner() {
			continue
		}
		analysis.TotalQuestions++

		if turn.Closed {
			analysis.ClosedCount++
			if len(analysis.ClosedExamples) < maxClosedExamples {
				analysis.ClosedExamples = append(analysis.ClosedExamples, types.ClosedExample{
					TurnIndex: turn.Index,
					Original:  turn.Text,
					Rewrite:   turn.Rewrite,
				})
			}
		}
		if turn.FollowUp {
			analysis.FollowUpCount++
		}

		if !turn.HasEvidence() {
			if !turn.Matched {
				analysis.Unclassified = append(analysis.Unclassified, turn.Index)
			}
			continue
		}
		if turn.SubstantialReply {
			analysis.KeyCoverage[turn.Match.Key]++
		}
	}

	for _, key := range stage.MustCover {
		if analysis.KeyCoverage[key] < weakCoverageThreshold || evidenceCount[key] == 0 {
			analysis.WeakKeys = append(analysis.WeakKeys, key)
		}
	}

	analysis.Remediation = remediation.Build(analysis.WeakKeys, opts.CoverMeta, opts.MaxScripts, opts.MaxLessons)
	return analysis
}
