package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/coverage"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/logger"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/remediation"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/types"
)

// Options configures ScoreMeeting
type Options struct {
	Coverage coverage.Config
	// PassThreshold in [0,1]; nil selects DefaultPassThreshold
	PassThreshold *float64
	// Independence per key; missing keys default to 1.0
	Independence map[string]float64
	CoverMeta    types.CoverMetaTable
	MaxScripts   int
	MaxLessons   int
	// UseEmbeddings is accepted for compatibility; pattern detection is always used
	UseEmbeddings bool
	Logger        *logger.Logger
}

// earlySolutionPatterns match a learner proposing a solution
var earlySolutionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bwe\s+(should|could|can|will|need\s+to)\s+(build|implement|create|add|buy|automate|develop|use)\b`),
	regexp.MustCompile(`(?i)\blet'?s\s+(build|implement|create|add|automate|use)\b`),
	regexp.MustCompile(`(?i)\bthe\s+(api|system|tool|app|dashboard|platform)\s+(should|could|will|needs\s+to)\b`),
	regexp.MustCompile(`(?i)\bwhat\s+if\s+we\s+(built|build|implemented|implement|added|add|automated|automate)\b`),
	regexp.MustCompile(`(?i)\bthe\s+solution\s+(is|would\s+be)\b`),
}

// IsSolutionProposal reports whether text proposes a solution
func IsSolutionProposal(text string) bool {
	for _, p := range earlySolutionPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// earlySolutioningStage reports whether solutioning is penalized in the stage
func earlySolutioningStage(stageID string) bool {
	id := strings.ToLower(stageID)
	return strings.Contains(id, "problem_exploration") || strings.Contains(id, "as_is")
}

// ScoreMeeting classifies the transcript and scores it
func ScoreMeeting(in coverage.Input, opts Options) (*types.ScoringOutput, error) {
	if t := opts.PassThreshold; t != nil && (*t < 0 || *t > 1) {
		return nil, fmt.Errorf("pass threshold %v outside [0,1]", *t)
	}
	if opts.UseEmbeddings {
		logger.OrNop(opts.Logger).Warn("embedding follow-up detection is not available, using patterns",
			"stage_id", stageIDOf(in.Stage))
	}

	pass, err := coverage.Walk(in, opts.Coverage)
	if err != nil {
		return nil, fmt.Errorf("failed to classify transcript: %w", err)
	}
	return ScorePass(pass, opts), nil
}

// ScorePass scores an existing classification pass
func ScorePass(pass *coverage.Pass, opts Options) *types.ScoringOutput {
	stage := pass.Stage
	threshold := DefaultPassThreshold
	if opts.PassThreshold != nil {
		threshold = *opts.PassThreshold
	}

	coverageByKey := make(map[string]float64, len(stage.MustCover))
	for _, key := range stage.MustCover {
		coverageByKey[key] = 0
	}

	technique := types.TechniqueScores{}
	evidenceCount := make(map[string]int, len(stage.MustCover))
	checkSolutioning := earlySolutioningStage(stage.ID)

	for i := range pass.Turns {
		turn := &pass.Turns[i]
		if !turn.IsLearner() {
			technique.StakeholderWords += turn.Words
			continue
		}
		technique.LearnerWords += turn.Words
		technique.TotalQuestions++
		if turn.Closed {
			technique.ClosedCount++
		} else {
			technique.OpenCount++
		}
		if turn.FollowUp {
			technique.FollowUpCount++
		}

		if checkSolutioning && !technique.EarlySolutioning &&
			keysAtLeast(coverageByKey, coveredThreshold) < 2 && IsSolutionProposal(turn.Text) {
			technique.EarlySolutioning = true
		}

		if !turn.HasEvidence() {
			continue
		}
		key := turn.Match.Key
		evidenceCount[key]++

		score := 0.0
		switch {
		case turn.SubstantialReply:
			score = 1.0
		case evidenceCount[key] >= 2:
			score = 0.5
		}
		coverageByKey[key] = math.Max(coverageByKey[key], score)
	}

	technique.OpenRatio = ratio(technique.OpenCount, technique.TotalQuestions)
	technique.FollowUpRatio = ratio(technique.FollowUpCount, technique.TotalQuestions)
	technique.TalkBalance = talkBalance(technique.LearnerWords, technique.StakeholderWords)
	technique.Score = openRatioWeight*technique.OpenRatio +
		followUpWeight*technique.FollowUpRatio +
		talkBalanceWeight*technique.TalkBalance
	if technique.EarlySolutioning {
		technique.Score = math.Max(0, technique.Score-earlySolutioningPenalty)
	}
	technique.Score = clamp(technique.Score)

	independence := make(map[string]float64, len(stage.MustCover))
	for _, key := range stage.MustCover {
		value, ok := opts.Independence[key]
		if !ok {
			value = 1.0
		}
		independence[key] = clamp(value)
	}

	weights := WeightsFor(stage.ID)
	out := &types.ScoringOutput{
		StageID:         stage.ID,
		Coverage:        coverageByKey,
		Independence:    independence,
		CoverageAvg:     average(coverageByKey, stage.MustCover),
		IndependenceAvg: average(independence, stage.MustCover),
		Technique:       technique,
		Weights:         weights,
		PassThreshold:   threshold,
		CoveredAreas:    []string{},
		MissedAreas:     []string{},
		Evidence:        append([]types.Evidence{}, pass.Evidence...),
	}

	out.Overall = clamp(weights.Coverage*out.CoverageAvg +
		weights.Independence*out.IndependenceAvg +
		weights.Technique*technique.Score)
	out.Pass = out.Overall >= threshold

	for _, key := range stage.MustCover {
		if coverageByKey[key] >= coveredThreshold {
			out.CoveredAreas = append(out.CoveredAreas, key)
		} else {
			out.MissedAreas = append(out.MissedAreas, key)
		}
	}

	out.Remediation = remediation.Build(out.MissedAreas, opts.CoverMeta, opts.MaxScripts, opts.MaxLessons)
	return out
}

// keysAtLeast counts keys whose coverage is at least floor
func keysAtLeast(coverageByKey map[string]float64, floor float64) int {
	n := 0
	for _, v := range coverageByKey {
		if v >= floor {
			n++
		}
	}
	return n
}

func ratio(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return clamp(float64(part) / float64(total))
}

// talkBalance is 1 at an even split and 0 when one side does all the talking.
// With no words at all it is 0.
func talkBalance(learnerWords, stakeholderWords int) float64 {
	total := learnerWords + stakeholderWords
	if total == 0 {
		return 0
	}
	share := float64(stakeholderWords) / float64(total)
	return clamp(1 - math.Abs(share-0.5)/0.5)
}

func stageIDOf(stage *types.StagePack) string {
	if stage == nil {
		return ""
	}
	return stage.ID
}
