package observability

import (
	"bytes"
	"testing"

	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/session"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintScoring(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoring(&types.ScoringOutput{
		StageID:       "problem_exploration",
		Coverage:      map[string]float64{"pain_points": 1, "handoffs": 0},
		Weights:       types.Weights{Name: "assess"},
		Overall:       0.47,
		PassThreshold: 0.65,
		CoveredAreas:  []string{"pain_points"},
		MissedAreas:   []string{"handoffs"},
		Technique:     types.TechniqueScores{TotalQuestions: 2, ClosedCount: 1, EarlySolutioning: true},
		Remediation: types.Remediation{
			NextTimeScripts: []string{"Who picks the work up next?"},
			MiniLessons:     []types.MiniLesson{{Key: "handoffs", Tip: "Follow the work."}},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "MEETING SCORE")
	assert.Contains(t, output, "FAIL")
	assert.Contains(t, output, "handoffs")
	assert.Contains(t, output, "Proposed a solution")
	assert.Contains(t, output, "Who picks the work up next?")
	assert.Contains(t, output, "[handoffs] Follow the work.")
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(&types.CoachingAnalysis{
		StageID:        "problem_exploration",
		TotalQuestions: 2,
		ClosedCount:    1,
		ClosedExamples: []types.ClosedExample{{TurnIndex: 2, Original: "Is it bad?", Rewrite: "What makes it bad feel that way?"}},
		WeakKeys:       []string{"blockers", "handoffs"},
	})
	output := buf.String()

	assert.Contains(t, output, "COACHING ANALYSIS")
	assert.Contains(t, output, "Is it bad?")
	assert.Contains(t, output, "What makes it bad feel that way?")
	assert.Contains(t, output, "Weak areas")
	assert.Contains(t, output, "blockers")
}

func TestPrintSession(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSession(&types.CoachingSession{
		ID:                "abc",
		CurrentPhaseID:    "impact",
		CompletedPhaseIDs: []string{"warm_up", "problem_exploration"},
		ProgressPercent:   25,
		CapturedData:      types.CapturedData{PainPoints: []string{"slow onboarding"}, ChosenPriority: "onboarding"},
	})
	output := buf.String()

	assert.Contains(t, output, "COACHING SESSION")
	assert.Contains(t, output, "impact")
	assert.Contains(t, output, "25%")
	assert.Contains(t, output, "slow onboarding")
	assert.Contains(t, output, "Priority: onboarding")
}

func TestPrintReplay(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReplay([]session.Step{
		{Event: types.Event{Type: types.EventQuestionSent}, From: "warm_up", To: "warm_up"},
		{Event: types.Event{Type: types.EventAdvance}, From: "warm_up", To: "problem_exploration", Transitioned: true, Progress: 5},
	})
	output := buf.String()

	assert.Contains(t, output, "SESSION REPLAY")
	assert.Contains(t, output, "question_sent")
	assert.Contains(t, output, "→ problem_exploration")
}

func TestPrint_NilIsSilent(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoring(nil)
	p.PrintAnalysis(nil)
	p.PrintSession(nil)
	p.PrintReplay(nil)

	assert.Empty(t, buf.String())
}
