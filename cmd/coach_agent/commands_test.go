package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/phases"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/pipeline"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/types"
)

func TestScoreCommand(t *testing.T) {
	in := writeFile(t, "meeting.yaml", meetingYAML)

	out, err := executeCommand(t, "score", "--in", in)
	require.NoError(t, err)

	var result types.ScoringOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "problem_exploration", result.StageID)
	assert.InDelta(t, 1.0, result.Coverage["pain_points"], 1e-9)
	assert.Equal(t, 1, result.Technique.ClosedCount)
	assert.InDelta(t, 0.65, result.PassThreshold, 1e-9)
}

func TestScoreCommand_ThresholdAndOutputFile(t *testing.T) {
	in := writeFile(t, "meeting.yaml", meetingYAML)
	outPath := filepath.Join(t.TempDir(), "nested", "score.json")

	stdout, err := executeCommand(t, "score", "--in", in, "--out", outPath, "--threshold", "0.3")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var result types.ScoringOutput
	require.NoError(t, json.Unmarshal(data, &result))
	assert.InDelta(t, 0.3, result.PassThreshold, 1e-9)
}

func TestScoreCommand_ZeroThreshold(t *testing.T) {
	in := writeFile(t, "meeting.yaml", meetingYAML)

	out, err := executeCommand(t, "score", "--in", in, "--threshold", "0")
	require.NoError(t, err)

	var result types.ScoringOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 0.0, result.PassThreshold)
	assert.True(t, result.Pass)
}

func TestScoreCommand_WithAnalysis(t *testing.T) {
	in := writeFile(t, "meeting.yaml", meetingYAML)

	out, err := executeCommand(t, "score", "--in", in, "--with-analysis")
	require.NoError(t, err)

	var report pipeline.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.NotNil(t, report.Analysis)
	assert.Equal(t, 1, report.Analysis.ClosedCount)
	require.Len(t, report.Analysis.ClosedExamples, 1)
	assert.Equal(t, "Is it really that bad?", report.Analysis.ClosedExamples[0].Original)
}

func TestScoreCommand_Errors(t *testing.T) {
	valid := writeFile(t, "meeting.yaml", meetingYAML)
	noTranscript := writeFile(t, "bad.yaml", "stage_id: problem_exploration\n")
	unknownStage := writeFile(t, "stage.json", `{"stage_id": "nope", "transcript": []}`)
	badConfig := writeFile(t, "config.json", `{"pass_threshold": 2}`)

	tests := []struct {
		name string
		args []string
	}{
		{"missing in flag", []string{"score"}},
		{"missing file", []string{"score", "--in", filepath.Join(t.TempDir(), "nope.yaml")}},
		{"schema failure", []string{"score", "--in", noTranscript}},
		{"unknown stage", []string{"score", "--in", unknownStage}},
		{"threshold out of range", []string{"score", "--in", valid, "--threshold", "1.5"}},
		{"invalid config", []string{"score", "--in", valid, "--config", badConfig}},
		{"missing content", []string{"score", "--in", valid, "--content", filepath.Join(t.TempDir(), "c.yaml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestAnalyzeCommand(t *testing.T) {
	in := writeFile(t, "meeting.json", meetingJSON)

	out, err := executeCommand(t, "analyze", "--in", in)
	require.NoError(t, err)

	var analysis types.CoachingAnalysis
	require.NoError(t, json.Unmarshal([]byte(out), &analysis))
	assert.Equal(t, 1, analysis.TotalQuestions)
	assert.Equal(t, 0, analysis.ClosedCount)
	assert.Contains(t, analysis.WeakKeys, "pain_points")
}

func TestBatchCommand(t *testing.T) {
	first := writeFile(t, "a.yaml", meetingYAML)
	second := writeFile(t, "b.json", meetingJSON)

	out, err := executeCommand(t, "batch", first, second, "--concurrency", "2")
	require.NoError(t, err)

	var results []types.ScoringOutput
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.InDelta(t, 1.0, results[0].Coverage["pain_points"], 1e-9)
	assert.InDelta(t, 0.0, results[1].Coverage["pain_points"], 1e-9)
}

func TestBatchCommand_Errors(t *testing.T) {
	valid := writeFile(t, "a.yaml", meetingYAML)

	_, err := executeCommand(t, "batch")
	assert.Error(t, err)

	_, err = executeCommand(t, "batch", valid, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = executeCommand(t, "batch", valid, "--concurrency", "-1")
	assert.Error(t, err)
}

func TestReplayCommand(t *testing.T) {
	events := writeFile(t, "events.yaml", eventsYAML)

	out, err := executeCommand(t, "replay", "--events", events, "--session-id", "replay-1")
	require.NoError(t, err)

	var result replayResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "replay-1", result.Session.ID)
	assert.Equal(t, phases.PhaseProblemExploration, result.Session.CurrentPhaseID)
	assert.Equal(t, 1, result.Session.QuestionsAsked)
	assert.Len(t, result.Session.CapturedData.PainPoints, 1)
	require.Len(t, result.Steps, 3)
	assert.True(t, result.Steps[1].Transitioned)
}

func TestReplayCommand_InvalidEvents(t *testing.T) {
	events := writeFile(t, "events.yaml", "- text: missing type\n")

	_, err := executeCommand(t, "replay", "--events", events)
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	meeting := writeFile(t, "meeting.yaml", meetingYAML)
	events := writeFile(t, "events.yaml", eventsYAML)
	badEvents := writeFile(t, "bad.yaml", "- type: advance\n  captures:\n    - field: mood\n      value: great\n")
	badContent := writeFile(t, "content.yaml", `stages:
  - id: discovery
    name: Discovery
    must_cover: [goals]
cards:
  - {id: d1, stage_id: elsewhere, text: "What are your goals?"}
cover_meta: []
`)

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"default content", []string{"validate", "content"}, false},
		{"meeting", []string{"validate", "meeting", meeting}, false},
		{"events", []string{"validate", "events", events}, false},
		{"bad events", []string{"validate", "events", badEvents}, true},
		{"bad content", []string{"validate", "content", badContent}, true},
		{"meeting without path", []string{"validate", "meeting"}, true},
		{"unknown kind", []string{"validate", "report", meeting}, true},
		{"no args", []string{"validate"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, "Validation passed")
		})
	}
}
