//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapturedData_Record(t *testing.T) {
	var data CapturedData

	assert.True(t, data.Record(CapturePainPoints, "manual re-keying"))
	assert.True(t, data.Record(CapturePainPoints, "slow approvals"))
	assert.True(t, data.Record(CapturePriority, "approvals"))
	assert.False(t, data.Record(CaptureField("budget"), "ignored"))

	assert.Equal(t, []string{"manual re-keying", "slow approvals"}, data.PainPoints)
	assert.Equal(t, "approvals", data.ChosenPriority)
}

func TestCoachingSession_CloneIsDeep(t *testing.T) {
	original := CoachingSession{
		CurrentPhaseID:    "impact",
		CompletedPhaseIDs: []string{"warm_up"},
		CapturedData:      CapturedData{PainPoints: []string{"a"}},
	}

	clone := original.Clone()
	clone.CompletedPhaseIDs[0] = "changed"
	clone.CapturedData.PainPoints[0] = "changed"
	clone.CapturedData.Record(CapturePainPoints, "b")

	assert.Equal(t, []string{"warm_up"}, original.CompletedPhaseIDs)
	assert.Equal(t, []string{"a"}, original.CapturedData.PainPoints)
	assert.True(t, original.HasCompleted("warm_up"))
	assert.False(t, clone.HasCompleted("warm_up"))
}

func TestStagePack_KeyDescription(t *testing.T) {
	stage := StagePack{
		ID:        "as_is",
		MustCover: []string{"pain_points", "handoffs"},
		KeyHints:  map[string]string{"handoffs": "handoff between teams"},
	}

	assert.Equal(t, "pain points", stage.KeyDescription("pain_points"))
	assert.Equal(t, "handoff between teams", stage.KeyDescription("handoffs"))
	assert.True(t, stage.Covers("handoffs"))
	assert.False(t, stage.Covers("budget"))
}

func TestMeetingRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		record  MeetingRecord
		wantErr bool
	}{
		{
			name: "valid",
			record: MeetingRecord{
				StageID:    "problem_exploration",
				Transcript: Transcript{{Role: RoleLearner, Text: "What slows you down?"}},
			},
		},
		{
			name:    "missing stage",
			record:  MeetingRecord{Transcript: Transcript{{Role: RoleLearner, Text: "hi"}}},
			wantErr: true,
		},
		{
			name: "unknown role",
			record: MeetingRecord{
				StageID:    "problem_exploration",
				Transcript: Transcript{{Role: Role("coach"), Text: "hi"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEvent_JSONUnmarshaling(t *testing.T) {
	jsonInput := `{
		"type": "answer_received",
		"text": "It takes us three days to approve a refund",
		"captures": [{"field": "pain_points", "value": "refund approvals"}]
	}`

	var event Event
	err := json.Unmarshal([]byte(jsonInput), &event)
	require.NoError(t, err)
	require.NoError(t, event.Validate())

	assert.Equal(t, EventAnswerReceived, event.Type)
	assert.True(t, event.Type.Valid())
	require.Len(t, event.Captures, 1)
	assert.Equal(t, CapturePainPoints, event.Captures[0].Field)
	assert.False(t, EventType("rewind").Valid())
}
