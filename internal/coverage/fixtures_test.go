package coverage

import (
	"strings"

	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/types"
)

func testStage() *types.StagePack {
	return &types.StagePack{
		ID:        "problem_exploration",
		Name:      "Problem exploration",
		MustCover: []string{"pain_points", "blockers", "handoffs"},
	}
}

func testCards() []types.QuestionCard {
	return []types.QuestionCard{
		{ID: "c1", StageID: "problem_exploration", Text: "What are your biggest pain points today?", CoverKey: "pain_points"},
		{ID: "c2", StageID: "problem_exploration", Text: "What frustrates your team most about the current process?", CoverKey: "pain_points"},
		{ID: "c3", StageID: "problem_exploration", Text: "What blocks your team from finishing work on time?", CoverKey: "blockers"},
		{ID: "c4", StageID: "problem_exploration", Text: "Who do you hand work over to between teams?", CoverKey: "handoffs"},
	}
}

func learner(text string) types.Utterance {
	return types.Utterance{Role: types.RoleLearner, Text: text}
}

func stakeholder(text string) types.Utterance {
	return types.Utterance{Role: types.RoleStakeholder, Text: text}
}

// longReply returns a stakeholder answer with at least 18 words
func longReply(topic string) string {
	return "Honestly " + topic + " is slow and confusing " + strings.Repeat("and it keeps getting worse every week ", 2)
}
