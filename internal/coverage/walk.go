package coverage

import (
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/linguistics"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/types"
)

// Config tunes turn classification
type Config struct {
	// MinWordsStrongAnswer is the word count for a substantial reply (0 = default 18)
	MinWordsStrongAnswer int
	// RelevanceGate fixes the classification gate; nil uses the dynamic gate
	RelevanceGate *float64
	// AssignThreshold is the BM25 floor for untagged cards (0 = default 0.1)
	AssignThreshold float64
	// FollowUps detects follow-up questions; nil uses the pattern detector
	FollowUps linguistics.FollowUpDetector
}

// Input is everything needed to classify one transcript
type Input struct {
	Stage      *types.StagePack
	Cards      []types.QuestionCard
	Transcript types.Transcript
}

// Turn is the per-utterance classification record shared by the analyzer and the scorer
type Turn struct {
	Index int
	Role  types.Role
	Text  string
	Words int

	Match   Match
	Matched bool

	// Learner-only fields
	Closed       bool
	Rewrite      string
	FollowUp     bool
	EvidenceKind types.EvidenceKind
	// SubstantialReply is set when the next turn is a substantial stakeholder reply
	SubstantialReply bool
}

// IsLearner reports whether the turn was spoken by the learner
func (t *Turn) IsLearner() bool {
	return t.Role == types.RoleLearner
}

// HasEvidence reports whether the turn produced an Evidence entry
func (t *Turn) HasEvidence() bool {
	return t.EvidenceKind != ""
}

// Pass is the result of a single walk over a transcript
type Pass struct {
	Stage      *types.StagePack
	Assignment *Assignment
	Turns      []Turn
	Evidence   []types.Evidence
}

// Walk classifies every turn of a transcript once. It returns a *ConfigError
// when a card is tagged with a key the stage does not cover.
func Walk(in Input, cfg Config) (*Pass, error) {
	assignment, err := AssignCards(in.Stage, in.Cards, cfg.AssignThreshold)
	if err != nil {
		return nil, err
	}

	followUps := cfg.FollowUps
	if followUps == nil {
		followUps = linguistics.NewPatternFollowUps()
	}
	classifier := NewClassifier(assignment, cfg.RelevanceGate)

	pass := &Pass{
		Stage:      in.Stage,
		Assignment: assignment,
		Turns:      make([]Turn, len(in.Transcript)),
		Evidence:   []types.Evidence{},
	}

	for i, utterance := range in.Transcript {
		turn := Turn{
			Index: i,
			Role:  utterance.Role,
			Text:  utterance.Text,
			Words: linguistics.WordCount(utterance.Text),
		}
		turn.Match, turn.Matched = classifier.Classify(utterance.Text)
		pass.Turns[i] = turn
	}

	for i := range pass.Turns {
		turn := &pass.Turns[i]
		if !turn.IsLearner() {
			continue
		}

		var prev *Turn
		if i > 0 && pass.Turns[i-1].Role == types.RoleStakeholder {
			prev = &pass.Turns[i-1]
		}
		prevText := ""
		if prev != nil {
			prevText = prev.Text
		}

		turn.Closed = linguistics.IsClosedQuestion(turn.Text)
		if turn.Closed {
			turn.Rewrite = linguistics.RewriteToOpen(turn.Text)
		}
		turn.FollowUp = followUps.IsFollowUp(turn.Text, prevText)

		if i+1 < len(pass.Turns) {
			next := &pass.Turns[i+1]
			turn.SubstantialReply = next.Role == types.RoleStakeholder &&
				linguistics.IsSubstantialResponse(next.Text, cfg.MinWordsStrongAnswer)
		}

		if !turn.Matched || !in.Stage.Covers(turn.Match.Key) {
			continue
		}

		switch {
		case turn.FollowUp:
			turn.EvidenceKind = types.EvidenceFollowUp
		case prev != nil && prev.Matched && prev.Match.Key == turn.Match.Key:
			turn.EvidenceKind = types.EvidenceStakeholderPrompted
		default:
			turn.EvidenceKind = types.EvidenceDirectQuestion
		}
		pass.Evidence = append(pass.Evidence, types.Evidence{
			Key:       turn.Match.Key,
			TurnIndex: i,
			Kind:      turn.EvidenceKind,
		})
	}

	return pass, nil
}

// LearnerTurns returns the number of learner turns
func (p *Pass) LearnerTurns() int {
	n := 0
	for i := range p.Turns {
		if p.Turns[i].IsLearner() {
			n++
		}
	}
	return n
}
