package coverage

import (
	"fmt"

	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/lexical"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/types"
)

// DefaultAssignThreshold is the minimum BM25 score for matching an untagged card to a key
const DefaultAssignThreshold = 0.1

// Assignment is the result of mapping a stage's cards onto its must-cover keys
type Assignment struct {
	Stage *types.StagePack
	// Cards holds the cards per key; every must-cover key has an entry
	Cards map[string][]types.QuestionCard
	// Unassigned holds untagged cards that matched no key
	Unassigned []types.QuestionCard
}

// AssignCards maps cards to the stage's must-cover keys. Tagged cards are
// assigned directly; untagged cards are scored against an index of key
// descriptions and go to the best key above threshold. Cards from other
// stages are ignored. A tag outside MustCover is a *ConfigError.
func AssignCards(stage *types.StagePack, cards []types.QuestionCard, threshold float64) (*Assignment, error) {
	if stage == nil {
		return nil, &ConfigError{Message: "stage pack is required"}
	}
	if threshold <= 0 {
		threshold = DefaultAssignThreshold
	}

	assignment := &Assignment{
		Stage: stage,
		Cards: make(map[string][]types.QuestionCard, len(stage.MustCover)),
	}
	for _, key := range stage.MustCover {
		assignment.Cards[key] = []types.QuestionCard{}
	}

	var unmapped []types.QuestionCard
	for _, card := range cards {
		if card.StageID != "" && card.StageID != stage.ID {
			continue
		}
		if card.CoverKey == "" {
			unmapped = append(unmapped, card)
			continue
		}
		if !stage.Covers(card.CoverKey) {
			return nil, &ConfigError{
				Message: fmt.Sprintf("cover_key is not a must-cover key of stage %s", stage.ID),
				CardID:  card.ID,
				Key:     card.CoverKey,
			}
		}
		assignment.Cards[card.CoverKey] = append(assignment.Cards[card.CoverKey], card)
	}

	if len(unmapped) == 0 {
		return assignment, nil
	}
	if len(stage.MustCover) == 0 {
		assignment.Unassigned = unmapped
		return assignment, nil
	}

	descriptions := make([]string, len(stage.MustCover))
	for i, key := range stage.MustCover {
		descriptions[i] = stage.KeyDescription(key)
	}
	keyIndex := lexical.NewIndex(descriptions)

	for _, card := range unmapped {
		best, score := lexical.Max(keyIndex.Score(card.Text))
		if best >= 0 && score > threshold {
			key := stage.MustCover[best]
			assignment.Cards[key] = append(assignment.Cards[key], card)
			continue
		}
		assignment.Unassigned = append(assignment.Unassigned, card)
	}

	return assignment, nil
}

// KeyFor returns the key a card was assigned to
func (a *Assignment) KeyFor(cardID string) (string, bool) {
	for _, key := range a.Stage.MustCover {
		for _, card := range a.Cards[key] {
			if card.ID == cardID {
				return key, true
			}
		}
	}
	return "", false
}

// CardCount returns the number of assigned cards
func (a *Assignment) CardCount() int {
	n := 0
	for _, cards := range a.Cards {
		n += len(cards)
	}
	return n
}
