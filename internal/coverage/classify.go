package coverage

import (
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/lexical"
)

// gateMeanWeight is the mean's share of the dynamic relevance gate; max takes the rest
const gateMeanWeight = 0.6

// Match is a learner turn attributed to a must-cover key
type Match struct {
	Key    string  `json:"key"`
	CardID string  `json:"card_id"`
	Score  float64 `json:"score"`
	Gate   float64 `json:"gate"`
}

// Classifier attributes utterances to must-cover keys via the assigned cards
type Classifier struct {
	index    *lexical.Index
	cardKeys []string
	cardIDs  []string
	gate     *float64
}

// NewClassifier indexes every assigned card. A nil gate selects the dynamic gate.
func NewClassifier(assignment *Assignment, gate *float64) *Classifier {
	c := &Classifier{gate: gate}
	if assignment == nil || assignment.Stage == nil {
		c.index = lexical.NewIndex(nil)
		return c
	}

	var texts []string
	for _, key := range assignment.Stage.MustCover {
		for _, card := range assignment.Cards[key] {
			texts = append(texts, card.Text)
			c.cardKeys = append(c.cardKeys, key)
			c.cardIDs = append(c.cardIDs, card.ID)
		}
	}
	c.index = lexical.NewIndex(texts)
	return c
}

// DynamicGate is 0.6*mean + 0.4*max of the scores, computed as
// max - 0.6*(max - mean) so it never rounds above max.
func DynamicGate(scores []float64) float64 {
	_, maxScore := lexical.Max(scores)
	spread := maxScore - lexical.Mean(scores)
	if spread < 0 {
		spread = 0
	}
	return maxScore - gateMeanWeight*spread
}

// Classify returns the key of the best-matching card. ok is false when there
// are no cards, when no token of text occurs in any card, or when the best
// score is below the gate. Scores may be negative in small corpora.
func (c *Classifier) Classify(text string) (Match, bool) {
	if c.index.Len() == 0 {
		return Match{}, false
	}

	if !c.index.Overlaps(text) {
		return Match{}, false
	}

	scores := c.index.Score(text)
	best, maxScore := lexical.Max(scores)

	gate := DynamicGate(scores)
	if c.gate != nil {
		gate = *c.gate
	}

	if maxScore < gate {
		return Match{Score: maxScore, Gate: gate}, false
	}

	return Match{
		Key:    c.cardKeys[best],
		CardID: c.cardIDs[best],
		Score:  maxScore,
		Gate:   gate,
	}, true
}
