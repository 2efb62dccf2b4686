package lexical

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"lower-cases and strips punctuation", "What's the BIGGEST pain-point?", []string{"whats", "the", "biggest", "painpoint"}},
		{"keeps underscores and digits", "pain_points in Q3", []string{"pain_points", "in", "q3"}},
		{"collapses whitespace", "  a \t b\n", []string{"a", "b"}},
		{"punctuation only", "?!...", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if len(tt.expected) == 0 {
				assert.Empty(t, tokens)
				return
			}
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestNewIndex_IDF(t *testing.T) {
	ix := NewIndex([]string{
		"handoffs between teams",
		"pain points for customers",
		"teams and customers",
	})

	require.Equal(t, 3, ix.Len())

	// df=1, N=3
	assert.InDelta(t, math.Log(2.5/1.5), ix.IDF("handoffs"), 1e-9)
	// df=2, N=3 is negative and must not be clamped
	assert.InDelta(t, math.Log(1.5/2.5), ix.IDF("teams"), 1e-9)
	assert.Less(t, ix.IDF("teams"), 0.0)
	assert.Equal(t, 0.0, ix.IDF("unseen"))
}

func TestScore_MatchesFormula(t *testing.T) {
	docs := []string{"slow onboarding process", "approval delays", "onboarding onboarding checklist steps"}
	ix := NewIndex(docs)

	scores := ix.Score("onboarding")
	require.Len(t, scores, 3)

	avg := (3.0 + 2.0 + 4.0) / 3.0
	idf := math.Log((3 - 2 + 0.5) / (2 + 0.5))
	expected0 := idf * (1 * (DefaultK1 + 1)) / (1 + DefaultK1*(1-DefaultB+DefaultB*(3/avg)))
	expected2 := idf * (2 * (DefaultK1 + 1)) / (2 + DefaultK1*(1-DefaultB+DefaultB*(4/avg)))

	assert.InDelta(t, expected0, scores[0], 1e-9)
	assert.Equal(t, 0.0, scores[1])
	assert.InDelta(t, expected2, scores[2], 1e-9)
}

func TestScore_DuplicateQueryTokensCount(t *testing.T) {
	ix := NewIndex([]string{"handoffs between teams", "budget"})

	single := ix.Score("handoffs")
	double := ix.Score("handoffs handoffs")

	assert.InDelta(t, 2*single[0], double[0], 1e-9)
}

func TestScore_NoOverlapIsZero(t *testing.T) {
	ix := NewIndex([]string{"alpha beta", "gamma"})

	assert.Equal(t, []float64{0, 0}, ix.Score("delta epsilon"))
	assert.Equal(t, []float64{0, 0}, ix.Score("   "))
}

func TestOverlaps(t *testing.T) {
	ix := NewIndex([]string{"How much time does this cost?", "budget"})

	tests := []struct {
		query string
		want  bool
	}{
		{"how much time", true},
		{"BUDGET?", true},
		{"tell me about the team", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ix.Overlaps(tt.query))
		})
	}
	assert.False(t, NewIndex(nil).Overlaps("anything"))
}

func TestScore_SingleDocumentCorpus(t *testing.T) {
	ix := NewIndex([]string{"only document here"})

	scores := ix.Score("document")
	require.Len(t, scores, 1)
	// N=1, df=1 gives a negative idf; the score is defined, just negative
	assert.Less(t, scores[0], 0.0)
	assert.False(t, math.IsNaN(scores[0]))
}

func TestScore_EmptyCorpus(t *testing.T) {
	assert.Empty(t, NewIndex(nil).Score("anything"))

	ix := NewIndex([]string{"", "!!"})
	assert.Equal(t, []float64{0, 0}, ix.Score("anything"))
}

func TestMaxAndMean(t *testing.T) {
	idx, best := Max([]float64{0.2, 0.9, 0.9, -1})
	assert.Equal(t, 1, idx)
	assert.Equal(t, 0.9, best)

	idx, best = Max(nil)
	assert.Equal(t, -1, idx)
	assert.Equal(t, 0.0, best)

	assert.InDelta(t, 0.25, Mean([]float64{0, 0.5, 0.5, 0}), 1e-9)
	assert.Equal(t, 0.0, Mean(nil))
}
