// Package lexical provides a small BM25 inverted index for matching short texts
// such as question cards and learner utterances.
package lexical

import (
	"math"
	"regexp"
	"strings"
)

// Okapi BM25 parameters
const (
	DefaultK1 = 1.2
	DefaultB  = 0.75
)

var punctuationPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)

// Tokenize lower-cases text, strips punctuation and splits on whitespace.
// No stemming or stopword removal is applied.
func Tokenize(text string) []string {
	cleaned := punctuationPattern.ReplaceAllString(strings.ToLower(text), "")
	return strings.Fields(cleaned)
}

// Index is an immutable BM25 index over an ordered corpus
type Index struct {
	termFreqs []map[string]int
	lengths   []int
	avgLength float64
	idf       map[string]float64
	k1        float64
	b         float64
}

// NewIndex builds an index with the default k1 and b
func NewIndex(documents []string) *Index {
	return NewIndexWithParams(documents, DefaultK1, DefaultB)
}

// NewIndexWithParams builds an index with explicit BM25 parameters
func NewIndexWithParams(documents []string, k1, b float64) *Index {
	ix := &Index{
		termFreqs: make([]map[string]int, len(documents)),
		lengths:   make([]int, len(documents)),
		idf:       make(map[string]float64),
		k1:        k1,
		b:         b,
	}

	docFreq := make(map[string]int)
	totalLength := 0
	for i, doc := range documents {
		tokens := Tokenize(doc)
		tf := make(map[string]int, len(tokens))
		for _, token := range tokens {
			tf[token]++
		}
		// document frequency uses set semantics per document
		for token := range tf {
			docFreq[token]++
		}
		ix.termFreqs[i] = tf
		ix.lengths[i] = len(tokens)
		totalLength += len(tokens)
	}

	n := float64(len(documents))
	if n > 0 {
		ix.avgLength = float64(totalLength) / n
	}
	// idf is deliberately left unclamped: very common tokens go negative
	for token, df := range docFreq {
		ix.idf[token] = math.Log((n - float64(df) + 0.5) / (float64(df) + 0.5))
	}

	return ix
}

// Len returns the number of documents in the corpus
func (ix *Index) Len() int {
	return len(ix.termFreqs)
}

// IDF returns the inverse document frequency of a token (0 for unseen tokens)
func (ix *Index) IDF(token string) float64 {
	return ix.idf[token]
}

// Overlaps reports whether any query token occurs somewhere in the corpus
func (ix *Index) Overlaps(query string) bool {
	for _, token := range Tokenize(query) {
		if _, ok := ix.idf[token]; ok {
			return true
		}
	}
	return false
}

// Score returns the BM25 score of query against every document, in corpus order.
// Repeated query tokens contribute once per occurrence.
func (ix *Index) Score(query string) []float64 {
	scores := make([]float64, len(ix.termFreqs))
	queryTokens := Tokenize(query)
	if len(queryTokens) == 0 {
		return scores
	}

	for i, tf := range ix.termFreqs {
		lengthNorm := 1.0
		if ix.avgLength > 0 {
			lengthNorm = 1 - ix.b + ix.b*(float64(ix.lengths[i])/ix.avgLength)
		}

		score := 0.0
		for _, token := range queryTokens {
			freq := float64(tf[token])
			if freq == 0 {
				continue
			}
			score += ix.idf[token] * (freq * (ix.k1 + 1)) / (freq + ix.k1*lengthNorm)
		}
		scores[i] = score
	}

	return scores
}

// Max returns the index and value of the highest score. The first index wins
// on ties; an empty slice returns (-1, 0).
func Max(scores []float64) (int, float64) {
	best := -1
	bestScore := 0.0
	for i, s := range scores {
		if best == -1 || s > bestScore {
			best = i
			bestScore = s
		}
	}
	return best, bestScore
}

// Mean returns the arithmetic mean, or 0 for an empty slice
func Mean(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
