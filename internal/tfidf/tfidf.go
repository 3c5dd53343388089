// Package tfidf ranks tokens by term frequency weighted with inverse
// document frequency drawn from a reference corpus.
package tfidf

import (
	"errors"
	"math"
	"sort"
)

// ErrNoTokens reports an empty token sequence.
var ErrNoTokens = errors.New("tfidf: no tokens")

// defaultIDF scores words absent from the reference corpus as if they
// occurred in one document of a 47-document collection.
var defaultIDF = math.Log(47)

// Adapter scores the tokens of a single document with TF-IDF. It offers the
// same Train and TopKeywords surface as the graph based extractors, so the
// benchmark can drive them interchangeably.
type Adapter struct {
	tokens []string
	idf    map[string]float64

	order  []string
	scores map[string]float64
}

// NewAdapter builds an Adapter over a preprocessed token sequence and a
// corpus IDF table.
func NewAdapter(tokens []string, idf map[string]float64) *Adapter {
	return &Adapter{tokens: tokens, idf: idf}
}

// Train computes a TF-IDF score for every distinct token.
func (a *Adapter) Train() error {
	if len(a.tokens) == 0 {
		return ErrNoTokens
	}

	counts := make(map[string]int, len(a.tokens))
	a.order = a.order[:0]
	for _, tok := range a.tokens {
		if _, seen := counts[tok]; !seen {
			a.order = append(a.order, tok)
		}
		counts[tok]++
	}

	total := float64(len(a.tokens))
	a.scores = make(map[string]float64, len(counts))
	for tok, count := range counts {
		idf, ok := a.idf[tok]
		if !ok {
			idf = defaultIDF
		}
		a.scores[tok] = float64(count) / total * idf
	}
	return nil
}

// Scores returns a copy of the per token scores computed by Train.
func (a *Adapter) Scores() map[string]float64 {
	scores := make(map[string]float64, len(a.scores))
	for tok, score := range a.scores {
		scores[tok] = score
	}
	return scores
}

// TopKeywords returns the n highest scoring tokens, best first. Tokens with
// equal scores keep their first-appearance order.
func (a *Adapter) TopKeywords(n int) []string {
	if n <= 0 || len(a.order) == 0 {
		return nil
	}
	ranked := make([]string, len(a.order))
	copy(ranked, a.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return a.scores[ranked[i]] > a.scores[ranked[j]]
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
