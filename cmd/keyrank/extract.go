package main

import (
	"time"

	"github.com/23skdu/keyrank/internal/benchmark"
	"github.com/23skdu/keyrank/internal/encode"
	kerrors "github.com/23skdu/keyrank/internal/errors"
	"github.com/23skdu/keyrank/internal/metrics"
	"github.com/23skdu/keyrank/internal/textrank"
	"github.com/23skdu/keyrank/internal/tokenize"
)

// extractOptions configures one extraction run.
type extractOptions struct {
	StopWords      []string
	Punctuation    string
	WindowLength   int
	TopN           int
	PositionBiased bool
}

// Keyword is one scored extraction result.
type Keyword struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// extractResult carries the scored keywords plus the graph that produced
// them, so callers can snapshot it.
type extractResult struct {
	Keywords   []Keyword
	Graph      textrank.Graph
	Iterations int
	Converged  bool
}

// extractKeywords runs the full TextRank pipeline over raw text. The CLI and
// the HTTP handler both go through here, so metrics stay consistent.
func extractKeywords(text string, opts extractOptions) (*extractResult, error) {
	extractor := extractorName(opts.PositionBiased)
	start := time.Now()

	fail := func(err error, t kerrors.Type, message string) (*extractResult, error) {
		metrics.DocumentsProcessedTotal.WithLabelValues(extractor, "error").Inc()
		return nil, kerrors.Wrap(err, t, "extract", message)
	}

	pre := tokenize.NewPreprocessor(opts.StopWords, opts.Punctuation)
	tokens := pre.Preprocess(text)

	enc := encode.NewEncoder()
	ids, err := enc.Encode(tokens)
	if err != nil {
		return fail(err, kerrors.TypeValidation, "no usable tokens")
	}

	graph := textrank.NewEdgeListGraph()
	if err := graph.FillFromTokens(ids, opts.WindowLength); err != nil {
		return fail(err, kerrors.TypeValidation, "graph build failed")
	}

	var scorer *textrank.Scorer
	if opts.PositionBiased {
		graph.FillPositions(ids)
		if err := graph.CalculatePositionWeights(); err != nil {
			return fail(err, kerrors.TypeComputation, "position weights failed")
		}
		scorer, err = textrank.NewPositionBiasedScorer(graph)
		if err != nil {
			return fail(err, kerrors.TypeComputation, "scorer setup failed")
		}
	} else {
		scorer = textrank.NewScorer(graph)
	}

	if err := scorer.Train(); err != nil {
		return fail(err, kerrors.TypeComputation, "scoring failed")
	}

	topIDs := scorer.TopKeywords(opts.TopN)
	words, err := enc.Decode(topIDs)
	if err != nil {
		return fail(err, kerrors.TypeComputation, "decode failed")
	}

	scores := scorer.Scores()
	keywords := make([]Keyword, len(words))
	for i, w := range words {
		keywords[i] = Keyword{Word: w, Score: scores[topIDs[i]]}
	}

	outcome := "budget"
	if scorer.Converged() {
		outcome = "converged"
	}
	metrics.TextRankRunsTotal.WithLabelValues(outcome).Inc()
	metrics.TextRankIterations.Observe(float64(scorer.Iterations()))
	metrics.GraphVertices.Set(float64(len(graph.Vertices())))
	metrics.DocumentsProcessedTotal.WithLabelValues(extractor, "ok").Inc()
	metrics.ExtractDurationSeconds.WithLabelValues(extractor).Observe(time.Since(start).Seconds())

	return &extractResult{
		Keywords:   keywords,
		Graph:      graph,
		Iterations: scorer.Iterations(),
		Converged:  scorer.Converged(),
	}, nil
}

func extractorName(biased bool) string {
	if biased {
		return benchmark.ExtractorPositionBiased
	}
	return benchmark.ExtractorVanilla
}
