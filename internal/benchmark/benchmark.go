// Package benchmark measures keyword extractor recall against a corpus of
// themed articles with known reference keywords.
package benchmark

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/23skdu/keyrank/internal/encode"
	kerrors "github.com/23skdu/keyrank/internal/errors"
	"github.com/23skdu/keyrank/internal/logging"
	"github.com/23skdu/keyrank/internal/metrics"
	"github.com/23skdu/keyrank/internal/rake"
	"github.com/23skdu/keyrank/internal/textrank"
	"github.com/23skdu/keyrank/internal/tfidf"
	"github.com/23skdu/keyrank/internal/tokenize"
)

// Extractor names used in reports and metric labels.
const (
	ExtractorTFIDF          = "tfidf"
	ExtractorRAKE           = "rake"
	ExtractorVanilla        = "vanilla_textrank"
	ExtractorPositionBiased = "position_biased_textrank"
)

// Extractors fixes the report row order.
var Extractors = []string{
	ExtractorTFIDF,
	ExtractorRAKE,
	ExtractorVanilla,
	ExtractorPositionBiased,
}

// DefaultThemes names the reference articles shipped with the benchmark
// corpus. Theme i is stored as i_text.txt with its keywords in
// i_keywords.txt.
var DefaultThemes = []string{
	"culture", "business", "crime", "fashion", "health",
	"politics", "science", "sports", "tech",
}

const (
	// DefaultWindowLength is the co-occurrence window used for graph runs.
	DefaultWindowLength = 3
	// DefaultTopN is how many predictions each extractor contributes.
	DefaultTopN = 50
)

// Config carries everything a benchmark run needs.
type Config struct {
	// MaterialsPath points at the directory with the themed articles.
	MaterialsPath string
	// StopWords and Punctuation drive preprocessing.
	StopWords   []string
	Punctuation string
	// IDF supplies corpus statistics for the TF-IDF extractor.
	IDF map[string]float64
	// WindowLength falls back to DefaultWindowLength when zero.
	WindowLength int
	// TopN falls back to DefaultTopN when zero.
	TopN int
	// Themes falls back to DefaultThemes when empty.
	Themes []string
}

// Benchmark runs every extractor over every theme and collects recalls.
type Benchmark struct {
	cfg    Config
	logger *zap.Logger
}

// New builds a Benchmark. A nil logger falls back to a discard logger.
func New(cfg Config, logger *zap.Logger) *Benchmark {
	if logger == nil {
		logger = logging.DiscardLogger()
	}
	if cfg.WindowLength == 0 {
		cfg.WindowLength = DefaultWindowLength
	}
	if cfg.TopN == 0 {
		cfg.TopN = DefaultTopN
	}
	if len(cfg.Themes) == 0 {
		cfg.Themes = DefaultThemes
	}
	return &Benchmark{cfg: cfg, logger: logger}
}

// Run scores every theme with every extractor. The context is checked
// between themes, so a cancelled run stops at the next theme boundary.
func (b *Benchmark) Run(ctx context.Context) (*Report, error) {
	started := time.Now()
	report := NewReport(b.cfg.Themes)
	pre := tokenize.NewPreprocessor(b.cfg.StopWords, b.cfg.Punctuation)
	enc := encode.NewEncoder()

	for i, theme := range b.cfg.Themes {
		if err := ctx.Err(); err != nil {
			return nil, kerrors.Wrap(err, kerrors.TypeComputation, "benchmark run", theme)
		}
		if err := b.scoreTheme(report, pre, enc, i, theme); err != nil {
			return nil, err
		}
	}

	report.Duration = time.Since(started)
	b.logger.Info("benchmark complete",
		zap.String("run_id", report.RunID),
		zap.Duration("duration", report.Duration),
		zap.Int("themes", len(b.cfg.Themes)),
	)
	return report, nil
}

func (b *Benchmark) scoreTheme(report *Report, pre *tokenize.Preprocessor, enc *encode.Encoder, index int, theme string) error {
	text, keywords, err := b.loadTheme(index)
	if err != nil {
		return err
	}

	tokens := pre.Preprocess(text)
	ids, err := enc.Encode(tokens)
	if err != nil {
		return kerrors.Wrap(err, kerrors.TypeComputation, "encode theme", theme)
	}

	graph := textrank.NewEdgeListGraph()
	if err := graph.FillFromTokens(ids, b.cfg.WindowLength); err != nil {
		return kerrors.Wrap(err, kerrors.TypeComputation, "build graph", theme)
	}
	graph.FillPositions(ids)
	if err := graph.CalculatePositionWeights(); err != nil {
		return kerrors.Wrap(err, kerrors.TypeComputation, "position weights", theme)
	}

	ta := tfidf.NewAdapter(tokens, b.cfg.IDF)
	if err := ta.Train(); err != nil {
		return kerrors.Wrap(err, kerrors.TypeComputation, ExtractorTFIDF, theme)
	}
	b.record(report, ExtractorTFIDF, theme, ta.TopKeywords(b.cfg.TopN), keywords)

	ra := rake.NewAdapter(text, b.cfg.StopWords)
	if err := ra.Train(); err != nil {
		return kerrors.Wrap(err, kerrors.TypeComputation, ExtractorRAKE, theme)
	}
	b.record(report, ExtractorRAKE, theme, ra.TopKeywords(b.cfg.TopN), keywords)

	vanilla := textrank.NewScorer(graph)
	if err := vanilla.Train(); err != nil {
		return kerrors.Wrap(err, kerrors.TypeComputation, ExtractorVanilla, theme)
	}
	predicted, err := enc.Decode(vanilla.TopKeywords(b.cfg.TopN))
	if err != nil {
		return kerrors.Wrap(err, kerrors.TypeComputation, ExtractorVanilla, theme)
	}
	b.record(report, ExtractorVanilla, theme, predicted, keywords)

	biased, err := textrank.NewPositionBiasedScorer(graph)
	if err != nil {
		return kerrors.Wrap(err, kerrors.TypeComputation, ExtractorPositionBiased, theme)
	}
	if err := biased.Train(); err != nil {
		return kerrors.Wrap(err, kerrors.TypeComputation, ExtractorPositionBiased, theme)
	}
	predicted, err = enc.Decode(biased.TopKeywords(b.cfg.TopN))
	if err != nil {
		return kerrors.Wrap(err, kerrors.TypeComputation, ExtractorPositionBiased, theme)
	}
	b.record(report, ExtractorPositionBiased, theme, predicted, keywords)

	b.logger.Info("theme scored",
		zap.String("theme", theme),
		zap.Int("tokens", len(tokens)),
		zap.Int("vertices", len(graph.Vertices())),
	)
	return nil
}

func (b *Benchmark) record(report *Report, extractor, theme string, predicted, target []string) {
	recall := Recall(predicted, target)
	report.set(extractor, theme, recall)
	metrics.BenchmarkRecall.WithLabelValues(extractor, theme).Set(recall)
}

// loadTheme reads the article and reference keywords for theme number index.
func (b *Benchmark) loadTheme(index int) (string, []string, error) {
	textPath := filepath.Join(b.cfg.MaterialsPath, fmt.Sprintf("%d_text.txt", index))
	raw, err := os.ReadFile(textPath)
	if err != nil {
		return "", nil, kerrors.Wrap(err, kerrors.TypeStorage, "load theme text", textPath)
	}

	keywordPath := filepath.Join(b.cfg.MaterialsPath, fmt.Sprintf("%d_keywords.txt", index))
	kraw, err := os.ReadFile(keywordPath)
	if err != nil {
		return "", nil, kerrors.Wrap(err, kerrors.TypeStorage, "load theme keywords", keywordPath)
	}

	return string(raw), strings.Fields(string(kraw)), nil
}

// Recall measures the share of target keywords present among the
// predictions. Both sides are treated as sets.
func Recall(predicted, target []string) float64 {
	targetSet := make(map[string]struct{}, len(target))
	for _, w := range target {
		targetSet[w] = struct{}{}
	}
	if len(targetSet) == 0 {
		return 0
	}

	predSet := make(map[string]struct{}, len(predicted))
	for _, w := range predicted {
		predSet[w] = struct{}{}
	}

	hits := 0
	for w := range targetSet {
		if _, ok := predSet[w]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(targetSet))
}
