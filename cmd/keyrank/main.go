package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/23skdu/keyrank/internal/benchmark"
	"github.com/23skdu/keyrank/internal/logging"
	"github.com/23skdu/keyrank/internal/storage"
	"github.com/23skdu/keyrank/internal/tokenize"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	textPath := flag.String("text", "", "Extract keywords from the file at this path")
	benchMode := flag.Bool("bench", false, "Run the benchmark corpus and write reports")
	materialsPath := flag.String("materials", cfg.MaterialsPath, "Benchmark corpus directory")
	query := flag.String("query", "", "SQL to run against the persisted benchmark report")
	serveMode := flag.Bool("serve", false, "Start the HTTP extraction service")
	topN := flag.Int("top", cfg.TopN, "How many keywords to emit")
	window := flag.Int("window", cfg.WindowLength, "Co-occurrence window length")
	positionBiased := flag.Bool("position", false, "Use position biased scoring")
	snapshotPath := flag.String("snapshot", "", "Write the co-occurrence graph to this Parquet file")
	listenAddr := flag.String("listen", cfg.ListenAddr, "Address to listen on for the extraction API")
	metricsAddr := flag.String("metrics", cfg.MetricsAddr, "Address to listen on for Prometheus metrics")
	flag.Parse()

	logger, err := logging.NewLogger(logging.Config{Format: cfg.LogFormat, Level: cfg.LogLevel})
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case *textPath != "":
		runExtractFile(logger, cfg, *textPath, *topN, *window, *positionBiased, *snapshotPath)
	case *benchMode:
		runBenchmark(ctx, logger, cfg, *materialsPath, *window)
	case *query != "":
		runQuery(ctx, logger, cfg, *query)
	case *serveMode:
		runServe(ctx, logger, cfg, *listenAddr, *metricsAddr)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// loadStopWords resolves the stop word list, preferring the configured file
// over the built-in English defaults.
func loadStopWords(cfg Config) ([]string, error) {
	if cfg.StopWordsPath == "" {
		return tokenize.DefaultStopWords, nil
	}
	return benchmark.LoadStopWords(cfg.StopWordsPath)
}

func runExtractFile(logger *zap.Logger, cfg Config, path string, topN, window int, biased bool, snapshotPath string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read input", zap.Error(err), zap.String("path", path))
		os.Exit(1)
	}

	stopWords, err := loadStopWords(cfg)
	if err != nil {
		logger.Error("load stop words", zap.Error(err))
		os.Exit(1)
	}

	result, err := extractKeywords(string(raw), extractOptions{
		StopWords:      stopWords,
		Punctuation:    tokenize.DefaultPunctuation,
		WindowLength:   window,
		TopN:           topN,
		PositionBiased: biased,
	})
	if err != nil {
		logger.Error("extract", zap.Error(err), zap.String("path", path))
		os.Exit(1)
	}

	if snapshotPath != "" {
		if err := storage.WriteGraphSnapshot(snapshotPath, result.Graph); err != nil {
			logger.Error("write snapshot", zap.Error(err), zap.String("path", snapshotPath))
			os.Exit(1)
		}
		logger.Info("graph snapshot written", zap.String("path", snapshotPath))
	}

	for _, kw := range result.Keywords {
		fmt.Printf("%s\t%.6f\n", kw.Word, kw.Score)
	}
}

// runBenchmark scores the corpus with every extractor. Predictions per
// extractor stay at the benchmark default rather than following -top, which
// only shapes one-shot output.
func runBenchmark(ctx context.Context, logger *zap.Logger, cfg Config, materialsPath string, window int) {
	stopWords, err := loadStopWords(cfg)
	if err != nil {
		logger.Error("load stop words", zap.Error(err))
		os.Exit(1)
	}

	var idf map[string]float64
	if cfg.IDFPath != "" {
		if idf, err = benchmark.LoadIDF(cfg.IDFPath); err != nil {
			logger.Error("load idf", zap.Error(err))
			os.Exit(1)
		}
	}

	b := benchmark.New(benchmark.Config{
		MaterialsPath: materialsPath,
		StopWords:     stopWords,
		Punctuation:   tokenize.DefaultPunctuation,
		IDF:           idf,
		WindowLength:  window,
	}, logger)

	report, err := b.Run(ctx)
	if err != nil {
		logger.Error("benchmark", zap.Error(err))
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.ReportsPath, 0o755); err != nil {
		logger.Error("create reports dir", zap.Error(err), zap.String("path", cfg.ReportsPath))
		os.Exit(1)
	}

	csvPath := filepath.Join(cfg.ReportsPath, "report.csv")
	parquetPath := filepath.Join(cfg.ReportsPath, "report.parquet")
	jsonPath := filepath.Join(cfg.ReportsPath, "report.json")
	if err := report.SaveCSV(csvPath); err != nil {
		logger.Error("save csv", zap.Error(err))
		os.Exit(1)
	}
	records := report.Records()
	if err := storage.WriteReportParquet(parquetPath, records); err != nil {
		logger.Error("save parquet", zap.Error(err))
		os.Exit(1)
	}
	if err := storage.WriteReportJSON(jsonPath, records); err != nil {
		logger.Error("save json", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("benchmark reports written",
		zap.String("run_id", report.RunID),
		zap.String("csv", csvPath),
		zap.String("parquet", parquetPath),
		zap.String("json", jsonPath),
	)
}

func runQuery(ctx context.Context, logger *zap.Logger, cfg Config, query string) {
	db := storage.NewReportDB(filepath.Join(cfg.ReportsPath, "report.parquet"))
	rows, err := db.Query(ctx, query)
	if err != nil {
		logger.Error("query", zap.Error(err))
		os.Exit(1)
	}
	for _, row := range rows {
		fmt.Println(strings.Join(row, "\t"))
	}
}

func runServe(ctx context.Context, logger *zap.Logger, cfg Config, listenAddr, metricsAddr string) {
	stopWords, err := loadStopWords(cfg)
	if err != nil {
		logger.Error("load stop words", zap.Error(err))
		os.Exit(1)
	}

	go func() {
		logger.Info("metrics server starting", zap.String("address", metricsAddr))
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(metricsAddr, mux); err != nil {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	srv := newServer(cfg, logger, stopWords)
	if err := srv.listenAndServe(ctx, listenAddr); err != nil {
		logger.Error("serve", zap.Error(err))
		os.Exit(1)
	}
}
