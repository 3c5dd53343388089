package main

import (
	"context"
	"net/http"
	"strconv"
	"time"

	gojson "github.com/goccy/go-json"
	"go.uber.org/zap"

	kerrors "github.com/23skdu/keyrank/internal/errors"
	"github.com/23skdu/keyrank/internal/limiter"
	"github.com/23skdu/keyrank/internal/metrics"
	"github.com/23skdu/keyrank/internal/tokenize"
)

// server exposes keyword extraction over HTTP.
type server struct {
	cfg       Config
	logger    *zap.Logger
	stopWords []string
	limiter   *limiter.RateLimiter
}

func newServer(cfg Config, logger *zap.Logger, stopWords []string) *server {
	return &server{
		cfg:       cfg,
		logger:    logger,
		stopWords: stopWords,
		limiter: limiter.NewRateLimiter(limiter.Config{
			RPS:   cfg.RateLimitRPS,
			Burst: cfg.RateLimitBurst,
		}),
	}
}

type extractRequest struct {
	Text           string `json:"text"`
	TopN           int    `json:"top_n"`
	WindowLength   int    `json:"window_length"`
	PositionBiased bool   `json:"position_biased"`
}

type extractResponse struct {
	Keywords   []Keyword `json:"keywords"`
	Iterations int       `json:"iterations"`
	Converged  bool      `json:"converged"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/extract", s.limiter.Middleware(http.HandlerFunc(s.handleExtract)))
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

func (s *server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeJSON(w, r, http.StatusMethodNotAllowed, errorResponse{Error: "use POST"})
		return
	}

	var req extractRequest
	if err := gojson.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.TopN <= 0 {
		req.TopN = s.cfg.TopN
	}
	if req.WindowLength == 0 {
		req.WindowLength = s.cfg.WindowLength
	}

	result, err := extractKeywords(req.Text, extractOptions{
		StopWords:      s.stopWords,
		Punctuation:    tokenize.DefaultPunctuation,
		WindowLength:   req.WindowLength,
		TopN:           req.TopN,
		PositionBiased: req.PositionBiased,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if kerrors.IsType(err, kerrors.TypeValidation) {
			status = http.StatusUnprocessableEntity
		}
		s.logger.Warn("extract failed", zap.Error(err), zap.Int("status", status))
		s.writeJSON(w, r, status, errorResponse{Error: err.Error()})
		return
	}

	s.writeJSON(w, r, http.StatusOK, extractResponse{
		Keywords:   result.Keywords,
		Iterations: result.Iterations,
		Converged:  result.Converged,
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	metrics.HTTPRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(status)).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := gojson.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("response encode failed", zap.Error(err))
	}
}

// listenAndServe serves the extraction API on addr until the listener fails
// or ctx is cancelled, then drains in-flight requests.
func (s *server) listenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.logger.Info("extraction service starting", zap.String("address", addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("extraction service stopping")
	return srv.Shutdown(shutdownCtx)
}
