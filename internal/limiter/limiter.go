package limiter

import (
	"net/http"

	gojson "github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/23skdu/keyrank/internal/metrics"
)

// Config holds rate limiter configuration
type Config struct {
	RPS   int // 0 means disabled
	Burst int // 0 means use RPS
}

// RateLimiter wraps the token bucket limiter
type RateLimiter struct {
	limiter *rate.Limiter
	enabled bool
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(cfg Config) *RateLimiter {
	if cfg.RPS <= 0 {
		return &RateLimiter{enabled: false}
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = cfg.RPS
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RPS), burst),
		enabled: true,
	}
}

// Allow reports whether a request may proceed right now. A disabled
// limiter always allows.
func (l *RateLimiter) Allow() bool {
	if !l.enabled {
		return true
	}
	return l.limiter.Allow()
}

// Middleware wraps an HTTP handler and rejects requests over the
// configured rate with 429 Too Many Requests.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.enabled {
			next.ServeHTTP(w, r)
			return
		}

		if !l.limiter.Allow() {
			metrics.RateLimitRequestsTotal.WithLabelValues("throttled").Inc()
			metrics.HTTPRequestsTotal.WithLabelValues(r.URL.Path, "429").Inc()
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = gojson.NewEncoder(w).Encode(struct {
				Error string `json:"error"`
			}{Error: "rate limit exceeded"})
			return
		}

		metrics.RateLimitRequestsTotal.WithLabelValues("allowed").Inc()
		next.ServeHTTP(w, r)
	})
}
