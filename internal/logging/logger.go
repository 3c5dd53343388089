// Package logging builds the zap loggers used across the service and counts
// emitted entries in Prometheus.
package logging

import (
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// LogEntriesTotal counts log entries by level
	LogEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keyrank_log_entries_total",
			Help: "Total number of log entries by level",
		},
		[]string{"level"},
	)

	// LogErrorsTotal counts error-level entries specifically
	LogErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "keyrank_log_errors_total",
			Help: "Total number of error log entries",
		},
	)
)

// Config holds logger options.
type Config struct {
	// Format selects the output encoding: "json" or "text".
	Format string
	// Level sets the minimum level: "debug", "info", "warn", "error".
	Level string
	// Output receives encoded entries, os.Stdout when nil.
	Output zapcore.WriteSyncer
}

// DefaultConfig returns JSON output at info level.
func DefaultConfig() Config {
	return Config{
		Format: "json",
		Level:  "info",
		Output: os.Stdout,
	}
}

// NewLogger builds a zap logger from cfg. Every entry it writes also updates
// LogEntriesTotal.
func NewLogger(cfg Config) (*zap.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	var encoder zapcore.Encoder
	switch strings.ToLower(cfg.Format) {
	case "text", "console":
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	default:
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := &metricsHookCore{Core: zapcore.NewCore(encoder, output, level)}
	return zap.New(core, zap.AddCaller()), nil
}

// DiscardLogger returns a logger that drops everything, for tests.
func DiscardLogger() *zap.Logger {
	return zap.NewNop()
}

func parseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", level)
	}
}

// metricsHookCore wraps a zapcore.Core so written entries update the
// Prometheus counters.
type metricsHookCore struct {
	zapcore.Core
}

//nolint:gocritic // hugeParam: interface requires value receiver
func (c *metricsHookCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

//nolint:gocritic // hugeParam: interface requires value receiver
func (c *metricsHookCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	LogEntriesTotal.WithLabelValues(entry.Level.String()).Inc()
	if entry.Level >= zapcore.ErrorLevel {
		LogErrorsTotal.Inc()
	}
	return c.Core.Write(entry, fields)
}

func (c *metricsHookCore) With(fields []zapcore.Field) zapcore.Core {
	return &metricsHookCore{Core: c.Core.With(fields)}
}
