package logging

import (
	"bytes"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Formats(t *testing.T) {
	tests := []struct {
		name   string
		format string
		level  string
	}{
		{"json info", "json", "info"},
		{"json debug", "json", "debug"},
		{"text info", "text", "info"},
		{"console alias", "console", "warn"},
		{"defaults", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := NewLogger(Config{
				Format: tt.format,
				Level:  tt.level,
				Output: zapcore.AddSync(&buf),
			})
			require.NoError(t, err)

			logger.Warn("heartbeat")
			assert.Contains(t, buf.String(), "heartbeat")
		})
	}
}

func TestNewLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Format: "json", Level: "info", Output: zapcore.AddSync(&buf)})
	require.NoError(t, err)

	logger.Info("extraction done",
		zap.String("extractor", "vanilla_textrank"),
		zap.Int("keywords", 12),
	)

	var entry map[string]any
	require.NoError(t, gojson.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "extraction done", entry["msg"])
	assert.Equal(t, "vanilla_textrank", entry["extractor"])
	assert.EqualValues(t, 12, entry["keywords"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Format: "json", Level: "error", Output: zapcore.AddSync(&buf)})
	require.NoError(t, err)

	logger.Info("quiet")
	logger.Error("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(Config{Level: "shout"})
	assert.Error(t, err)
}

func TestDiscardLogger(t *testing.T) {
	logger := DiscardLogger()
	require.NotNil(t, logger)
	logger.Error("dropped")
}
