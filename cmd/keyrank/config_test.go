package main

import (
	"os"
	"testing"

	"github.com/kelseyhightower/envconfig"
)

func TestValidateConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := ValidateConfig(&cfg); err != nil {
		t.Errorf("ValidateConfig() error = %v, want nil", err)
	}
}

func TestValidateConfig_EmptyListenAddr(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ListenAddr = ""
	if err := ValidateConfig(&cfg); err != ErrInvalidListenAddr {
		t.Errorf("ValidateConfig() error = %v, want %v", err, ErrInvalidListenAddr)
	}
}

func TestValidateConfig_EmptyMetricsAddr(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MetricsAddr = ""
	if err := ValidateConfig(&cfg); err != ErrInvalidMetricsAddr {
		t.Errorf("ValidateConfig() error = %v, want %v", err, ErrInvalidMetricsAddr)
	}
}

func TestValidateConfig_EmptyMaterialsPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaterialsPath = ""
	if err := ValidateConfig(&cfg); err != ErrInvalidMaterials {
		t.Errorf("ValidateConfig() error = %v, want %v", err, ErrInvalidMaterials)
	}
}

func TestValidateConfig_EmptyReportsPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReportsPath = ""
	if err := ValidateConfig(&cfg); err != ErrInvalidReportsPath {
		t.Errorf("ValidateConfig() error = %v, want %v", err, ErrInvalidReportsPath)
	}
}

func TestValidateConfig_InvalidWindowLength(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WindowLength = 1
	if err := ValidateConfig(&cfg); err != ErrInvalidWindowLength {
		t.Errorf("ValidateConfig() error = %v, want %v", err, ErrInvalidWindowLength)
	}

	cfg.WindowLength = -3
	if err := ValidateConfig(&cfg); err != ErrInvalidWindowLength {
		t.Errorf("ValidateConfig() with negative error = %v, want %v", err, ErrInvalidWindowLength)
	}
}

func TestValidateConfig_InvalidTopN(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TopN = 0
	if err := ValidateConfig(&cfg); err != ErrInvalidTopN {
		t.Errorf("ValidateConfig() error = %v, want %v", err, ErrInvalidTopN)
	}
}

func TestValidateConfig_InvalidLogFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogFormat = "yaml"
	if err := ValidateConfig(&cfg); err != ErrInvalidLogFormat {
		t.Errorf("ValidateConfig() error = %v, want %v", err, ErrInvalidLogFormat)
	}
}

func TestValidateConfig_InvalidLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "loud"
	if err := ValidateConfig(&cfg); err != ErrInvalidLogLevel {
		t.Errorf("ValidateConfig() error = %v, want %v", err, ErrInvalidLogLevel)
	}
}

// TestConfigEnvVars verifies environment variable parsing
func TestConfigEnvVars(t *testing.T) {
	os.Setenv("KEYRANK_WINDOW_LENGTH", "5")            //nolint:errcheck // test helper
	os.Setenv("KEYRANK_TOP_N", "25")                   //nolint:errcheck // test helper
	os.Setenv("KEYRANK_MATERIALS_PATH", "/tmp/corpus") //nolint:errcheck // test helper
	os.Setenv("KEYRANK_LOG_LEVEL", "debug")            //nolint:errcheck // test helper
	os.Setenv("KEYRANK_RATE_LIMIT_RPS", "20")          //nolint:errcheck // test helper
	defer func() {
		_ = os.Unsetenv("KEYRANK_WINDOW_LENGTH")
		_ = os.Unsetenv("KEYRANK_TOP_N")
		_ = os.Unsetenv("KEYRANK_MATERIALS_PATH")
		_ = os.Unsetenv("KEYRANK_LOG_LEVEL")
		_ = os.Unsetenv("KEYRANK_RATE_LIMIT_RPS")
	}()

	var cfg Config
	if err := envconfig.Process("keyrank", &cfg); err != nil {
		t.Fatalf("Failed to process config: %v", err)
	}

	if cfg.WindowLength != 5 {
		t.Errorf("WindowLength = %d, want 5", cfg.WindowLength)
	}
	if cfg.TopN != 25 {
		t.Errorf("TopN = %d, want 25", cfg.TopN)
	}
	if cfg.MaterialsPath != "/tmp/corpus" {
		t.Errorf("MaterialsPath = %q, want /tmp/corpus", cfg.MaterialsPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.RateLimitRPS != 20 {
		t.Errorf("RateLimitRPS = %d, want 20", cfg.RateLimitRPS)
	}
}

// TestConfigDefaults verifies tag defaults match DefaultConfig
func TestConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"KEYRANK_LISTEN_ADDR", "KEYRANK_METRICS_ADDR", "KEYRANK_MATERIALS_PATH",
		"KEYRANK_REPORTS_PATH", "KEYRANK_STOP_WORDS_PATH", "KEYRANK_IDF_PATH",
		"KEYRANK_WINDOW_LENGTH", "KEYRANK_TOP_N", "KEYRANK_LOG_FORMAT", "KEYRANK_LOG_LEVEL",
		"KEYRANK_RATE_LIMIT_RPS", "KEYRANK_RATE_LIMIT_BURST",
	} {
		_ = os.Unsetenv(key) //nolint:errcheck
	}

	var cfg Config
	if err := envconfig.Process("keyrank", &cfg); err != nil {
		t.Fatalf("Failed to process config: %v", err)
	}

	if cfg != DefaultConfig() {
		t.Errorf("env defaults = %+v, want %+v", cfg, DefaultConfig())
	}
}
