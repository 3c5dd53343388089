package main

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config validation errors
var (
	ErrInvalidListenAddr   = errors.New("listen_addr cannot be empty")
	ErrInvalidMetricsAddr  = errors.New("metrics_addr cannot be empty")
	ErrInvalidMaterials    = errors.New("materials_path cannot be empty")
	ErrInvalidReportsPath  = errors.New("reports_path cannot be empty")
	ErrInvalidWindowLength = errors.New("window_length must be at least 2")
	ErrInvalidTopN         = errors.New("top_n must be positive")
	ErrInvalidLogFormat    = errors.New("log_format must be json, console, or text")
	ErrInvalidLogLevel     = errors.New("log_level must be debug, info, warn, or error")
)

// Config holds runtime settings, read from KEYRANK_ environment variables
// with an optional .env file on top.
type Config struct {
	ListenAddr    string `envconfig:"LISTEN_ADDR" default:"0.0.0.0:8080"`
	MetricsAddr   string `envconfig:"METRICS_ADDR" default:"0.0.0.0:9090"`
	MaterialsPath string `envconfig:"MATERIALS_PATH" default:"./assets/benchmark_materials"`
	ReportsPath   string `envconfig:"REPORTS_PATH" default:"./reports"`
	StopWordsPath string `envconfig:"STOP_WORDS_PATH" default:""`
	IDFPath       string `envconfig:"IDF_PATH" default:""`
	WindowLength  int    `envconfig:"WINDOW_LENGTH" default:"3"`
	TopN          int    `envconfig:"TOP_N" default:"10"`
	LogFormat     string `envconfig:"LOG_FORMAT" default:"json"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`

	RateLimitRPS   int `envconfig:"RATE_LIMIT_RPS" default:"0"`
	RateLimitBurst int `envconfig:"RATE_LIMIT_BURST" default:"0"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{
		ListenAddr:    "0.0.0.0:8080",
		MetricsAddr:   "0.0.0.0:9090",
		MaterialsPath: "./assets/benchmark_materials",
		ReportsPath:   "./reports",
		WindowLength:  3,
		TopN:          10,
		LogFormat:     "json",
		LogLevel:      "info",
	}
}

// LoadConfig reads the environment into a validated Config.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("keyrank", &cfg); err != nil {
		return Config{}, err
	}
	if err := ValidateConfig(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ValidateConfig validates the configuration and returns an error if invalid
func ValidateConfig(cfg *Config) error {
	if cfg.ListenAddr == "" {
		return ErrInvalidListenAddr
	}
	if cfg.MetricsAddr == "" {
		return ErrInvalidMetricsAddr
	}
	if cfg.MaterialsPath == "" {
		return ErrInvalidMaterials
	}
	if cfg.ReportsPath == "" {
		return ErrInvalidReportsPath
	}
	if cfg.WindowLength < 2 {
		return ErrInvalidWindowLength
	}
	if cfg.TopN <= 0 {
		return ErrInvalidTopN
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" && cfg.LogFormat != "text" {
		return ErrInvalidLogFormat
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}
