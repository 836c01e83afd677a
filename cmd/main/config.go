package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/CTAG07/markovtext/pkg/markov"
)

// GenerationConfig holds the default model and sampling parameters. Each one
// can be overridden by the matching command-line flag.
type GenerationConfig struct {
	Order        int     `json:"order"`
	Length       int     `json:"length"`
	Temperature  float64 `json:"temperature"`
	TopK         int     `json:"top_k"`
	MinFrequency int     `json:"min_frequency"`
}

// Config is the top-level configuration struct.
type Config struct {
	LogLevel     string            `json:"log_level"`
	DatabasePath string            `json:"database_path"`
	Alphabet     string            `json:"alphabet"`
	Generation   *GenerationConfig `json:"generation_config"`
}

// DefaultConfig creates a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		DatabasePath: "./data/corpora.db",
		Alphabet:     markov.DefaultAlphabetChars,
		Generation: &GenerationConfig{
			Order:        4,
			Length:       500,
			Temperature:  1.0,
			TopK:         0,
			MinFrequency: 0,
		},
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values. Failing to
// write that file is logged as a warning and the defaults are still returned.
func LoadConfig(path string, logger *slog.Logger) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				logger.Warn("Failed to write default config file", "path", path, "error", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if config.Generation == nil {
		config.Generation = DefaultConfig().Generation
	}
	if config.Alphabet == "" {
		config.Alphabet = markov.DefaultAlphabetChars
	}
	return config, nil
}

// parseLogLevel maps a config level name to a slog level, defaulting to info.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLogLevel(level)}))
}
