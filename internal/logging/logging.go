// Package logging builds the zap logger shared by the CLI and services.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Encodings
const (
	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// Config describes the logger.
type Config struct {
	Level             string `json:"level"`
	Encoding          string `json:"encoding"`
	DisableCaller     bool   `json:"disable_caller,omitempty"`
	DisableStacktrace bool   `json:"disable_stacktrace,omitempty"`
}

// DefaultConfig logs info and above to the console.
func DefaultConfig() Config {
	return Config{
		Level:             "info",
		Encoding:          EncodingConsole,
		DisableStacktrace: true,
	}
}

// New builds a logger writing to stderr.
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var zc zap.Config
	switch cfg.Encoding {
	case EncodingJSON:
		zc = zap.NewProductionConfig()
	case EncodingConsole, "":
		zc = zap.NewDevelopmentConfig()
		zc.Development = false
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return nil, fmt.Errorf("invalid log encoding %q", cfg.Encoding)
	}

	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableCaller = cfg.DisableCaller
	zc.DisableStacktrace = cfg.DisableStacktrace
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	// sampling would drop repeated degraded-read warnings
	zc.Sampling = nil

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
