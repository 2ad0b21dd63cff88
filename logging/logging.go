// SPDX-License-Identifier: MIT

// Package logging builds the process logger.
//
// The generator packages never log; only the orchestrator and the CLI do.
// Output is JSON on stderr (zap production encoding) so stdout stays free for
// command results.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel is used when the level string is empty.
const DefaultLevel = "info"

// New returns a production zap logger at the given level
// ("debug", "info", "warn", "error"; case-insensitive).
//
// Errors:
//   - unknown level names.
func New(level string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	// Sampling would drop per-case debug lines of large jobs.
	cfg.Sampling = nil

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// ParseLevel maps a level name to a zapcore.Level. Empty means DefaultLevel.
func ParseLevel(level string) (zapcore.Level, error) {
	s := strings.TrimSpace(level)
	if s == "" {
		s = DefaultLevel
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log level %q: %w", level, err)
	}
	return lvl, nil
}
