// Package logging builds the structured logger. The TUI owns the terminal,
// so log lines go to a file rather than stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger settings.
type Config struct {
	// Path is the log file. Empty means DefaultPath.
	Path string

	// Verbose enables debug level.
	Verbose bool
}

// DefaultConfig returns the default logger settings.
func DefaultConfig() Config {
	return Config{}
}

// DefaultPath resolves the log file path in priority order:
// 1. PRAKRITI_LOG environment variable
// 2. $XDG_STATE_HOME/prakriti/prakriti.log
// 3. ~/.local/state/prakriti/prakriti.log
func DefaultPath() (string, error) {
	if p := os.Getenv("PRAKRITI_LOG"); p != "" {
		return p, nil
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "prakriti", "prakriti.log"), nil
}

// New builds a JSON logger writing to cfg.Path.
func New(cfg Config) (*zap.Logger, error) {
	path := cfg.Path
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	zc := zap.NewProductionConfig()
	if cfg.Verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named("prakriti"), nil
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
