// Package logging builds the process logger: zap underneath, exposed as a
// logr.Logger for the library packages.
package logging

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a zap logger at level. development switches to the console
// encoder with caller and stack annotations; otherwise production JSON to
// stderr.
func New(level string, development bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// Logr bridges z to logr. logr verbosity V(n) maps to zap level -n, so a
// zap level of debug enables V(1) solve lines.
func Logr(z *zap.Logger) logr.Logger {
	return zapr.NewLogger(z)
}

// NewTestLogger returns a logger that drops everything. Tests that only
// need a valid logger use it instead of logr.Discard to exercise the zap
// path.
func NewTestLogger() logr.Logger {
	return zapr.NewLogger(zap.NewNop())
}
