// Package logging builds the zap loggers used across the bot.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns a production JSON logger at level ("debug", "info", "warn",
// "error").
func New(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.DisableCaller = false
	zapConfig.Level = lvl
	log, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}
	return log, nil
}

// ForTests returns a development logger for tests that want readable output.
func ForTests() (*zap.Logger, error) {
	return zap.NewDevelopment()
}
