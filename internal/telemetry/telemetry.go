// Package telemetry provides the injectable zap.Logger used across the
// module, mirroring gateway-go's logger-as-dependency pattern (internal/
// validation.New(cfg, logger), internal/server.New(...)) rather than a
// package-level global.
package telemetry

import "go.uber.org/zap"

// NewProduction builds the default production logger: JSON encoding, info
// level, matching cmd/gateway/main.go's zap.NewProduction() call.
func NewProduction() (*zap.Logger, error) {
	return zap.NewProduction()
}

// NewDevelopment builds a human-readable console logger for local runs.
func NewDevelopment() (*zap.Logger, error) {
	return zap.NewDevelopment()
}

// Noop returns a logger that discards everything, used as the default when
// no logger is injected so every component can unconditionally call its
// logger without a nil check.
func Noop() *zap.Logger {
	return zap.NewNop()
}

// OrNoop returns logger if non-nil, otherwise a no-op logger. Every
// constructor in this module that accepts a *zap.Logger runs its argument
// through this so callers may pass nil.
func OrNoop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return Noop()
	}
	return logger
}
