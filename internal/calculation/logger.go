package calculation

import "go.uber.org/zap"

// Logger receives engine diagnostics. The zero-cost default is NopLogger.
type Logger interface {
	Debugf(template string, args ...any)
	Infof(template string, args ...any)
	Warnf(template string, args ...any)
}

// The CLI hands the engine a sugared zap logger.
var _ Logger = (*zap.SugaredLogger)(nil)

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
