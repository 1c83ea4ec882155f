// Package logging provides structured logging for the record store. The
// library logs nothing by default; applications opt in with SetLogger.
package logging

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// Logger returns the logger used by the record store
func Logger() *zap.Logger {
	return logger.Load()
}

// SetLogger replaces the logger used by the record store. Passing nil
// restores the default no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// Config configures a logger built with New
type Config struct {
	Level       string // zap level name, e.g. "debug" or "info". Defaults to "info".
	Development bool   // use a human-readable console encoding
}

// New builds a zap logger from a Config, suitable for SetLogger
func New(cfg Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}
	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
