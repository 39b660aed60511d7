// Package log holds the process-wide structured logger.
package log

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	defaultLogger *zap.Logger
	initOnce      sync.Once
)

// New builds a JSON logger at the given level ("debug", "info", "warn",
// "error"; anything else falls back to info). The first logger built
// becomes the process default returned by Provide.
func New(level string) *zap.Logger {
	zapLevel := toZapLevel(level)
	config := zap.Config{
		Level:       zap.NewAtomicLevelAt(zapLevel),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}

	initOnce.Do(func() { defaultLogger = logger })

	return logger
}

// Provide returns the process default logger, building an info-level one
// on first use if New was never called.
func Provide() *zap.Logger {
	initOnce.Do(func() { defaultLogger = newFallback() })
	return defaultLogger
}

func newFallback() *zap.Logger {
	config := zap.NewProductionConfig()
	config.DisableCaller = true
	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func toZapLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
