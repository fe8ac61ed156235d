// Package logger builds the zap loggers used by every binary.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON production logger at level. Unknown levels fall back to
// info. outputPaths defaults to stderr; the console passes a file so log
// lines do not tear the terminal UI.
func New(level string, outputPaths ...string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if len(outputPaths) > 0 {
		cfg.OutputPaths = outputPaths
		cfg.ErrorOutputPaths = outputPaths
	}

	return cfg.Build()
}
