// Package mdllog provides the structured logger used for the parser's own
// diagnostic trace (skipped top-level blocks). The
// core never touches disk, so unlike most of the corpus's zap setups this
// writes wherever the caller points it and has no rotation concern.
package mdllog

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap.Logger writing to w at the given level ("debug", "info",
// "warn", "error"; anything else defaults to info).
func New(level string, w io.Writer) *zap.Logger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:      "time",
		LevelKey:     "level",
		MessageKey:   "msg",
		EncodeTime:   zapcore.TimeEncoderOfLayout("15:04:05"),
		EncodeLevel:  zapcore.CapitalLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	})
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), parseLevel(level))
	return zap.New(core)
}

// NewDiscard returns a logger that drops everything, the default Parse uses
// when the caller hasn't supplied one via ParseWithLogger.
func NewDiscard() *zap.Logger {
	return zap.NewNop()
}

func parseLevel(level string) zapcore.Level {
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
