package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger represents application logger.
type Logger struct {
	*zap.SugaredLogger
}

// New creates new Logger instance with the specified level.
// Development mode writes human readable console output, otherwise JSON.
func New(level int, development bool) *Logger {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(level))

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewExample()
	}

	return &Logger{SugaredLogger: l.Sugar()}
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// Debug logs a message with key/value pairs.
func (l *Logger) Debug(msg string, args ...any) {
	l.SugaredLogger.Debugw(msg, args...)
}

// Info logs a message with key/value pairs.
func (l *Logger) Info(msg string, args ...any) {
	l.SugaredLogger.Infow(msg, args...)
}

// Warn logs a message with key/value pairs.
func (l *Logger) Warn(msg string, args ...any) {
	l.SugaredLogger.Warnw(msg, args...)
}

// Error logs a message with key/value pairs.
func (l *Logger) Error(msg string, args ...any) {
	l.SugaredLogger.Errorw(msg, args...)
}

// With returns a child logger carrying the given key/value pairs.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(args...)}
}

// Fatal is equivalent to Error followed by os.Exit(1).
func (l *Logger) Fatal(msg string, args ...any) {
	l.SugaredLogger.Errorw(msg, args...)
	_ = l.SugaredLogger.Sync()
	os.Exit(1)
}
