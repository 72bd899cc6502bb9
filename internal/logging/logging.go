// Package logging builds the zap logger used by the binary and adapts it to
// the calculation engine's Logger interface.
package logging

import (
	"fmt"
	"strings"

	"github.com/lifebridge/lifebridge/internal/calculation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production zap logger. debug forces debug level; otherwise
// level is parsed from a LOG_LEVEL style string and defaults to info.
func New(level string, debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if debug {
		lvl = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = !debug

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// ParseLevel maps a level name to a zap level. Empty means info.
func ParseLevel(level string) (zapcore.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zapcore.InfoLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// EngineLogger adapts a zap logger to calculation.Logger
type EngineLogger struct {
	sugar *zap.SugaredLogger
}

var _ calculation.Logger = (*EngineLogger)(nil)

// NewEngineLogger wraps logger. A nil logger gives a no-op adapter.
func NewEngineLogger(logger *zap.Logger) *EngineLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EngineLogger{sugar: logger.Named("engine").Sugar()}
}

func (l *EngineLogger) Debugf(format string, args ...any) { l.sugar.Debugf(format, args...) }
func (l *EngineLogger) Infof(format string, args ...any)  { l.sugar.Infof(format, args...) }
func (l *EngineLogger) Warnf(format string, args ...any)  { l.sugar.Warnf(format, args...) }
func (l *EngineLogger) Errorf(format string, args ...any) { l.sugar.Errorf(format, args...) }
