// Package log builds the zap loggers used across genlru.
package log

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogDebug is used for debugging messages, such as generation rotations.
	LogDebug LogLevel = "debug"

	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"
)

var ErrUnknownLevel = errors.New("unknown log level")

// ZapLevel converts l to its zapcore counterpart.
func (l LogLevel) ZapLevel() (zapcore.Level, error) {
	switch l {
	case LogDebug:
		return zap.DebugLevel, nil
	case LogInfo, "":
		return zap.InfoLevel, nil
	case LogWarn:
		return zap.WarnLevel, nil
	case LogError:
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, string(l))
	}
}

// New builds a logger at the given level. Development loggers write
// human-readable console output, production loggers write JSON.
func New(level LogLevel, development bool) (*zap.Logger, error) {
	lvl, err := level.ZapLevel()
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// NewTest builds a debug-level console logger writing to stdout.
func NewTest() *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return zap.New(consoleCore)
}

// Sync flushes logger, ignoring the errors a terminal returns for fsync.
func Sync(logger *zap.Logger) {
	err := logger.Sync()
	if err != nil && !errors.Is(err, syscall.EINVAL) && !errors.Is(err, syscall.ENOTTY) {
		logger.Warn("failed to sync logger", zap.Error(err))
	}
}
