package gflow

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Logger is the logging interface used by gflow. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	loggerMu sync.RWMutex
	logger   Logger
)

// SetLogger replaces the package logger. A nil logger restores the default,
// which follows slog.Default().
func SetLogger(l Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

func getLogger() Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	if logger == nil {
		return slog.Default()
	}
	return logger
}

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LoggerConfig configures the Log operator. Zero values fall back to the
// defaults noted on each field.
type LoggerConfig struct {
	// Logger defaults to the package logger.
	Logger Logger
	// Args are appended to every message.
	Args []any

	// LevelSuccess defaults to debug.
	LevelSuccess LogLevel
	// LevelCancel defaults to warn.
	LevelCancel LogLevel
	// LevelFailure defaults to error.
	LevelFailure LogLevel

	MessageSuccess string
	MessageCancel  string
	MessageFailure string
}

func (c *LoggerConfig) parse() {
	if c.Logger == nil {
		c.Logger = getLogger()
	}
	c.LevelSuccess = parseLogLevel(c.LevelSuccess, LogLevelDebug)
	c.LevelCancel = parseLogLevel(c.LevelCancel, LogLevelWarn)
	c.LevelFailure = parseLogLevel(c.LevelFailure, LogLevelError)
	if c.MessageSuccess == "" {
		c.MessageSuccess = "gflow: flow completed"
	}
	if c.MessageCancel == "" {
		c.MessageCancel = "gflow: flow canceled"
	}
	if c.MessageFailure == "" {
		c.MessageFailure = "gflow: flow failed"
	}
}

func parseLogLevel(level, def LogLevel) LogLevel {
	level = LogLevel(strings.ToLower(string(level)))
	if level == "" {
		return def
	}
	return level
}

func logFunc(level LogLevel, log Logger) func(msg string, args ...any) {
	switch level {
	case LogLevelDebug:
		return log.Debug
	case LogLevelWarn:
		return log.Warn
	case LogLevelError:
		return log.Error
	default:
		return log.Info
	}
}

// Log logs the outcome of every collection of f: the number of values and
// the duration, plus the error when f fails or is canceled. The flow itself
// is not changed.
func Log[T any](f Flow[T], config LoggerConfig) Flow[T] {
	config.parse()
	logSuccess := logFunc(config.LevelSuccess, config.Logger)
	logCancel := logFunc(config.LevelCancel, config.Logger)
	logFailure := logFunc(config.LevelFailure, config.Logger)

	return New(func(ctx context.Context, emit Collector[T]) error {
		start := time.Now()
		count := 0
		err := f.Collect(ctx, func(ctx context.Context, v T) error {
			count++
			return emit(ctx, v)
		})

		args := append([]any{"count", count, "duration", time.Since(start)}, config.Args...)
		switch {
		case err == nil:
			logSuccess(config.MessageSuccess, args...)
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			logCancel(config.MessageCancel, append(args, "error", err)...)
		default:
			logFailure(config.MessageFailure, append(args, "error", err)...)
		}
		return err
	})
}
