package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
)

// Logger interface defines the logging methods
type Logger interface {
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Fatal(msg string, fields ...interface{})
}

// logger implementation
type loggerImpl struct {
	zl zerolog.Logger
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level           zerolog.Level
	Console         bool
	File            bool
	FilePath        string
	MaxSizeMB       int
	MaxBackups      int
	MaxAgeDays      int
	Compress        bool
	TimeFieldFormat string
}

// DefaultLoggerConfig keeps the prompt stream clean: file only, warnings and up.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:           zerolog.WarnLevel,
		Console:         false,
		File:            true,
		FilePath:        "bikeshare.log",
		MaxSizeMB:       10,
		MaxBackups:      5,
		MaxAgeDays:      30,
		Compress:        true,
		TimeFieldFormat: time.RFC3339,
	}
}

// New creates a new logger instance with the given writers
func New(level zerolog.Level, writers ...io.Writer) Logger {
	if len(writers) == 0 {
		return Nop()
	}
	multi := io.MultiWriter(writers...)
	zl := zerolog.New(multi).With().Timestamp().Logger().Level(level)
	return &loggerImpl{zl: zl}
}

// FromConfig builds a logger from cfg. Console output goes to stderr because
// stdout carries the interactive prompts.
func FromConfig(cfg LoggerConfig) Logger {
	var writers []io.Writer

	if cfg.Console {
		writers = append(writers, ConsoleWriter(os.Stderr, cfg.TimeFieldFormat))
	}
	if cfg.File && cfg.FilePath != "" {
		writers = append(writers, FileWriter(cfg))
	}

	if cfg.TimeFieldFormat != "" {
		zerolog.TimeFieldFormat = cfg.TimeFieldFormat
	}
	return New(cfg.Level, writers...)
}

// Nop returns a logger that discards everything
func Nop() Logger {
	return &loggerImpl{zl: zerolog.Nop()}
}

// ConsoleWriter returns a human readable writer on out
func ConsoleWriter(out io.Writer, timeFormat string) io.Writer {
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: timeFormat, NoColor: true}
}

// FileWriter returns a rotating writer for cfg.FilePath
func FileWriter(cfg LoggerConfig) io.Writer {
	return &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB, // megabytes
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays, // days
		Compress:   cfg.Compress,
	}
}

// ParseLogLevel maps a level name to a zerolog level, falling back to warn.
func ParseLogLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return lvl
}

// Info logs an info message
func (l *loggerImpl) Info(msg string, fields ...interface{}) {
	logWithFields(l.zl.Info(), msg, fields...)
}

// Warn logs a warning message
func (l *loggerImpl) Warn(msg string, fields ...interface{}) {
	logWithFields(l.zl.Warn(), msg, fields...)
}

// Error logs an error message
func (l *loggerImpl) Error(msg string, fields ...interface{}) {
	logWithFields(l.zl.Error(), msg, fields...)
}

// Debug logs a debug message
func (l *loggerImpl) Debug(msg string, fields ...interface{}) {
	logWithFields(l.zl.Debug(), msg, fields...)
}

// Fatal logs a fatal message and exits
func (l *loggerImpl) Fatal(msg string, fields ...interface{}) {
	logWithFields(l.zl.Fatal(), msg, fields...)
}

// logWithFields adds structured fields to the event
func logWithFields(event *zerolog.Event, msg string, fields ...interface{}) {
	if event == nil {
		return
	}
	if len(fields) == 1 {
		if m, ok := fields[0].(map[string]interface{}); ok {
			event.Fields(m).Msg(msg)
			return
		}
	}
	// fallback: treat as key-value pairs
	if len(fields)%2 == 0 {
		for i := 0; i < len(fields); i += 2 {
			key, ok := fields[i].(string)
			if !ok {
				continue
			}
			if key == "error" {
				if err, ok := fields[i+1].(error); ok && err != nil {
					event = event.Err(err)
					continue
				}
			}
			event = event.Interface(key, fields[i+1])
		}
	}
	event.Msg(msg)
}
