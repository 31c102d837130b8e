// Package enginelog is the engine's structured logger. It keeps the
// teacher logger package's level/field-based API shape (Debug/Info/
// Warn/Error, WithContext returning a derived logger) but is backed by
// zerolog's structured logger instead of a hand-rolled
// formatter/output pair.
package enginelog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Level mirrors the teacher logger package's LogLevel enum so call
// sites read the same way; it maps onto zerolog's own levels.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
	Fatal
)

func (l Level) zerolog() zerolog.Level {
	switch l {
	case Debug:
		return zerolog.DebugLevel
	case Info:
		return zerolog.InfoLevel
	case Warn:
		return zerolog.WarnLevel
	case Error:
		return zerolog.ErrorLevel
	case Fatal:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Logger wraps a zerolog.Logger with the command-oriented fields this
// engine logs around every dispatch: command kind, subject, outcome.
type Logger struct {
	z zerolog.Logger
}

// New builds a Logger writing to w at the given level.
func New(w io.Writer, level Level) *Logger {
	z := zerolog.New(w).With().Timestamp().Logger().Level(level.zerolog())
	return &Logger{z: z}
}

// Default writes text-formatted logs to stdout at Info level, matching
// the teacher logger's NewLogger default output.
func Default() *Logger {
	return New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02 15:04:05"}, Info)
}

func (l *Logger) Debug(message string, fields map[string]interface{}) {
	l.log(Debug, message, fields)
}

func (l *Logger) Info(message string, fields map[string]interface{}) {
	l.log(Info, message, fields)
}

func (l *Logger) Warn(message string, fields map[string]interface{}) {
	l.log(Warn, message, fields)
}

func (l *Logger) Error(message string, fields map[string]interface{}) {
	l.log(Error, message, fields)
}

func (l *Logger) log(level Level, message string, fields map[string]interface{}) {
	evt := l.z.WithLevel(level.zerolog())
	for k, v := range fields {
		evt = evt.Interface(k, v)
	}
	evt.Msg(message)
}

// WithContext returns a derived Logger that always attaches the given
// fields, matching the teacher logger's WithContext(map) -> *Logger
// shape.
func (l *Logger) WithContext(context map[string]interface{}) *Logger {
	ctx := l.z.With()
	for k, v := range context {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{z: ctx.Logger()}
}

// Command logs a command-dispatch outcome: kind ("create_schema",
// "drop_schema", "update"), subject (schema/table name), and err (nil
// on success).
func (l *Logger) Command(kind, subject string, err error) {
	fields := map[string]interface{}{"command": kind, "subject": subject}
	if err != nil {
		fields["error"] = err.Error()
		l.Error("command failed", fields)
		return
	}
	l.Info("command succeeded", fields)
}
