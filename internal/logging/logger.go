package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	apperrors "activity-sampler/internal/errors"
)

// Logger is the structured logger used by stores, services and transports.
// Fields are passed as alternating key/value pairs.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
}

// JSONLogger writes one JSON object per line through slog, with the fields
// of an entry nested under "fields".
type JSONLogger struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewJSONLogger creates a logger writing to out. Debug entries are only
// written when debug is true.
func NewJSONLogger(out io.Writer, debug bool) *JSONLogger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return newJSONLogger(out, level)
}

// NewQuietLogger creates a logger writing only warnings and errors to out.
func NewQuietLogger(out io.Writer) *JSONLogger {
	return newJSONLogger(out, slog.LevelWarn)
}

// NewDefaultLogger returns a JSON logger on stderr honoring AS_DEBUG.
func NewDefaultLogger() Logger {
	return NewJSONLogger(os.Stderr, DebugEnabled())
}

func newJSONLogger(out io.Writer, level slog.Level) *JSONLogger {
	if out == nil {
		out = os.Stderr
	}
	l := &JSONLogger{now: time.Now}
	l.logger = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: l.replaceAttr,
	}))
	return l
}

// replaceAttr renames the top level keys and stamps entries in UTC.
func (l *JSONLogger) replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}
	switch a.Key {
	case slog.TimeKey:
		return slog.String("timestamp", l.now().UTC().Format(time.RFC3339))
	case slog.MessageKey:
		a.Key = "message"
	}
	return a
}

// fieldAttrs converts key1, value1, key2, value2, ... into attributes. A
// non-string key or a dangling value is keyed by its pair index.
func fieldAttrs(fields []interface{}) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(fields)/2+1)
	for i := 0; i < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok || i+1 == len(fields) {
			key = fmt.Sprintf("field_%d", i/2)
		}
		value := fields[i]
		if i+1 < len(fields) {
			value = fields[i+1]
		}
		attrs = append(attrs, slog.Any(key, normalizeValue(value)))
	}
	return attrs
}

func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case error:
		return val.Error()
	case time.Duration:
		return val.String()
	case fmt.Stringer:
		return val.String()
	default:
		return v
	}
}

func (l *JSONLogger) log(level slog.Level, msg string, fields []interface{}) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}
	l.logger.LogAttrs(ctx, level, msg, slog.Attr{Key: "fields", Value: slog.GroupValue(fieldAttrs(fields)...)})
}

func (l *JSONLogger) Debug(msg string, fields ...interface{}) {
	l.log(slog.LevelDebug, msg, fields)
}

func (l *JSONLogger) Info(msg string, fields ...interface{}) {
	l.log(slog.LevelInfo, msg, fields)
}

func (l *JSONLogger) Warn(msg string, fields ...interface{}) {
	l.log(slog.LevelWarn, msg, fields)
}

func (l *JSONLogger) Error(msg string, fields ...interface{}) {
	l.log(slog.LevelError, msg, fields)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, ...interface{}) {}
func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}

// LogError logs err at error level when the error taxonomy says it is worth
// logging, attaching the AppError code and context.
func LogError(logger Logger, err error, operation string) {
	if err == nil || !apperrors.ShouldLogError(err) {
		return
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	fields := []interface{}{"operation", operation}
	if appErr, ok := apperrors.AsAppError(err); ok {
		fields = append(fields, "error_code", appErr.Code, "error_type", appErr.Type.String())
		for k, v := range appErr.Context {
			fields = append(fields, k, v)
		}
	} else {
		fields = append(fields, "error_type", fmt.Sprintf("%T", err))
	}

	logger.Error(err.Error(), fields...)
}
