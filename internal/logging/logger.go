package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Logger struct {
	out   io.Writer
	level slog.Level
	json  bool
	l     *slog.Logger
}

type Field struct {
	Key string
	Val any
}

func New(jsonEnabled bool) *Logger {
	return NewWithWriter(os.Stdout, jsonEnabled)
}

func NewWithWriter(out io.Writer, jsonEnabled bool) *Logger {
	lg := &Logger{out: out, level: slog.LevelInfo, json: jsonEnabled}
	lg.rebuild()
	return lg
}

func (lg *Logger) SetJSON(enabled bool) {
	lg.json = enabled
	lg.rebuild()
}

// SetLevel accepts debug, info, warn or error. Unknown values keep the
// current level and return false.
func (lg *Logger) SetLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lg.level = slog.LevelDebug
	case "", "info":
		lg.level = slog.LevelInfo
	case "warn", "warning":
		lg.level = slog.LevelWarn
	case "error":
		lg.level = slog.LevelError
	default:
		return false
	}
	lg.rebuild()
	return true
}

func (lg *Logger) Debug(msg string, fields ...Field) {
	lg.print(slog.LevelDebug, msg, fields...)
}

func (lg *Logger) Info(msg string, fields ...Field) {
	lg.print(slog.LevelInfo, msg, fields...)
}

func (lg *Logger) Warn(msg string, fields ...Field) {
	lg.print(slog.LevelWarn, msg, fields...)
}

func (lg *Logger) Error(msg string, fields ...Field) {
	lg.print(slog.LevelError, msg, fields...)
}

func (lg *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: lg.level}
	if lg.json {
		lg.l = slog.New(slog.NewJSONHandler(lg.out, opts))
		return
	}
	lg.l = slog.New(slog.NewTextHandler(lg.out, opts))
}

func (lg *Logger) print(level slog.Level, msg string, fields ...Field) {
	attrs := make([]slog.Attr, 0, len(fields))
	for _, f := range fields {
		if err, ok := f.Val.(error); ok {
			attrs = append(attrs, slog.String(f.Key, err.Error()))
			continue
		}
		attrs = append(attrs, slog.Any(f.Key, f.Val))
	}
	lg.l.LogAttrs(context.Background(), level, msg, attrs...)
}
