package bslog

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"
)

const LevelFatal = slog.Level(12)

func NewHandler(base slog.Handler, opts ...handlerOption) slog.Handler {
	for _, opt := range opts {
		base = opt(base)
	}

	return base
}

func With(args ...any) *slog.Logger {
	return slog.With(args...)
}

func Debug(msg string, args ...any) {
	logAt(context.Background(), slog.Default().Handler(), slog.LevelDebug, msg, args...)
}

func DebugContext(ctx context.Context, msg string, args ...any) {
	logAt(ctx, slog.Default().Handler(), slog.LevelDebug, msg, args...)
}

func Info(msg string, args ...any) {
	logAt(context.Background(), slog.Default().Handler(), slog.LevelInfo, msg, args...)
}

func Warn(msg string, args ...any) {
	logAt(context.Background(), slog.Default().Handler(), slog.LevelWarn, msg, args...)
}

func Error(msg string, args ...any) {
	logAt(context.Background(), slog.Default().Handler(), slog.LevelError, msg, args...)
}

func ErrorContext(ctx context.Context, msg string, args ...any) {
	logAt(ctx, slog.Default().Handler(), slog.LevelError, msg, args...)
}

func Fatal(msg string, args ...any) {
	logAt(context.Background(), slog.Default().Handler(), LevelFatal, msg, args...)
	os.Exit(1)
}

// logAt must be called directly by an exported helper, the record PC points
// at the helper's caller.
func logAt(ctx context.Context, handler slog.Handler, level slog.Level, msg string, args ...any) {
	if !handler.Enabled(ctx, level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // skip [Callers, logAt, helper]

	record := slog.NewRecord(time.Now(), level, msg, pcs[0])
	record.Add(args...)
	_ = handler.Handle(ctx, record)
}
