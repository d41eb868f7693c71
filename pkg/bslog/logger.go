package bslog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Logger struct {
	slog.Logger
}

type Options struct {
	Level   slog.Level
	DevMode bool
	Writer  io.Writer // defaults to stderr
}

// New builds a JSON logger with the custom level names applied.
func New(opts Options) *Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	base := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       opts.Level,
		ReplaceAttr: BaseReplaceAttr,
	})

	var handlerOpts []handlerOption
	if opts.DevMode {
		handlerOpts = append(handlerOpts, InDevMode())
	}

	return &Logger{Logger: *slog.New(NewHandler(base, handlerOpts...))}
}

// SetDefault makes l the logger behind the package level functions.
func SetDefault(l *Logger) {
	slog.SetDefault(&l.Logger)
}

// ParseLevel accepts the slog level names plus "fatal".
func ParseLevel(s string) (slog.Level, error) {
	if strings.EqualFold(strings.TrimSpace(s), "fatal") {
		return LevelFatal, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level: %q", s)
	}
	return level, nil
}

func (l *Logger) Fatal(msg string, args ...any) {
	logAt(context.Background(), l.Handler(), LevelFatal, msg, args...)
	os.Exit(1)
}
