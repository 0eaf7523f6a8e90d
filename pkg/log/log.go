package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

var (
	leveler = &slog.LevelVar{}
	logger  atomic.Pointer[slog.Logger]
)

func init() { SetDefault(NewSLogger(os.Stderr)) }

func NewSLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     leveler,
	}))
}

func SetDefault(l *slog.Logger) { logger.Store(l) }

func Default() *slog.Logger { return logger.Load() }

func SetLevel(l slog.Level) { leveler.Set(l) }

// ParseLevel accepts debug, info, warn/warning and error.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "verbose":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

func output(level slog.Level, msg string, v ...any) {
	l := Default()
	ctx := context.Background()
	if !l.Enabled(ctx, level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(v...)
	_ = l.Handler().Handle(ctx, r)
}

func Debug(msg string, v ...any) { output(slog.LevelDebug, msg, v...) }
func Info(msg string, v ...any)  { output(slog.LevelInfo, msg, v...) }
func Warn(msg string, v ...any)  { output(slog.LevelWarn, msg, v...) }
func Error(msg string, v ...any) { output(slog.LevelError, msg, v...) }

type levelPrinter slog.Level

func Select(level slog.Level) levelPrinter { return levelPrinter(level) }

func (l levelPrinter) Print(msg string, v ...any) { output(slog.Level(l), msg, v...) }

// PrintFunc only builds the attributes when the level is enabled.
func (l levelPrinter) PrintFunc(msg string, f func() []any) {
	if !Default().Enabled(context.Background(), slog.Level(l)) {
		return
	}
	output(slog.Level(l), msg, f()...)
}
