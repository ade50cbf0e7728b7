package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
)

// Setup installs a JSON slog logger writing to stdout as the process default.
// level is one of DEBUG, INFO, WARN, ERROR; anything else means INFO.
func Setup(level string) {
	slog.SetDefault(New(os.Stdout, level))
}

// New builds the logger Setup installs. Records at ERROR and above carry a
// stacktrace attribute.
func New(w io.Writer, level string) *slog.Logger {
	json := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     ParseLevel(level),
		AddSource: true,
	})
	return slog.New(&traceHandler{next: json, minLevel: slog.LevelError})
}

// ParseLevel maps a LOG_LEVEL value to a slog.Level.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Fatal logs at Error level and exits with code 1.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}

// maxFrames bounds the stack attached to a record.
const maxFrames = 32

// traceHandler attaches the caller's stack to records at or above minLevel
// as a "stacktrace" list of "function file:line" entries, starting at the
// code that logged.
type traceHandler struct {
	next     slog.Handler
	minLevel slog.Level
}

func (h *traceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *traceHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.minLevel {
		r.AddAttrs(slog.Any("stacktrace", callerFrames()))
	}
	return h.next.Handle(ctx, r)
}

func (h *traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &traceHandler{next: h.next.WithAttrs(attrs), minLevel: h.minLevel}
}

func (h *traceHandler) WithGroup(name string) slog.Handler {
	return &traceHandler{next: h.next.WithGroup(name), minLevel: h.minLevel}
}

func callerFrames() []string {
	pcs := make([]uintptr, maxFrames+8)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	out := make([]string, 0, maxFrames)
	for len(out) < maxFrames {
		f, more := frames.Next()
		if len(out) > 0 || !loggerFrame(f.Function) {
			out = append(out, fmt.Sprintf("%s %s:%d", f.Function, f.File, f.Line))
		}
		if !more {
			break
		}
	}
	return out
}

// loggerFrame reports frames between the caller and the handler.
func loggerFrame(fn string) bool {
	return strings.HasPrefix(fn, "log/slog.") ||
		fn == "github.com/portfolio/backend/internal/logging.Fatal"
}
