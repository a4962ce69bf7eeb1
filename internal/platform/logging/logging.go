// Package logging carries a *slog.Logger on the context. Code that receives
// no logger gets one that discards everything.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type ctxKey struct{}

var slogCtxKey = ctxKey{}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		return ctx
	}
	return context.WithValue(ctx, slogCtxKey, logger)
}

// FromContext returns the logger stored on ctx, or a discarding logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return Discard()
	}
	logger, ok := ctx.Value(slogCtxKey).(*slog.Logger)
	if !ok || logger == nil {
		return Discard()
	}
	return logger
}

// Discard returns a logger whose handler drops every record.
func Discard() *slog.Logger {
	return slog.New(noopHandler{})
}

// New builds a text logger writing to w at the named level ("debug", "info",
// "warn", "error"). Unknown levels fall back to info.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type noopHandler struct{}

func (noopHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (noopHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (n noopHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return n
}

func (n noopHandler) WithGroup(_ string) slog.Handler {
	return n
}
