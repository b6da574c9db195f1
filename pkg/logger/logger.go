// Package logger provides the structured, levelled logger used across the
// shop: human-readable text in development, JSON in production, and an
// optional asynchronous MongoDB sink for aggregation.
//
// Handlers log through WithCtx so every line carries the request_id injected
// by the logging middleware:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("cookie created", "cookie_id", id)
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/ovenfresh/cookieshop/config"
)

// L is the process-wide base logger.
var L *slog.Logger

func init() {
	var handler slog.Handler

	if config.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	if uri := config.LogMongoURI(); uri != "" {
		mh, err := NewMongoHandler(uri, config.LogMongoDatabase(), config.LogMongoCollection(), handler)
		if err != nil {
			slog.New(handler).Warn("mongo log sink disabled", "error", err)
		} else {
			handler = mh
		}
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// ctxKey stores a per-request *slog.Logger.
type ctxKey struct{}

// WithCtx returns the request-scoped logger stored in ctx, or the base
// logger when none was injected.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// Inject stores a pre-tagged *slog.Logger into ctx. Called by the logging
// middleware; application code rarely needs it.
func Inject(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level on the base logger.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level on the base logger.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level on the base logger.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level on the base logger.
func Error(msg string, args ...any) { L.Error(msg, args...) }
