package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `yaml:"dsn" env:"SENTRY_DSN"`
	Environment string `yaml:"environment" env:"SENTRY_ENVIRONMENT"`
}

// sentryHandler initializes the SDK and returns a handler forwarding
// warnings and errors. It returns nil when the DSN is empty or init fails.
func sentryHandler(cfg SentryConfig, fallback slog.Handler) slog.Handler {
	if cfg.DSN == "" {
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(fallback).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return nil
	}

	return sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
	}.NewSentryHandler(context.Background())
}

// Flush waits up to timeout for buffered Sentry events to be sent.
// Call it before the process exits; it is a no-op without Sentry.
func Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}
