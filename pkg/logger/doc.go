// Package logger builds the slog loggers used by the localekit commands.
//
// Output goes to stderr so that generated content and reports on stdout stay
// clean. Two formats are available: colored human-readable text (tint) and
// JSON. Request-scoped values are attached through context extractors:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithExtractors(logger.FromContext("file"), logger.FromContext("language")),
//	)
//
//	ctx = logger.WithValue(ctx, "file", "de.json")
//	log.InfoContext(ctx, "translated", slog.String("key", "title"))
//	// INF translated key=title file=de.json
//
// When a Sentry DSN is configured, warnings and errors are also forwarded to
// Sentry; without one the logger silently stays local.
package logger
