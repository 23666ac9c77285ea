package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Format selects the log encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("logger: unknown format %q", s)
}

// ParseLevel parses debug, info, warn or error (case-insensitive).
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// Option configures New.
type Option func(*options)

type options struct {
	output     io.Writer
	format     Format
	extractors []ContextExtractor
	sentry     SentryConfig
	level      slog.Level
}

// WithLevel sets the minimum level. Default: info.
func WithLevel(l slog.Level) Option {
	return func(o *options) { o.level = l }
}

// WithFormat sets the encoding. Default: text.
func WithFormat(f Format) Option {
	return func(o *options) {
		if f != "" {
			o.format = f
		}
	}
}

// WithOutput sets the destination. Default: os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithExtractors adds context extractors.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) { o.extractors = append(o.extractors, extractors...) }
}

// WithSentry enables forwarding of warnings and errors to Sentry.
func WithSentry(cfg SentryConfig) Option {
	return func(o *options) { o.sentry = cfg }
}

// New creates a logger.
func New(opts ...Option) *slog.Logger {
	o := &options{
		output: os.Stderr,
		format: FormatText,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(o)
	}

	var h slog.Handler
	if o.format == FormatJSON {
		h = slog.NewJSONHandler(o.output, &slog.HandlerOptions{Level: o.level})
	} else {
		h = tint.NewHandler(o.output, &tint.Options{
			Level:      o.level,
			TimeFormat: time.TimeOnly,
			NoColor:    !isTerminal(o.output),
		})
	}

	if sh := sentryHandler(o.sentry, h); sh != nil {
		h = fanout{h, sh}
	}

	return slog.New(NewLogHandlerDecorator(h, o.extractors...))
}

// NewNope creates a logger that discards all output.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
