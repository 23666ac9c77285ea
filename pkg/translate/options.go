package translate

import (
	"log/slog"
	"net/http"
	"time"
)

// DefaultEndpoint is the Cloud Translation v2 REST endpoint.
const DefaultEndpoint = "https://translation.googleapis.com/language/translate/v2"

// DefaultTimeout bounds a single translation call.
const DefaultTimeout = 30 * time.Second

// Option configures the REST and Cloud clients.
type Option func(*options)

type options struct {
	httpClient *http.Client
	logger     *slog.Logger
	endpoint   string
	timeout    time.Duration
}

func defaultOptions() *options {
	return &options{
		endpoint:   DefaultEndpoint,
		timeout:    DefaultTimeout,
		httpClient: http.DefaultClient,
		logger:     slog.New(slog.DiscardHandler),
	}
}

// WithEndpoint overrides the REST endpoint URL.
// Default: DefaultEndpoint.
func WithEndpoint(url string) Option {
	return func(o *options) {
		if url != "" {
			o.endpoint = url
		}
	}
}

// WithHTTPClient sets the HTTP client used by REST.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.httpClient = c
		}
	}
}

// WithTimeout bounds each translation call. Zero disables the bound.
// Default: 30 seconds.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.timeout = d
		}
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
