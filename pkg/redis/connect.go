package redis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Option configures a Redis connection.
type Option func(*options)

type options struct {
	poolSize      int
	retryAttempts int
	retryInterval time.Duration
	timeout       time.Duration
	dialTimeout   time.Duration
}

func defaultOptions() *options {
	return &options{
		poolSize:      4,
		retryAttempts: 2,
		retryInterval: 500 * time.Millisecond,
		timeout:       2 * time.Second,
		dialTimeout:   3 * time.Second,
	}
}

// WithPoolSize sets the maximum number of connections in the pool.
// Default: 4
func WithPoolSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.poolSize = n
		}
	}
}

// WithRetry configures connection attempts and the base backoff interval.
// Default: 2 attempts, 500ms.
func WithRetry(attempts int, interval time.Duration) Option {
	return func(o *options) {
		o.retryAttempts = attempts
		o.retryInterval = interval
	}
}

// WithTimeout sets the read and write timeout.
// Default: 2 seconds
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithDialTimeout sets the timeout for establishing new connections.
// Default: 3 seconds
func WithDialTimeout(d time.Duration) Option {
	return func(o *options) {
		o.dialTimeout = d
	}
}

// Open parses url, connects and pings the server, retrying with linear backoff.
func Open(ctx context.Context, url string, opts ...Option) (redis.UniversalClient, error) {
	if url == "" {
		return nil, ErrEmptyConnectionURL
	}

	if !strings.HasPrefix(url, "redis://") && !strings.HasPrefix(url, "rediss://") {
		return nil, ErrFailedToParseURL
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	redisOpts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseURL, err)
	}

	redisOpts.PoolSize = o.poolSize
	redisOpts.ReadTimeout = o.timeout
	redisOpts.WriteTimeout = o.timeout
	redisOpts.DialTimeout = o.dialTimeout

	return connect(ctx, redisOpts, o.retryAttempts, o.retryInterval)
}

func connect(ctx context.Context, opts *redis.Options, attempts int, interval time.Duration) (redis.UniversalClient, error) {
	attempts = max(attempts, 1)

	var lastErr error
	for i := range attempts {
		client := redis.NewClient(opts)

		lastErr = client.Ping(ctx).Err()
		if lastErr == nil {
			return client, nil
		}

		_ = client.Close()

		if i == attempts-1 {
			break
		}
		if waitErr := wait(ctx, time.Duration(i+1)*interval); waitErr != nil {
			return nil, errors.Join(ErrConnectionFailed, waitErr)
		}
	}

	return nil, errors.Join(ErrConnectionFailed, lastErr)
}

func wait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
