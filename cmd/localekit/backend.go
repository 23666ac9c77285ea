package main

import (
	"context"

	"github.com/dmitrymomot/localekit/internal/config"
	"github.com/dmitrymomot/localekit/pkg/redis"
	"github.com/dmitrymomot/localekit/pkg/translate"
)

// memoryMemoEntries bounds the in-process translation memory.
const memoryMemoEntries = 10_000

// translator builds the configured backend wrapped in a translation memory.
func (a *app) translator(ctx context.Context) (translate.Translator, error) {
	tc := a.cfg.Translate

	var backend translate.Translator
	switch tc.Backend {
	case config.BackendNoop:
		return translate.Identity(), nil
	case config.BackendCloud:
		c, err := translate.NewCloud(ctx, tc.APIKey,
			translate.WithTimeout(tc.Timeout),
			translate.WithLogger(a.logger),
		)
		if err != nil {
			return nil, err
		}
		a.onShutdown(func(context.Context) error { return c.Close() })
		backend = c
	default:
		backend = translate.NewREST(tc.APIKey,
			translate.WithEndpoint(tc.Endpoint),
			translate.WithTimeout(tc.Timeout),
			translate.WithLogger(a.logger),
		)
	}

	memo, err := a.memo(ctx)
	if err != nil {
		return nil, err
	}
	return translate.Cached(backend, memo, a.logger), nil
}

// memo returns a Redis translation memory when REDIS_URL is set and an
// in-process one otherwise.
func (a *app) memo(ctx context.Context) (translate.Memo, error) {
	if a.cfg.RedisURL == "" {
		return translate.NewMemoryMemo(memoryMemoEntries), nil
	}

	client, err := redis.Open(ctx, a.cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	a.onShutdown(func(context.Context) error { return client.Close() })
	a.logger.DebugContext(ctx, "using redis translation memory")

	return translate.NewRedisMemo(client, "", 0), nil
}
