package translate

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"
)

type cached struct {
	next   Translator
	memo   Memo
	logger *slog.Logger
	group  singleflight.Group
}

// Cached wraps next with memo. Memo hits skip the upstream call, concurrent
// identical requests share one call, and only successful translations are
// stored. Memo failures are logged and never fail a translation.
func Cached(next Translator, memo Memo, logger *slog.Logger) Translator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &cached{next: next, memo: memo, logger: logger}
}

func (c *cached) Translate(ctx context.Context, text, target string) (string, error) {
	if v, ok, err := c.memo.Lookup(ctx, target, text); err != nil {
		c.logger.WarnContext(ctx, "translation memory lookup failed", slog.String("error", err.Error()))
	} else if ok {
		return v, nil
	}

	v, err, _ := c.group.Do(memoKey(target, text), func() (any, error) {
		out, err := c.next.Translate(ctx, text, target)
		if err != nil {
			return "", err
		}
		if err := c.memo.Store(ctx, target, text, out); err != nil {
			c.logger.WarnContext(ctx, "translation memory store failed", slog.String("error", err.Error()))
		}
		return out, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
