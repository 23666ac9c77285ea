package translate

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisMemo is a Memo stored in Redis.
type RedisMemo struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisMemo creates a Redis-backed Memo. Keys are stored as
// "{prefix}:{target}:{sha256(text)}". A ttl of zero keeps entries forever.
// The client lifecycle stays with the caller.
func NewRedisMemo(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisMemo {
	if prefix == "" {
		prefix = "localekit:translations"
	}
	return &RedisMemo{client: client, prefix: prefix, ttl: max(ttl, 0)}
}

// Lookup implements Memo.
func (r *RedisMemo) Lookup(ctx context.Context, target, text string) (string, bool, error) {
	v, err := r.client.Get(ctx, r.key(target, text)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

// Store implements Memo.
func (r *RedisMemo) Store(ctx context.Context, target, text, translated string) error {
	return r.client.Set(ctx, r.key(target, text), translated, r.ttl).Err()
}

func (r *RedisMemo) key(target, text string) string {
	return r.prefix + ":" + memoKey(target, text)
}

var _ Memo = (*RedisMemo)(nil)
