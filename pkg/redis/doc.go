// Package redis opens go-redis clients for the translation memory.
//
// A command-line run holds at most a handful of connections, so the defaults
// are small: a pool of 4, one retry, and short timeouts. Both redis:// and
// rediss:// (TLS) URLs are accepted.
//
//	client, err := redis.Open(ctx, os.Getenv("REDIS_URL"),
//		redis.WithRetry(3, time.Second),
//	)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
package redis
