package translate_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/translate"
)

func TestCached(t *testing.T) {
	t.Parallel()

	t.Run("second call is served from memory", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		upstream := translate.Func(func(_ context.Context, text, target string) (string, error) {
			calls.Add(1)
			return text + "@" + target, nil
		})

		memo := translate.NewMemoryMemo(0)
		tr := translate.Cached(upstream, memo, nil)
		ctx := context.Background()

		out, err := tr.Translate(ctx, "Hi", "de")
		require.NoError(t, err)
		require.Equal(t, "Hi@de", out)

		out, err = tr.Translate(ctx, "Hi", "de")
		require.NoError(t, err)
		require.Equal(t, "Hi@de", out)
		require.Equal(t, int32(1), calls.Load())

		_, err = tr.Translate(ctx, "Hi", "fr")
		require.NoError(t, err)
		require.Equal(t, int32(2), calls.Load())
		require.Equal(t, 2, memo.Len())
	})

	t.Run("failures are not stored", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		upstream := translate.Func(func(context.Context, string, string) (string, error) {
			calls.Add(1)
			return "", errors.New("boom")
		})

		memo := translate.NewMemoryMemo(0)
		tr := translate.Cached(upstream, memo, nil)

		for range 2 {
			_, err := tr.Translate(context.Background(), "Hi", "de")
			require.Error(t, err)
		}
		require.Equal(t, int32(2), calls.Load())
		require.Zero(t, memo.Len())
	})

	t.Run("concurrent identical requests share one call", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		release := make(chan struct{})
		upstream := translate.Func(func(_ context.Context, text, _ string) (string, error) {
			calls.Add(1)
			<-release
			return text, nil
		})

		tr := translate.Cached(upstream, translate.NewMemoryMemo(0), nil)

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			results []string
		)
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				out, err := tr.Translate(context.Background(), "same", "de")
				if err != nil {
					out = err.Error()
				}
				mu.Lock()
				results = append(results, out)
				mu.Unlock()
			}()
		}

		// Give every goroutine time to join the in-flight call.
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		require.Equal(t, int32(1), calls.Load())
		require.Len(t, results, 10)
		for _, r := range results {
			require.Equal(t, "same", r)
		}
	})
}

func TestMemoryMemo(t *testing.T) {
	t.Parallel()

	t.Run("evicts least recently used", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		m := translate.NewMemoryMemo(2)
		require.NoError(t, m.Store(ctx, "de", "a", "A"))
		require.NoError(t, m.Store(ctx, "de", "b", "B"))

		_, ok, err := m.Lookup(ctx, "de", "a")
		require.NoError(t, err)
		require.True(t, ok)

		require.NoError(t, m.Store(ctx, "de", "c", "C"))

		_, ok, _ = m.Lookup(ctx, "de", "b")
		require.False(t, ok, "b should be evicted")
		v, ok, _ := m.Lookup(ctx, "de", "a")
		require.True(t, ok)
		require.Equal(t, "A", v)
		require.Equal(t, 2, m.Len())
	})

	t.Run("code spellings share entries", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		m := translate.NewMemoryMemo(0)
		require.NoError(t, m.Store(ctx, "pt_br", "Hi", "Oi"))

		v, ok, err := m.Lookup(ctx, "pt-BR", "Hi")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "Oi", v)
	})
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	out, err := translate.Identity().Translate(context.Background(), "Hello", "de")
	require.NoError(t, err)
	require.Equal(t, "Hello", out)
}
