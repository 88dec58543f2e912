package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockedCache(t *testing.T, opts ...Option) (*Cache[[]string], *clock.Mock) {
	t.Helper()
	mock := clock.NewMock()
	c, err := New[[]string](append([]Option{WithClock(mock)}, opts...)...)
	require.NoError(t, err)
	return c, mock
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := New[[]string]()
		require.NoError(t, err)
		assert.Zero(t, c.Len())
	})

	t.Run("invalid ttl", func(t *testing.T) {
		_, err := New[[]string](WithTTL(0))
		assert.ErrorIs(t, err, ErrInvalidTTL)

		_, err = New[[]string](WithTTL(-time.Second))
		assert.ErrorIs(t, err, ErrInvalidTTL)
	})

	t.Run("nil clock falls back to wall clock", func(t *testing.T) {
		c, err := New[[]string](WithClock(nil))
		require.NoError(t, err)

		c.Put("k", []string{"v"})
		got, ok := c.Get("k")
		require.True(t, ok)
		assert.Equal(t, []string{"v"}, got)
	})
}

func TestCache_GetPut(t *testing.T) {
	c, _ := newMockedCache(t)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Put("k", []string{"a", "b"})
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)

	t.Run("empty value is cached", func(t *testing.T) {
		c.Put("none", []string{})
		got, ok := c.Get("none")
		require.True(t, ok)
		assert.Empty(t, got)
	})

	t.Run("overwrite replaces value", func(t *testing.T) {
		c.Put("k", []string{"c"})
		got, ok := c.Get("k")
		require.True(t, ok)
		assert.Equal(t, []string{"c"}, got)
	})
}

func TestCache_TTLExpiry(t *testing.T) {
	c, mock := newMockedCache(t, WithTTL(time.Hour))

	c.Put("k", []string{"v"})

	mock.Add(59 * time.Minute)
	_, ok := c.Get("k")
	assert.True(t, ok, "entry should still be fresh")

	mock.Add(2 * time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok, "entry should have expired")

	t.Run("stale entry evicted lazily", func(t *testing.T) {
		assert.Zero(t, c.Len())
	})

	t.Run("put refreshes timestamp", func(t *testing.T) {
		c.Put("k", []string{"v1"})
		mock.Add(45 * time.Minute)
		c.Put("k", []string{"v2"})
		mock.Add(45 * time.Minute)

		got, ok := c.Get("k")
		require.True(t, ok)
		assert.Equal(t, []string{"v2"}, got)
	})
}

func TestCache_GetOrCompute(t *testing.T) {
	c, mock := newMockedCache(t, WithTTL(time.Hour))

	var calls atomic.Int64
	compute := func() ([]string, error) {
		calls.Add(1)
		return []string{"computed"}, nil
	}

	got, err := c.GetOrCompute("k", compute)
	require.NoError(t, err)
	assert.Equal(t, []string{"computed"}, got)
	assert.EqualValues(t, 1, calls.Load())

	// Second call is served from cache
	got, err = c.GetOrCompute("k", compute)
	require.NoError(t, err)
	assert.Equal(t, []string{"computed"}, got)
	assert.EqualValues(t, 1, calls.Load())

	// Expiry forces a recompute
	mock.Add(61 * time.Minute)
	_, err = c.GetOrCompute("k", compute)
	require.NoError(t, err)
	assert.EqualValues(t, 2, calls.Load())
}

func TestCache_GetOrCompute_Error(t *testing.T) {
	c, _ := newMockedCache(t)

	wantErr := errors.New("backend down")
	_, err := c.GetOrCompute("k", func() ([]string, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	// Errors are not cached
	assert.Zero(t, c.Len())

	got, err := c.GetOrCompute("k", func() ([]string, error) {
		return []string{"ok"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, got)
}

func TestCache_GetOrCompute_Singleflight(t *testing.T) {
	c, _ := newMockedCache(t)

	var calls atomic.Int64
	start := make(chan struct{})

	const workers = 10
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			got, err := c.GetOrCompute("shared", func() ([]string, error) {
				calls.Add(1)
				time.Sleep(100 * time.Millisecond)
				return []string{"once"}, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, []string{"once"}, got)
		}()
	}

	close(start)
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load())
}

func TestCache_Clear(t *testing.T) {
	c, _ := newMockedCache(t)

	c.Put("a", []string{"1"})
	c.Put("b", []string{"2"})
	require.Equal(t, 2, c.Len())

	c.Clear()
	assert.Zero(t, c.Len())

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestCache_Stats(t *testing.T) {
	c, _ := newMockedCache(t)

	c.Put("k", []string{"v"})
	c.Get("k")
	c.Get("k")
	c.Get("missing")

	stats := c.Stats()
	assert.EqualValues(t, 2, stats.Hits)
	assert.EqualValues(t, 1, stats.Misses)
	assert.Equal(t, 1, stats.Size)
}

func TestSearchKey(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := SearchKey("python", "Mumbai", "semantic", 10)
		b := SearchKey("python", "Mumbai", "semantic", 10)
		assert.Equal(t, a, b)
	})

	t.Run("parameters distinguish keys", func(t *testing.T) {
		base := SearchKey("python", "Mumbai", "semantic", 10)

		assert.NotEqual(t, base, SearchKey("java", "Mumbai", "semantic", 10))
		assert.NotEqual(t, base, SearchKey("python", "Delhi", "semantic", 10))
		assert.NotEqual(t, base, SearchKey("python", "Mumbai", "multi-field", 10))
		assert.NotEqual(t, base, SearchKey("python", "Mumbai", "semantic", 20))
	})

	t.Run("no aliasing across fields", func(t *testing.T) {
		assert.NotEqual(t, SearchKey("a b", "", "semantic", 1), SearchKey("a", "b", "semantic", 1))
	})
}

func TestProximityKey(t *testing.T) {
	assert.Equal(t, ProximityKey("Mumbai", 100), ProximityKey("Mumbai", 100))
	assert.NotEqual(t, ProximityKey("Mumbai", 100), ProximityKey("Mumbai", 150))
	assert.NotEqual(t, ProximityKey("Mumbai", 100), ProximityKey("Pune", 100))
}
