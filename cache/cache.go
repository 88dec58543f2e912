package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long cached results stay fresh.
const DefaultTTL = time.Hour

type entry[V any] struct {
	value      V
	insertedAt time.Time
}

// Cache is a TTL cache keyed by strings. Put stamps the insertion time;
// a lookup deletes and misses once the entry's age reaches the TTL.
// Entries are only ever evicted lazily, so the map grows with the
// distinct-key working set.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
	ttl     time.Duration
	clk     clock.Clock
	flight  singleflight.Group

	hits   atomic.Int64
	misses atomic.Int64
}

type config struct {
	ttl time.Duration
	clk clock.Clock
}

// Option configures a Cache.
type Option func(*config) error

// WithTTL sets the entry lifetime. Default is DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(c *config) error {
		if ttl <= 0 {
			return ErrInvalidTTL
		}
		c.ttl = ttl
		return nil
	}
}

// WithClock sets the time source, letting tests drive expiry with a mock.
// Default is the wall clock.
func WithClock(clk clock.Clock) Option {
	return func(c *config) error {
		if clk == nil {
			clk = clock.New()
		}
		c.clk = clk
		return nil
	}
}

// New creates an empty cache.
func New[V any](opts ...Option) (*Cache[V], error) {
	cfg := &config{
		ttl: DefaultTTL,
		clk: clock.New(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return &Cache[V]{
		entries: make(map[string]entry[V]),
		ttl:     cfg.ttl,
		clk:     cfg.clk,
	}, nil
}

// lookup fetches a fresh entry, deleting it if stale. It does not touch
// the hit/miss counters.
func (c *Cache[V]) lookup(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.clk.Since(e.insertedAt) >= c.ttl {
		// Lazy eviction
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Get returns the cached value for key if it is still fresh.
func (c *Cache[V]) Get(key string) (V, bool) {
	value, ok := c.lookup(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return value, ok
}

// Put stores a value, overwriting any existing entry and refreshing its
// insertion time.
func (c *Cache[V]) Put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, insertedAt: c.clk.Now()}
}

// GetOrCompute returns the cached value for key, computing and storing it
// on a miss. Concurrent misses for the same key run compute once and
// share its result. Errors are returned to every waiter and nothing is
// cached for them.
func (c *Cache[V]) GetOrCompute(key string, compute func() (V, error)) (V, error) {
	if value, ok := c.lookup(key); ok {
		c.hits.Add(1)
		return value, nil
	}
	c.misses.Add(1)

	result, err, _ := c.flight.Do(key, func() (any, error) {
		// A concurrent winner may have filled the entry already
		if value, ok := c.lookup(key); ok {
			return value, nil
		}
		value, err := compute()
		if err != nil {
			return nil, err
		}
		c.Put(key, value)
		return value, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return result.(V), nil
}

// Clear drops every entry. Hit and miss counters are lifetime counters
// and survive a Clear.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[V])
}

// Len returns the number of stored entries, including stale entries not
// yet evicted by a lookup.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats is a point-in-time view of cache effectiveness.
type Stats struct {
	Hits   int64
	Misses int64
	Size   int
}

// Stats returns lifetime hit/miss counts and the current entry count.
func (c *Cache[V]) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.Len(),
	}
}
