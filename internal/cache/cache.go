// Package cache is the in-memory read-through cache for backend wiki
// payloads. Entries are keyed by (hub, page path, revision token) and
// stay fresh for a fixed window; a stale hit is served immediately while
// a single background refresh runs. Concurrent identical requests are
// deduplicated so the backend sees one fetch per key.
package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL is the freshness window applied when New gets a
// non-positive ttl.
const DefaultTTL = 5 * time.Minute

// Key identifies one cached payload.
type Key struct {
	Hub   string
	Path  string
	Token string
}

func (k Key) flightKey() string {
	return k.Hub + "\x00" + k.Path + "\x00" + k.Token
}

type entry[V any] struct {
	value   V
	fetched time.Time
}

// Cache is a stale-while-revalidate cache for values of type V. Safe for
// concurrent use.
type Cache[V any] struct {
	ttl    time.Duration
	logger *zap.Logger

	mu      sync.Mutex
	entries map[Key]entry[V]
	group   singleflight.Group
}

// New builds a cache with the given freshness window.
func New[V any](ttl time.Duration, logger *zap.Logger) *Cache[V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache[V]{ttl: ttl, logger: logger, entries: make(map[Key]entry[V])}
}

// Get returns the cached value for key, loading it with load on a miss.
// A stale entry is returned immediately and refreshed in the background;
// the refresh is detached from ctx so navigating away does not abort it.
func (c *Cache[V]) Get(ctx context.Context, key Key, load func(context.Context) (V, error)) (V, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	fresh := ok && time.Since(e.fetched) < c.ttl
	c.mu.Unlock()

	if fresh {
		return e.value, nil
	}
	if ok {
		c.refresh(key, load)
		return e.value, nil
	}

	v, err, _ := c.group.Do(key.flightKey(), func() (any, error) {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.store(key, value)
		return value, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Invalidate drops the entry for key if present.
func (c *Cache[V]) Invalidate(key Key) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *Cache[V]) refresh(key Key, load func(context.Context) (V, error)) {
	go func() {
		_, err, _ := c.group.Do(key.flightKey(), func() (any, error) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			value, err := load(ctx)
			if err != nil {
				return nil, err
			}
			c.store(key, value)
			return value, nil
		})
		if err != nil {
			// The stale entry stays; the next request retries.
			c.logger.Warn("cache refresh failed",
				zap.String("hub", key.Hub),
				zap.String("path", key.Path),
				zap.String("token", key.Token),
				zap.Error(err),
			)
		}
	}()
}

func (c *Cache[V]) store(key Key, value V) {
	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, fetched: time.Now()}
	c.mu.Unlock()
}
