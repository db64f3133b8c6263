// Package querycache memoises read queries per key for a short stale time
// and collapses concurrent fetches of the same key into one call.
package querycache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const DefaultStaleTime = 30 * time.Second

// Fetch loads the value for a key.
type Fetch func(ctx context.Context) (any, error)

type entry struct {
	value     any
	fetchedAt time.Time
}

type Cache struct {
	mu        sync.Mutex
	entries   map[string]entry
	gens      map[string]uint64
	group     singleflight.Group
	staleTime time.Duration
	now       func() time.Time
}

func New(staleTime time.Duration) *Cache {
	if staleTime <= 0 {
		staleTime = DefaultStaleTime
	}
	return &Cache{
		entries:   make(map[string]entry),
		gens:      make(map[string]uint64),
		staleTime: staleTime,
		now:       time.Now,
	}
}

// Key builds the per-user key for a resource.
func Key(userID, resource string) string {
	return userID + ":" + resource
}

// Get returns the cached value for key while it is fresh. Otherwise fetch
// runs once for all concurrent callers and a successful result is stored.
// The shared fetch does not inherit the caller's cancellation, so one
// cancelled request cannot fail the others waiting on the same key.
func (c *Cache) Get(ctx context.Context, key string, fetch Fetch) (any, error) {
	if v, ok := c.lookup(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		if v, ok := c.lookup(key); ok {
			return v, nil
		}
		c.mu.Lock()
		gen := c.gens[key]
		c.mu.Unlock()

		v, err := fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		// An Invalidate during the fetch makes this result stale.
		c.mu.Lock()
		if c.gens[key] == gen {
			c.entries[key] = entry{value: v, fetchedAt: c.now()}
		}
		c.mu.Unlock()
		return v, nil
	})
	return v, err
}

// Invalidate drops the entry and detaches any fetch already in flight, so
// the next Get starts a new one and the old result is never stored.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.gens[key]++
	c.mu.Unlock()
	c.group.Forget(key)
}

// Refetch invalidates key and loads it again.
func (c *Cache) Refetch(ctx context.Context, key string, fetch Fetch) (any, error) {
	c.Invalidate(key)
	return c.Get(ctx, key, fetch)
}

func (c *Cache) lookup(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.fetchedAt) >= c.staleTime {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Typed wraps Get for callers that know the value type.
func Typed[T any](ctx context.Context, c *Cache, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	v, err := c.Get(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// RefetchTyped wraps Refetch for callers that know the value type.
func RefetchTyped[T any](ctx context.Context, c *Cache, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	c.Invalidate(key)
	return Typed(ctx, c, key, fetch)
}
