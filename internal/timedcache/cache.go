// Package timedcache holds elements for a bounded time. Elements are drained
// all at once with Flush; anything not drained within the TTL disappears.
package timedcache

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/lraycheva/core-sub003/internal/log"
)

const (
	DefaultElementTTL      = 10 * time.Second
	DefaultCleanupInterval = time.Second
)

type entry[T any] struct {
	seq     uint64
	element T
}

// Cache is a concurrency-safe timed holding area. Each element expires TTL
// after it was added; a single janitor sweeps expired elements.
type Cache[T any] struct {
	mu    sync.Mutex
	ttl   time.Duration
	name  string
	store *gocache.Cache
	seq   uint64
}

type options struct {
	ttl             time.Duration
	cleanupInterval time.Duration
	name            string
}

// Option configures a Cache.
type Option func(*options)

// WithTTL sets how long an element survives without being flushed.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		if ttl > 0 {
			o.ttl = ttl
		}
	}
}

// WithCleanupInterval sets how often expired elements are swept. Expired
// elements are never returned, swept or not.
func WithCleanupInterval(interval time.Duration) Option {
	return func(o *options) {
		if interval > 0 {
			o.cleanupInterval = interval
		}
	}
}

// WithName labels the cache in log output.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// New creates an empty Cache.
func New[T any](opts ...Option) *Cache[T] {
	o := options{
		ttl:             DefaultElementTTL,
		cleanupInterval: DefaultCleanupInterval,
		name:            "timed",
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Cache[T]{
		ttl:   o.ttl,
		name:  o.name,
		store: gocache.New(o.ttl, o.cleanupInterval),
	}
	c.store.OnEvicted(func(id string, _ any) {
		log.Debug(log.CatCache, "element expired", "cache", c.name, "id", id)
	})
	return c
}

// Add stores element under a fresh id until it is flushed or expires.
func (c *Cache[T]) Add(element T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.store.Set(uuid.NewString(), entry[T]{seq: c.seq, element: element}, c.ttl)
}

// Flush removes and returns every unexpired element in insertion order.
func (c *Cache[T]) Flush() []T {
	c.mu.Lock()
	items := c.store.Items()
	c.store.Flush()
	c.mu.Unlock()

	entries := make([]entry[T], 0, len(items))
	for id, item := range items {
		e, ok := item.Object.(entry[T])
		if !ok {
			log.Error(log.CatCache, "unexpected element type", "cache", c.name, "id", id)
			continue
		}
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b entry[T]) int { return cmp.Compare(a.seq, b.seq) })

	out := make([]T, len(entries))
	for i, e := range entries {
		out[i] = e.element
	}
	if len(out) > 0 {
		log.Debug(log.CatCache, "flushed", "cache", c.name, "count", len(out))
	}
	return out
}

// Len returns the number of unexpired elements.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.store.Items())
}

// TTL returns the per-element lifetime.
func (c *Cache[T]) TTL() time.Duration {
	return c.ttl
}
