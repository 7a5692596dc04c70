package layoutstore

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/lraycheva/core-sub003/internal/log"
)

// DefaultCacheTTL is how long a loaded layout is served from memory.
const DefaultCacheTTL = 5 * time.Minute

// CachedStore is a read-through cache in front of a Store. Get is served
// from memory after the first load; Save and Delete invalidate the name.
// List always reads the underlying store.
//
// Each name carries a generation bumped around every write. A load only
// fills the cache if no write to that name started or finished while it was
// reading.
type CachedStore struct {
	Store
	cache *gocache.Cache
	ttl   time.Duration

	mu  sync.Mutex
	gen map[string]uint64
}

var _ Store = (*CachedStore)(nil)

// NewCachedStore wraps store. A non-positive ttl uses DefaultCacheTTL.
func NewCachedStore(store Store, ttl time.Duration) *CachedStore {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStore{
		Store: store,
		cache: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
		gen:   make(map[string]uint64),
	}
}

// Get returns a copy of the cached layout, loading it on a miss. Misses
// that fail are not cached.
func (c *CachedStore) Get(ctx context.Context, name string) (Layout, error) {
	if value, found := c.cache.Get(name); found {
		if l, ok := value.(Layout); ok {
			log.Debug(log.CatCache, "layout cache hit", "name", name)
			return l.clone(), nil
		}
		log.Error(log.CatCache, "wrong type assertion when getting layout", "name", name)
	}

	c.mu.Lock()
	gen := c.gen[name]
	c.mu.Unlock()

	l, err := c.Store.Get(ctx, name)
	if err != nil {
		return l, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen[name] == gen {
		c.cache.Set(name, l.clone(), c.ttl)
	} else {
		log.Debug(log.CatCache, "layout changed during load, not caching", "name", name)
	}
	return l, nil
}

func (c *CachedStore) Save(ctx context.Context, l Layout) error {
	c.invalidate(l.Name)
	defer c.invalidate(l.Name)
	return c.Store.Save(ctx, l)
}

func (c *CachedStore) Delete(ctx context.Context, name string) error {
	c.invalidate(name)
	defer c.invalidate(name)
	return c.Store.Delete(ctx, name)
}

func (c *CachedStore) invalidate(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen[name]++
	c.cache.Delete(name)
}

// Flush drops every cached layout.
func (c *CachedStore) Flush() {
	c.cache.Flush()
}

func (l Layout) clone() Layout {
	l.Definition = l.Definition.Clone()
	return l
}
