// Package cache is an explicit response cache keyed by (resource, params).
// Mutation handlers invalidate tags after the backend accepts the change;
// there is no implicit subscription machinery. A monotonic generation per
// key guards against a superseded fetch resolving late and overwriting a
// newer response.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sync"
)

// Invalidation tags, one per cached resource family.
const (
	TagUser       = "User"
	TagCategory   = "Category"
	TagListing    = "Listing"
	TagOrder      = "Order"
	TagDelivery   = "Delivery"
	TagAuction    = "Auction"
	TagStats      = "Stats"
	TagModeration = "Moderation"
	TagCurrency   = "Currency"
	TagShop       = "Shop"
)

// Backend stores the cached bytes. The tag index and generation counters
// stay in-process either way.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte)
	Delete(ctx context.Context, keys ...string)
}

type Cache struct {
	mu      sync.Mutex
	backend Backend
	gens    map[string]uint64
	tagged  map[string]map[string]struct{}
}

func New(backend Backend) *Cache {
	return &Cache{
		backend: backend,
		gens:    make(map[string]uint64),
		tagged:  make(map[string]map[string]struct{}),
	}
}

// Key builds the cache key for a resource and its request parameters.
func Key(resource string, params url.Values) string {
	if len(params) == 0 {
		return resource
	}
	return resource + "?" + params.Encode()
}

// Scope derives an opaque per-credential segment for cache keys. The cache
// is shared across callers (and across replicas on the redis backend), so
// any resource whose upstream response depends on who is asking must fold
// the caller's credential into its key or one user's data gets served to
// the next.
func Scope(token string) string {
	if token == "" {
		return "anon"
	}
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}

// Begin registers a fetch for key and returns its generation. A later Begin
// for the same key supersedes this one.
func (c *Cache) Begin(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[key]++
	return c.gens[key]
}

// Complete stores a fetched value unless the fetch has been superseded.
// Returns false when the value was discarded as stale.
func (c *Cache) Complete(ctx context.Context, key string, gen uint64, tags []string, val []byte) bool {
	c.mu.Lock()
	if c.gens[key] != gen {
		c.mu.Unlock()
		return false
	}
	for _, tag := range tags {
		if c.tagged[tag] == nil {
			c.tagged[tag] = make(map[string]struct{})
		}
		c.tagged[tag][key] = struct{}{}
	}
	c.mu.Unlock()

	c.backend.Set(ctx, key, val)
	return true
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	return c.backend.Get(ctx, key)
}

// Invalidate drops every key registered under the given tags and bumps
// their generations so in-flight fetches started before the invalidation
// cannot complete into the cache.
func (c *Cache) Invalidate(ctx context.Context, tags ...string) {
	c.mu.Lock()
	var keys []string
	for _, tag := range tags {
		for key := range c.tagged[tag] {
			keys = append(keys, key)
			c.gens[key]++
		}
		delete(c.tagged, tag)
	}
	c.mu.Unlock()

	if len(keys) > 0 {
		c.backend.Delete(ctx, keys...)
	}
}

// Fetch returns the cached value for key or runs fn to produce it, storing
// the result under the given tags. A stale completion is still returned to
// its own caller; it just does not enter the cache.
func (c *Cache) Fetch(ctx context.Context, key string, tags []string, fn func() ([]byte, error)) ([]byte, error) {
	if val, ok := c.Get(ctx, key); ok {
		return val, nil
	}
	gen := c.Begin(key)
	val, err := fn()
	if err != nil {
		return nil, err
	}
	c.Complete(ctx, key, gen, tags, val)
	return val, nil
}
