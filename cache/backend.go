package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// memoryBackend is the default store: a plain map, good for a single
// gateway process.
type memoryBackend struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryBackend() Backend {
	return &memoryBackend{values: make(map[string][]byte)}
}

func (m *memoryBackend) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *memoryBackend) Set(_ context.Context, key string, val []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = val
}

func (m *memoryBackend) Delete(_ context.Context, keys ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.values, key)
	}
}

// redisBackend shares the cache across gateway replicas. Entries expire on
// their own as a safety net; tag invalidation remains the primary eviction.
type redisBackend struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisBackend(rawURL string) (Backend, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	return &redisBackend{rdb: redis.NewClient(opts), ttl: time.Minute}, nil
}

func (r *redisBackend) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (r *redisBackend) Set(ctx context.Context, key string, val []byte) {
	r.rdb.Set(ctx, key, val, r.ttl)
}

func (r *redisBackend) Delete(ctx context.Context, keys ...string) {
	r.rdb.Del(ctx, keys...)
}
