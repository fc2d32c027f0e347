// Package cache provides an optional byte cache for lookup responses.
// Correctness never depends on it: every store degrades to a miss.
package cache

import (
	"errors"
	"time"

	"github.com/gofiber/storage/redis/v3"
)

// ErrCacheMiss signals that a cache key was not found.
var ErrCacheMiss = errors.New("cache miss")

// Store defines the minimal cache operations needed by the lookup client.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte, ttl time.Duration) error
	Close() error
}

// Noop implements Store but never stores data.
type Noop struct{}

// Get always returns ErrCacheMiss.
func (Noop) Get(string) ([]byte, error) { return nil, ErrCacheMiss }

// Set discards the value and returns nil.
func (Noop) Set(string, []byte, time.Duration) error { return nil }

// Close is a no-op.
func (Noop) Close() error { return nil }

// Redis is a Store backed by a Redis-compatible server.
type Redis struct {
	storage *redis.Storage
}

// NewRedis connects to the Redis server at the given URL.
func NewRedis(url string) *Redis {
	return &Redis{storage: redis.New(redis.Config{URL: url})}
}

// Get fetches bytes by key, returning ErrCacheMiss when the key is absent.
func (r *Redis) Get(key string) ([]byte, error) {
	val, err := r.storage.Get(key)
	if err != nil {
		return nil, err
	}
	if val == nil {
		return nil, ErrCacheMiss
	}
	return val, nil
}

// Set stores bytes under key for the given TTL.
func (r *Redis) Set(key string, value []byte, ttl time.Duration) error {
	return r.storage.Set(key, value, ttl)
}

// Close releases the underlying connection.
func (r *Redis) Close() error {
	return r.storage.Close()
}
