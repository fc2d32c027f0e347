// Package testutil provides test utilities and helpers.
package testutil

import (
	"sync"
	"time"

	"pecheck/internal/cache"
	"pecheck/internal/config"
)

// TestConfig returns a config pointed at a test API server with fast
// timeouts so retry paths don't slow the suite down.
func TestConfig(apiURL string) *config.Config {
	return &config.Config{
		Env:           "test",
		WikiAPIURL:    apiURL,
		WikiBaseURL:   "https://en.wikipedia.org/wiki/",
		UserAgent:     "pecheck-test/1.0",
		LookupTimeout: 2 * time.Second,
		LookupRetries: 2,
		CacheTTL:      time.Minute,
		MaxPeers:      5,
		MaxCategories: 2,
		PeerRate:      1000,
	}
}

// MemoryStore is an in-memory cache.Store for tests.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get returns the stored value or an error on miss.
func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if val, ok := s.data[key]; ok {
		return val, nil
	}
	return nil, cache.ErrCacheMiss
}

// Set stores the value, ignoring the TTL.
func (s *MemoryStore) Set(key string, value []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
