package cache

import "time"

//go:generate mockgen -destination=mocks/cache.go -package=mock_cache . Cache

// Cache is a byte-oriented TTL cache used for provider response payloads
type Cache interface {
	// Get retrieves data by keys from cache
	//
	// Returns:
	// - map[string][]byte: key->data map for found keys
	// - []string: list of missing keys
	// - error: execution error
	Get(keys []string) (map[string][]byte, []string, error)

	// Set stores data in cache with the specified TTL; if ttl is 0,
	// the cache's default expiration is used
	Set(data map[string][]byte, ttl time.Duration) error
}
