package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// GoCache is an in-memory Cache implementation backed by go-cache
type GoCache struct {
	cache *gocache.Cache
}

// NewGoCache creates a new GoCache instance
// defaultExpiration: default expiration time for items
// cleanupInterval: interval for cleaning up expired items
func NewGoCache(defaultExpiration, cleanupInterval time.Duration) *GoCache {
	return &GoCache{
		cache: gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves values for the given keys and reports which were missing
func (gc *GoCache) Get(keys []string) (map[string][]byte, []string, error) {
	found := make(map[string][]byte)
	missing := make([]string, 0)

	for _, key := range keys {
		value, ok := gc.cache.Get(key)
		if !ok {
			missing = append(missing, key)
			continue
		}
		data, ok := value.([]byte)
		if !ok {
			// A non-[]byte entry counts as missing
			missing = append(missing, key)
			continue
		}
		found[key] = data
	}

	return found, missing, nil
}

// Set stores key-value pairs with the specified TTL
func (gc *GoCache) Set(data map[string][]byte, ttl time.Duration) error {
	for key, value := range data {
		gc.cache.Set(key, value, ttl)
	}
	return nil
}

// Clear removes all items from cache
func (gc *GoCache) Clear() {
	gc.cache.Flush()
}

// ItemCount returns the number of items in cache
func (gc *GoCache) ItemCount() int {
	return gc.cache.ItemCount()
}
