package utils

import (
	"log"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type cacheEntry struct {
	data      interface{}
	expiresAt time.Time
}

// PageCache is a small TTL-wrapped LRU used for rendered list and
// detail pages. Entries are invalidated explicitly on mutation.
type PageCache struct {
	lru *lru.Cache[string, cacheEntry]
}

var (
	pageCache     *PageCache
	pageCacheOnce sync.Once
)

// GetCache returns the process-wide page cache.
func GetCache() *PageCache {
	pageCacheOnce.Do(func() {
		l, err := lru.New[string, cacheEntry](256)
		if err != nil {
			log.Fatalf("Failed to create LRU cache: %v", err)
		}
		pageCache = &PageCache{lru: l}
	})
	return pageCache
}

func (c *PageCache) Set(key string, data interface{}, ttl time.Duration) {
	c.lru.Add(key, cacheEntry{data: data, expiresAt: time.Now().Add(ttl)})
}

func (c *PageCache) Get(key string) interface{} {
	entry, ok := c.lru.Get(key)
	if !ok {
		return nil
	}
	if time.Now().After(entry.expiresAt) {
		c.lru.Remove(key)
		return nil
	}
	return entry.data
}

func (c *PageCache) Delete(key string) {
	c.lru.Remove(key)
}

// DeletePrefix evicts every entry whose key starts with the prefix,
// so a mutation can drop all pages of a cached listing at once.
func (c *PageCache) DeletePrefix(prefix string) {
	for _, key := range c.lru.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.lru.Remove(key)
		}
	}
}
