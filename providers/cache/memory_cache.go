// Package cache provides caching for the read-only geo catalog
package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"storeapi.app/models"
)

// GenericCacheInterface defines generic cache operations
type GenericCacheInterface interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
	Clear(ctx context.Context)
}

type cacheEntry struct {
	Data      []byte
	ExpiresAt time.Time
}

type MemoryCache struct {
	data   map[string]cacheEntry
	mutex  sync.RWMutex
	ticker *time.Ticker
	stopCh chan struct{}
}

func NewMemoryCache() GenericCacheInterface {
	cache := &MemoryCache{
		data:   make(map[string]cacheEntry),
		ticker: time.NewTicker(5 * time.Minute),
		stopCh: make(chan struct{}),
	}

	go cache.cleanup()
	return cache
}

func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, exists := c.data[key]
	if !exists {
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		return nil, false
	}

	return entry.Data, true
}

func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if value == nil {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = cacheEntry{
		Data:      value,
		ExpiresAt: time.Now().Add(ttl),
	}
}

func (c *MemoryCache) Delete(ctx context.Context, key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
}

func (c *MemoryCache) Clear(ctx context.Context) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[string]cacheEntry)
}

func (c *MemoryCache) cleanup() {
	for {
		select {
		case <-c.ticker.C:
			c.removeExpiredEntries()
		case <-c.stopCh:
			c.ticker.Stop()
			return
		}
	}
}

func (c *MemoryCache) removeExpiredEntries() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	for key, entry := range c.data {
		if now.After(entry.ExpiresAt) {
			delete(c.data, key)
		}
	}
}

// CatalogCache wraps a generic cache with catalog-specific operations
type CatalogCache struct {
	cache GenericCacheInterface
}

func NewCatalogCache(cache GenericCacheInterface) *CatalogCache {
	return &CatalogCache{
		cache: cache,
	}
}

func (c *CatalogCache) GetStates(ctx context.Context, key string) ([]models.State, bool) {
	data, found := c.cache.Get(ctx, key)
	if !found {
		return nil, false
	}

	var states []models.State
	if err := json.Unmarshal(data, &states); err != nil {
		return nil, false
	}

	return states, true
}

func (c *CatalogCache) SetStates(ctx context.Context, key string, states []models.State, ttl time.Duration) {
	data, err := json.Marshal(states)
	if err != nil {
		return
	}

	c.cache.Set(ctx, key, data, ttl)
}

func (c *CatalogCache) GetStores(ctx context.Context, key string) ([]models.Store, bool) {
	data, found := c.cache.Get(ctx, key)
	if !found {
		return nil, false
	}

	var stores []models.Store
	if err := json.Unmarshal(data, &stores); err != nil {
		return nil, false
	}

	return stores, true
}

func (c *CatalogCache) SetStores(ctx context.Context, key string, stores []models.Store, ttl time.Duration) {
	data, err := json.Marshal(stores)
	if err != nil {
		return
	}

	c.cache.Set(ctx, key, data, ttl)
}

func (c *CatalogCache) Clear() {
	c.cache.Clear(context.Background())
}
