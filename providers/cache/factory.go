package cache

import (
	"fmt"
	"time"

	"storeapi.app/config"
)

// NewCatalogCacheFromConfig builds the configured catalog cache.
// Returns nil when caching is disabled.
func NewCatalogCacheFromConfig(cfg *config.CacheConfig) (*CatalogCache, error) {
	switch cfg.Type {
	case "none":
		return nil, nil
	case "memory":
		return NewCatalogCache(NewMemoryCache()), nil
	case "redis":
		redisCache, err := NewRedisCache(&RedisCacheConfig{
			Addr:         cfg.RedisAddr,
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		if err != nil {
			return nil, fmt.Errorf("connect to redis cache: %w", err)
		}
		return NewCatalogCache(redisCache), nil
	default:
		return nil, fmt.Errorf("unknown cache type: %s", cfg.Type)
	}
}
