// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging, and crawler notification.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache backed by patrickmn/go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: Persistent SQLite-backed cache
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured logger built on sirupsen/logrus
// - notify/ping: Fire-and-forget search-engine ping notifier
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(time.Hour, 10*time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// # Notifier
//
// The ping notifier never blocks the caller and never surfaces transport
// failures; a lost notification is simply lost:
//
//	notifier := ping.NewNotifier(httpClient, logger)
//	notifier.Notify(ctx, "https://example.com/sitemap.xml")
package infrastructure
