// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"serene/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the generic cache client, used for availability responses.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client (using DB from AppConfig).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// AvailabilityCachePrefix is the prefix used for cached month-availability
// responses.
const AvailabilityCachePrefix = "avail:"

// AvailabilityCacheKey builds the cache key for one expert's month scan at one
// session duration.
func AvailabilityCacheKey(expertID string, year int, month time.Month, duration int) string {
	return fmt.Sprintf("%s%s:%04d-%02d:%d", AvailabilityCachePrefix, expertID, year, int(month), duration)
}

// AvailabilityCacheTTL returns how long cached month scans stay fresh.
func AvailabilityCacheTTL() time.Duration {
	return time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second
}

// InvalidateAvailability drops every cached month scan for the expert and
// month, across all session durations. Used after a booking is created or
// cancelled.
func InvalidateAvailability(ctx context.Context, client *redis.Client, expertID string, year int, month time.Month) error {
	pattern := fmt.Sprintf("%s%s:%04d-%02d:*", AvailabilityCachePrefix, expertID, year, int(month))
	iter := client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
