// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"courtcredits/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the generic cache client.
var CacheClient *redis.Client

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
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

// RedisClaimer claims keys with SETNX so a submission is only accepted once per TTL.
type RedisClaimer struct {
	Client *redis.Client
	Prefix string
}

// Claim returns true when the key was not already held.
func (r *RedisClaimer) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return r.Client.SetNX(ctx, r.Prefix+key, time.Now().Unix(), ttl).Result()
}

// Release drops a claim so the key can be claimed again.
func (r *RedisClaimer) Release(ctx context.Context, key string) error {
	return r.Client.Del(ctx, r.Prefix+key).Err()
}
