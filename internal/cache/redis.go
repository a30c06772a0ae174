package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisCache implements Cache on top of a Redis instance. Keys are laid out
// as "<prefix>:<namespace>:<key>" so a whole namespace can be swept with one
// SCAN pattern.
type redisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache connects to Redis and returns a Cache backed by it. The
// connection is verified with a ping so a misconfigured backend fails at
// startup instead of on the first request.
func NewRedisCache(addr, password string, db int, prefix string) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	if prefix == "" {
		prefix = "healthlifting"
	}
	return &redisCache{client: client, prefix: prefix}, nil
}

func (c *redisCache) fullKey(namespace, key string) string {
	return c.prefix + ":" + namespace + ":" + key
}

func (c *redisCache) Lookup(ctx context.Context, namespace, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, c.fullKey(namespace, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	return value, nil
}

func (c *redisCache) Store(ctx context.Context, namespace, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.fullKey(namespace, key), value, ttl).Err()
}

// InvalidateAll deletes every key of the namespace. SCAN is used instead of
// KEYS so a large namespace does not block the server.
func (c *redisCache) InvalidateAll(ctx context.Context, namespace string) error {
	pattern := c.prefix + ":" + namespace + ":*"
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) >= 100 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) > 0 {
		return c.client.Del(ctx, keys...).Err()
	}
	return nil
}
