package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cafeoro/storefront/pkg/redis"
)

type redisCommands interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// RedisStore persists values through the shared redis client. Values carry no
// TTL; the cart lives until it is cleared.
type RedisStore struct {
	client redisCommands
}

// NewRedisStore wraps the provided redis client.
func NewRedisStore(client *redis.Client) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &RedisStore{client: client}, nil
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, redis.Key("kv", key))
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get: %w", err)
	}
	return value, nil
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, redis.Key("kv", key), value, 0); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, redis.Key("kv", key)); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
