package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisSlot keeps each slot as a plain string key, namespaced by prefix.
type RedisSlot struct {
	client *redis.Client
	prefix string
}

var _ Slot = (*RedisSlot)(nil)

func NewRedisSlot(client *redis.Client, prefix string) *RedisSlot {
	return &RedisSlot{client: client, prefix: prefix}
}

// DialRedis connects and pings, so a bad address fails at startup.
func DialRedis(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: connect redis %s: %w", addr, err)
	}
	return client, nil
}

func (s *RedisSlot) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", key, err)
	}
	return b, nil
}

func (s *RedisSlot) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("storage: write %s: %w", key, err)
	}
	return nil
}
