package kvstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/config"
	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/pkg/metrics"
)

// NewClient builds a go-redis client from config.
func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// RedisStore implements Store on a Redis client.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Ping verifies the connection, for startup checks.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	val, err := s.rdb.Get(ctx, key).Result()
	metrics.RecordStoreOpDuration("get", time.Since(start))
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("store get %s: %w", key, err)
	}
	return val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	start := time.Now()
	err := s.rdb.Set(ctx, key, value, 0).Err()
	metrics.RecordStoreOpDuration("set", time.Since(start))
	if err != nil {
		return fmt.Errorf("store set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) GetByPrefix(ctx context.Context, prefix string) ([]string, error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOpDuration("get_by_prefix", time.Since(start)) }()

	var keys []string
	iter := s.rdb.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("store scan %s*: %w", prefix, err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	raw, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("store mget: %w", err)
	}
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		// A key deleted between SCAN and MGET comes back nil; skip it.
		if str, ok := v.(string); ok {
			values = append(values, str)
		}
	}
	return values, nil
}

func (s *RedisStore) MSet(ctx context.Context, keys, values []string) error {
	if len(keys) != len(values) {
		return fmt.Errorf("store mset: %d keys but %d values", len(keys), len(values))
	}
	if len(keys) == 0 {
		return nil
	}
	pairs := make([]interface{}, 0, len(keys)*2)
	for i := range keys {
		pairs = append(pairs, keys[i], values[i])
	}
	start := time.Now()
	err := s.rdb.MSet(ctx, pairs...).Err()
	metrics.RecordStoreOpDuration("mset", time.Since(start))
	if err != nil {
		return fmt.Errorf("store mset: %w", err)
	}
	return nil
}

func (s *RedisStore) MDel(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	start := time.Now()
	err := s.rdb.Del(ctx, keys...).Err()
	metrics.RecordStoreOpDuration("mdel", time.Since(start))
	if err != nil {
		return fmt.Errorf("store mdel: %w", err)
	}
	return nil
}

func (s *RedisStore) IncrBy(ctx context.Context, key string, delta int64) (int64, error) {
	start := time.Now()
	n, err := s.rdb.IncrBy(ctx, key, delta).Result()
	metrics.RecordStoreOpDuration("incrby", time.Since(start))
	if err != nil {
		return 0, fmt.Errorf("store incrby %s: %w", key, err)
	}
	return n, nil
}
