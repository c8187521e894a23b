package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"ICSLogPump/config"
)

// RedisStore keeps the processed offsets in a redis hash keyed by file
// path, for deployments where several collectors share state.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(cfg *config.RedisConfig, key string) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &RedisStore{client: rdb, key: key}, nil
}

func (r *RedisStore) Load() (map[string]int64, error) {
	ctx := context.Background()
	fields, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, err
	}
	processed := make(map[string]int64, len(fields))
	for path, raw := range fields {
		off, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			// A corrupt offset means re-reading from the header, which
			// is safe; drop it rather than failing the load.
			continue
		}
		processed[path] = off
	}
	return processed, nil
}

func (r *RedisStore) Save(data map[string]int64) error {
	ctx := context.Background()
	for path, off := range data {
		if err := r.client.HSet(ctx, r.key, path, off).Err(); err != nil {
			return err
		}
	}
	return nil
}
