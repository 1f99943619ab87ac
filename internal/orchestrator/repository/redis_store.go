package repository

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/digirealtydrew93/tackettweb/internal/orchestrator/errors"
	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	redis  *redis.Client
	prefix string
}

func (r *redisStore) key(key string) string {
	return r.prefix + key
}

func (r *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.redis.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("RedisStore.Get %s: %w", key, apperrors.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("RedisStore.Get %s: %w", key, err)
	}
	return data, nil
}

func (r *redisStore) Put(ctx context.Context, key string, data []byte) error {
	if err := r.redis.Set(ctx, r.key(key), data, 0).Err(); err != nil {
		return fmt.Errorf("RedisStore.Put %s: %w", key, err)
	}
	return nil
}

func (r *redisStore) Delete(ctx context.Context, key string) error {
	if err := r.redis.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("RedisStore.Delete %s: %w", key, err)
	}
	return nil
}

func NewRedisStore(redis *redis.Client, prefix string) DocumentStore {
	return &redisStore{
		redis:  redis,
		prefix: prefix,
	}
}
