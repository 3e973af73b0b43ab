package kvstore

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

// RedisConfig holds the configuration for the Redis store
type RedisConfig struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisStore struct {
	client redisclient.Client
}

// NewRedis creates a Store backed by plain Redis strings
func NewRedis(cfg *RedisConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisStore{client: cfg.Client}, nil
}

var _ Store = (*redisStore)(nil)

func (r *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.InvalidArgument("key is required")
	}

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("key %s not found", key)
		}
		return nil, errors.Wrapf(err, "failed to get %s from redis", key)
	}

	return data, nil
}

func (r *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.InvalidArgument("key is required")
	}

	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to set %s in redis", key)
	}

	return nil
}

func (r *redisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "failed to delete keys from redis")
	}

	return nil
}
