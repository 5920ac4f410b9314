package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dentalflow/backend/pkg/config"
)

// Redis persists the snapshot in a single Redis key, the server-side analog
// of the original single key-value storage slot. The logo lives in a second
// key under the same prefix.
type Redis struct {
	client  *redis.Client
	key     string
	logoKey string
}

// NewRedis creates a Redis snapshot provider and verifies the connection
func NewRedis(cfg *config.RedisConfig, keyPrefix string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Redis{
		client:  client,
		key:     keyPrefix + ":snapshot",
		logoKey: keyPrefix + ":logo",
	}, nil
}

// Load returns the stored snapshot blob, or (nil, nil) when absent
func (r *Redis) Load(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return data, nil
}

// Save overwrites the stored snapshot blob
func (r *Redis) Save(ctx context.Context, data []byte) error {
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// LoadLogo returns the base64 clinic logo, or "" when absent
func (r *Redis) LoadLogo(ctx context.Context) (string, error) {
	logo, err := r.client.Get(ctx, r.logoKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read logo: %w", err)
	}
	return logo, nil
}

// SaveLogo overwrites the base64 clinic logo
func (r *Redis) SaveLogo(ctx context.Context, logo string) error {
	if err := r.client.Set(ctx, r.logoKey, logo, 0).Err(); err != nil {
		return fmt.Errorf("failed to write logo: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (r *Redis) Close() error {
	return r.client.Close()
}
