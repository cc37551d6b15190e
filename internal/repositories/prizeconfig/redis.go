package prizeconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is where the prize document is kept when no key is configured
const DefaultRedisKey = "prizedraw:config"

// RedisConfig holds configuration for the Redis-backed source
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client

	// Key holding the document
	Key string

	// Format of the stored document; defaults to JSON
	Format Format
}

// redisSource implements the Source interface using a single Redis string key
type redisSource struct {
	client *redis.Client
	key    string
	format Format
}

// NewRedis creates a new Redis-backed prize configuration source
func NewRedis(cfg *RedisConfig) (*redisSource, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	key := cfg.Key
	if key == "" {
		key = DefaultRedisKey
	}
	format := cfg.Format
	if format == "" {
		format = FormatJSON
	}

	return &redisSource{
		client: cfg.RedisClient,
		key:    key,
		format: format,
	}, nil
}

// Fetch reads the document stored at the key
func (r *redisSource) Fetch(ctx context.Context) (*Payload, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("%w: redis key %s", ErrNotFound, r.key)
		}
		return nil, fmt.Errorf("failed to get prize configuration: %w", err)
	}

	return &Payload{
		Data:   data,
		Format: r.format,
		Origin: r.key,
	}, nil
}

// Describe returns the Redis key
func (r *redisSource) Describe() string {
	return "redis:" + r.key
}
