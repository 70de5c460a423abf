package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"article-service/internal/cache"
)

// RedisConfig
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// TTL applied to every Set. Zero keeps entries until they are deleted.
	TTL time.Duration
}

// RedisClient is the cache.Gateway backed by Redis.
type RedisClient struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.SugaredLogger
}

var _ cache.Gateway = (*RedisClient)(nil)

// NewRedisClient connects and pings Redis.
func NewRedisClient(ctx context.Context, cfg RedisConfig, logger *zap.SugaredLogger) (*RedisClient, error) {
	logger.Infow("[Redis] connecting", "addr", cfg.Addr, "db", cfg.DB)

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Infow("[Redis] connected", "addr", cfg.Addr)
	return &RedisClient{client: client, ttl: cfg.TTL, logger: logger}, nil
}

func (r *RedisClient) Get(ctx context.Context, key cache.Key) (string, bool, error) {
	val, err := r.client.Get(ctx, key.String()).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *RedisClient) Set(ctx context.Context, key cache.Key, value string) error {
	return r.client.Set(ctx, key.String(), value, r.ttl).Err()
}

func (r *RedisClient) Delete(ctx context.Context, keys ...cache.Key) error {
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.String())
	}
	return r.client.Del(ctx, names...).Err()
}

// Close closes the Redis connection
func (r *RedisClient) Close() error {
	if r.client != nil {
		r.logger.Infow("[Redis] closing connection")
		return r.client.Close()
	}
	return nil
}

// HealthCheck verifies Redis connection is healthy
func (r *RedisClient) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
