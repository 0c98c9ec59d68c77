package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"society-admin-svc/internal/config"
)

// DefaultRedisPrefix namespaces session hashes
const DefaultRedisPrefix = "society_admin:session:"

// RedisStore keeps each session in one redis hash. The ttl applies to the whole
// session and is refreshed on every Set.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisClient connects to redis and pings it
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}

// NewRedisStore creates a store on top of client
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(sessionID string) string {
	return s.prefix + sessionID
}

func (s *RedisStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	value, err := s.client.HGet(ctx, s.key(sessionID), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to HGET session %s: %w", sessionID, err)
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, sessionID, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	hashKey := s.key(sessionID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, hashKey, key, value)
		pipe.Expire(ctx, hashKey, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to HSET session %s: %w", sessionID, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.HDel(ctx, s.key(sessionID), keys...).Err(); err != nil {
		return fmt.Errorf("failed to HDEL session %s: %w", sessionID, err)
	}
	return nil
}

// Purge is a no-op: redis expires session hashes on its own
func (s *RedisStore) Purge(context.Context) (int64, error) {
	return 0, nil
}
