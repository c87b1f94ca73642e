package corpus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Redis-backed Store[T], adapted from the teacher's
// store.RedisStore[T]: same index-set-plus-key layout and JSON payload
// encoding, generalized over T. Wired into cmd/mqttwiredump's optional
// -corpus=redis://... flag so a captured-packet corpus can be shared
// across machines during manual protocol testing; nothing under wire/
// or packet/ depends on it.
type RedisStore[T any] struct {
	client *redis.Client
	mu     sync.RWMutex
	closed bool
	ttl    time.Duration
	prefix string
	index  string
}

// RedisStoreConfig configures a RedisStore.
type RedisStoreConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	TTL      time.Duration
	Options  *redis.Options
}

// NewRedisStore connects to Redis and returns a Store[T] backed by it.
func NewRedisStore[T any](config RedisStoreConfig) (*RedisStore[T], error) {
	var client *redis.Client
	if config.Options != nil {
		client = redis.NewClient(config.Options)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     config.Addr,
			Password: config.Password,
			DB:       config.DB,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("corpus: failed to connect to redis: %w", err)
	}

	prefix := config.Prefix
	if prefix == "" {
		prefix = "vector:"
	}

	return &RedisStore[T]{client: client, ttl: config.TTL, prefix: prefix, index: prefix + "index"}, nil
}

func (r *RedisStore[T]) makeKey(key string) string {
	return r.prefix + key
}

func (r *RedisStore[T]) Save(ctx context.Context, key string, value T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.RLock()
	if r.closed {
		r.mu.RUnlock()
		return ErrStoreClosed
	}
	r.mu.RUnlock()

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("corpus: failed to marshal vector: %w", err)
	}

	pipe := r.client.Pipeline()
	if r.ttl > 0 {
		pipe.Set(ctx, r.makeKey(key), data, r.ttl)
	} else {
		pipe.Set(ctx, r.makeKey(key), data, 0)
	}
	pipe.SAdd(ctx, r.index, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("corpus: failed to save vector: %w", err)
	}
	return nil
}

func (r *RedisStore[T]) Load(ctx context.Context, key string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	r.mu.RLock()
	if r.closed {
		r.mu.RUnlock()
		return zero, ErrStoreClosed
	}
	r.mu.RUnlock()

	data, err := r.client.Get(ctx, r.makeKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("corpus: failed to load vector: %w", err)
	}

	var value T
	if err := json.Unmarshal([]byte(data), &value); err != nil {
		return zero, fmt.Errorf("corpus: failed to unmarshal vector: %w", err)
	}
	return value, nil
}

func (r *RedisStore[T]) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.RLock()
	if r.closed {
		r.mu.RUnlock()
		return ErrStoreClosed
	}
	r.mu.RUnlock()

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.makeKey(key))
	pipe.SRem(ctx, r.index, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("corpus: failed to delete vector: %w", err)
	}
	return nil
}

func (r *RedisStore[T]) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	if r.closed {
		r.mu.RUnlock()
		return false, ErrStoreClosed
	}
	r.mu.RUnlock()

	count, err := r.client.Exists(ctx, r.makeKey(key)).Result()
	if err != nil {
		return false, fmt.Errorf("corpus: failed to check existence: %w", err)
	}
	return count > 0, nil
}

func (r *RedisStore[T]) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	if r.closed {
		r.mu.RUnlock()
		return nil, ErrStoreClosed
	}
	r.mu.RUnlock()

	keys, err := r.client.SMembers(ctx, r.index).Result()
	if err != nil {
		return nil, fmt.Errorf("corpus: failed to list vectors: %w", err)
	}
	return keys, nil
}

func (r *RedisStore[T]) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrStoreClosed
	}
	r.closed = true
	return r.client.Close()
}

func (r *RedisStore[T]) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	if r.closed {
		r.mu.RUnlock()
		return 0, ErrStoreClosed
	}
	r.mu.RUnlock()

	count, err := r.client.SCard(ctx, r.index).Result()
	if err != nil {
		return 0, fmt.Errorf("corpus: failed to count vectors: %w", err)
	}
	return count, nil
}

// RedisVectorStore is a RedisStore specialized to Vector.
type RedisVectorStore = RedisStore[Vector]

// NewRedisVectorStore connects to Redis and returns a RedisVectorStore.
func NewRedisVectorStore(config RedisStoreConfig) (*RedisVectorStore, error) {
	return NewRedisStore[Vector](config)
}
