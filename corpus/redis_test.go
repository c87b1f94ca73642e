//go:build integration

package corpus

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisAddr() string {
	addr := os.Getenv("CORPUS_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	return addr
}

func setupRedis(t *testing.T) *redis.Options {
	opts := &redis.Options{Addr: getRedisAddr()}

	client := redis.NewClient(opts)
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis not available at %s: %v", opts.Addr, err)
	}
	return opts
}

func TestRedisVectorStoreSeedAndLoad(t *testing.T) {
	opts := setupRedis(t)
	ctx := context.Background()

	store, err := NewRedisVectorStore(RedisStoreConfig{Options: opts, Prefix: "corpus-test:"})
	require.NoError(t, err)
	defer func() {
		for _, v := range Golden() {
			store.Delete(ctx, v.Name)
		}
		store.Close()
	}()

	require.NoError(t, Seed(ctx, store))

	v, err := store.Load(ctx, "publish-qos2")
	require.NoError(t, err)
	assert.Equal(t, "PUBLISH", v.Kind)
	assert.Equal(t, Golden()[4].Wire, v.Wire)
}
