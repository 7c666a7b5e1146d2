package dataset

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// redisClient connects to RELAYPAGE_TEST_REDIS, skipping the test when unset.
func redisClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("RELAYPAGE_TEST_REDIS")
	if addr == "" {
		t.Skip("RELAYPAGE_TEST_REDIS not set")
	}
	rc, err := NewRedisClient(addr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rc.Close() })
	require.NoError(t, rc.Ping(context.Background()).Err())
	return rc
}

func TestLoadRedis(t *testing.T) {
	rc := redisClient(t)
	ctx := context.Background()
	prefix := "relaypage:test:" + t.Name() + ":"
	t.Cleanup(func() {
		rc.Del(ctx, prefix+"list", prefix+"zset", prefix+"hash", prefix+"set", prefix+"doc")
	})

	require.NoError(t, rc.RPush(ctx, prefix+"list", "x", "y", "z").Err())
	require.NoError(t, rc.ZAdd(ctx, prefix+"zset", redis.Z{Score: 2, Member: "b"}, redis.Z{Score: 1, Member: "a"}).Err())
	require.NoError(t, rc.HSet(ctx, prefix+"hash", "k2", "v2", "k1", "v1").Err())
	require.NoError(t, rc.SAdd(ctx, prefix+"set", "q", "p").Err())
	require.NoError(t, rc.Set(ctx, prefix+"doc", `{"n": 1, "m": 2}`, 0).Err())

	d, err := LoadRedis(ctx, rc, prefix+"list")
	require.NoError(t, err)
	assert.Equal(t, []any{"x", "y", "z"}, d.Items)

	d, err = LoadRedis(ctx, rc, prefix+"zset")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, d.Entries.Keys())

	d, err = LoadRedis(ctx, rc, prefix+"hash")
	require.NoError(t, err)
	assert.Equal(t, []string{"k1", "k2"}, d.Entries.Keys())

	d, err = LoadRedis(ctx, rc, prefix+"set")
	require.NoError(t, err)
	assert.Equal(t, []any{"p", "q"}, d.Items)

	d, err = LoadRedis(ctx, rc, prefix+"doc")
	require.NoError(t, err)
	assert.Equal(t, []string{"n", "m"}, d.Entries.Keys())

	_, err = LoadRedis(ctx, rc, prefix+"absent")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestNewRedisClient(t *testing.T) {
	_, err := NewRedisClient("")
	assert.Error(t, err)

	rc, err := NewRedisClient("redis://:pw@localhost:6390/2")
	require.NoError(t, err)
	assert.Equal(t, "localhost:6390", rc.Options().Addr)
	assert.Equal(t, 2, rc.Options().DB)
	_ = rc.Close()

	_, err = NewRedisClient("redis://localhost:6390/notadb")
	assert.Error(t, err)
}
