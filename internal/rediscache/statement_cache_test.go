package rediscache_test

import (
	"context"
	"testing"
	"time"

	"mono-statements/internal/rediscache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachable points at a closed port so every command fails fast.
func unreachable(t *testing.T) *rediscache.StatementCache {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := rediscache.NewWithClient(rdb)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestStatementCache_Unreachable(t *testing.T) {
	c := unreachable(t)
	ctx := context.Background()

	assert.Error(t, c.Ping(ctx))

	got, ok, err := c.Get(ctx, "acc:1:2")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "redis get")

	err = c.Set(ctx, "acc:1:2", nil, time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis set")
}
