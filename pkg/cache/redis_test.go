package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return &RedisClient{Client: client}, mr
}

func TestJSONRoundTripAndMiss(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	var out []string
	assert.ErrorIs(t, c.GetJSON(ctx, "products:list:a", &out), ErrCacheMiss)

	require.NoError(t, c.SetJSON(ctx, "products:list:a", []string{"SKU-1", "SKU-2"}, time.Minute))
	require.NoError(t, c.GetJSON(ctx, "products:list:a", &out))
	assert.Equal(t, []string{"SKU-1", "SKU-2"}, out)

	mr.FastForward(2 * time.Minute)
	assert.ErrorIs(t, c.GetJSON(ctx, "products:list:a", &out), ErrCacheMiss)
}

func TestDeleteByPattern(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("products:list:1", "x"))
	require.NoError(t, mr.Set("products:list:2", "x"))
	require.NoError(t, mr.Set("orders:list:1", "x"))

	n, err := c.DeleteByPattern(ctx, "products:list:*")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.False(t, mr.Exists("products:list:1"))
	assert.True(t, mr.Exists("orders:list:1"))
}
