package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/Player1Taco/Liquid-Flow/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitStore_Allow(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redis.NewRateLimitStore(client)
	ctx := context.Background()

	t.Run("allows requests within limit", func(t *testing.T) {
		for i := int64(1); i <= 3; i++ {
			result, err := store.Allow(ctx, "trader1:intents", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, result.Allowed, "request %d should be allowed", i)
			assert.Equal(t, int64(3), result.Limit)
			assert.Equal(t, 3-i, result.Remaining)
		}
	})

	t.Run("blocks requests over limit", func(t *testing.T) {
		result, err := store.Allow(ctx, "trader1:intents", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Equal(t, int64(0), result.Remaining)
	})

	t.Run("different keys are independent", func(t *testing.T) {
		result, err := store.Allow(ctx, "solver1:solutions", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, int64(4), result.Remaining)
	})

	t.Run("reset after window expires", func(t *testing.T) {
		result, err := store.Allow(ctx, "trader2:intents", 1, time.Second)
		require.NoError(t, err)
		require.True(t, result.Allowed)

		result, err = store.Allow(ctx, "trader2:intents", 1, time.Second)
		require.NoError(t, err)
		assert.False(t, result.Allowed)

		mr.FastForward(2 * time.Second)

		result, err = store.Allow(ctx, "trader2:intents", 1, time.Second)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
	})
}
