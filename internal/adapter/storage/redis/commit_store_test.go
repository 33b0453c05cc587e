package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitStore_CheckAndSet_NewHash(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewCommitStore(client)
	ctx := context.Background()

	ok, err := store.CheckAndSet(ctx, "0xabc123", 24*time.Hour)
	require.NoError(t, err)
	assert.True(t, ok, "new commit hash should return true")
}

func TestCommitStore_CheckAndSet_Replay(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewCommitStore(client)
	ctx := context.Background()

	ok, err := store.CheckAndSet(ctx, "0xdef456", 24*time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	// Replay, same hash
	ok, err = store.CheckAndSet(ctx, "0xdef456", 24*time.Hour)
	require.NoError(t, err)
	assert.False(t, ok, "replayed commit hash should return false")
}

func TestCommitStore_CheckAndSet_GlobalScope(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewCommitStore(client)
	ctx := context.Background()

	// The guard has no user or batch scope: a hash used once is used for
	// everyone.
	ok, err := store.CheckAndSet(ctx, "0xshared", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.CheckAndSet(ctx, "0xshared", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)
}
