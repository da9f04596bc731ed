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

func setupMiniRedis(t *testing.T) *miniredis.Miniredis {
	mr := miniredis.RunT(t)
	Rdb = goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = Rdb.Close() })
	return mr
}

func TestGetValueMissingKey(t *testing.T) {
	setupMiniRedis(t)
	ctx := context.Background()

	v, err := GetValue(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, SetWithExpiration(ctx, "k", "v", time.Minute))
	v, err = GetValue(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	ok, err := Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, DeleteKey(ctx, "k"))
	ok, err = Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTryLockAndUnlock(t *testing.T) {
	mr := setupMiniRedis(t)
	ctx := context.Background()

	ok, err := TryLock(ctx, "lock", "owner-a", 5*time.Second, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = TryLock(ctx, "lock", "owner-b", 5*time.Second, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	// 非持有者无法释放
	UnLock(ctx, "lock", "owner-b")
	assert.True(t, mr.Exists("lock"))

	UnLock(ctx, "lock", "owner-a")
	assert.False(t, mr.Exists("lock"))
}
