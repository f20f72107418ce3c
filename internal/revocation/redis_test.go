package revocation

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client), mr
}

func TestRedisStore_RevokeAndExpire(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "token-a", 30*time.Minute))

	revoked, err = store.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.True(t, mr.Exists(KeyPrefix+"token-a"))
	assert.Equal(t, 30*time.Minute, mr.TTL(KeyPrefix+"token-a"))

	revoked, err = store.IsRevoked(ctx, "token-b")
	require.NoError(t, err)
	assert.False(t, revoked, "other tokens stay valid")

	mr.FastForward(31 * time.Minute)

	revoked, err = store.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked, "entry expires with its ttl")
}

func TestRedisStore_RevokeIsIdempotent(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "token", time.Minute))
	require.NoError(t, store.Revoke(ctx, "token", time.Minute))

	revoked, err := store.IsRevoked(ctx, "token")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRedisStore_NonPositiveTTLWritesNothing(t *testing.T) {
	store, mr := newRedisStore(t)

	require.NoError(t, store.Revoke(context.Background(), "token", 0))

	assert.False(t, mr.Exists(KeyPrefix+"token"))
}

func TestRedisStore_ConnectionErrorSurfaces(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.Close()

	_, err := store.IsRevoked(context.Background(), "token")
	assert.Error(t, err)
}
