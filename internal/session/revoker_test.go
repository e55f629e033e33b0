package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRevoker(t *testing.T) {
	mr := miniredis.RunT(t)
	r := NewRedisRevoker(mr.Addr())
	t.Cleanup(func() { _ = r.Close() })

	ctx := context.Background()
	require.NoError(t, r.Ping(ctx))

	id := uuid.New()
	revoked, err := r.IsRevoked(ctx, id)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, r.Revoke(ctx, id, time.Minute))

	revoked, err = r.IsRevoked(ctx, id)
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.Equal(t, time.Minute, mr.TTL(revokedKey(id)))

	mr.FastForward(2 * time.Minute)

	revoked, err = r.IsRevoked(ctx, id)
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisRevoker_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	r := NewRedisRevoker(mr.Addr())
	t.Cleanup(func() { _ = r.Close() })
	mr.Close()

	_, err := r.IsRevoked(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestRedisRevoker_NonPositiveTTLStoresNothing(t *testing.T) {
	mr := miniredis.RunT(t)
	r := NewRedisRevoker(mr.Addr())
	t.Cleanup(func() { _ = r.Close() })

	ctx := context.Background()
	for _, ttl := range []time.Duration{0, -time.Second} {
		id := uuid.New()
		require.NoError(t, r.Revoke(ctx, id, ttl))
		assert.False(t, mr.Exists(revokedKey(id)), "ttl %s", ttl)
	}
	assert.Empty(t, mr.Keys())
}

func TestNoopRevoker(t *testing.T) {
	var r Revoker = NoopRevoker{}
	id := uuid.New()

	require.NoError(t, r.Revoke(context.Background(), id, time.Hour))
	revoked, err := r.IsRevoked(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, revoked)
}
