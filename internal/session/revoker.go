package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Revoker records sessions ended before their token expiry.
type Revoker interface {
	Revoke(ctx context.Context, sessionID uuid.UUID, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID uuid.UUID) (bool, error)
}

// NoopRevoker never revokes; logout then only clears the cookie.
type NoopRevoker struct{}

// Revoke does nothing.
func (NoopRevoker) Revoke(context.Context, uuid.UUID, time.Duration) error { return nil }

// IsRevoked always reports false.
func (NoopRevoker) IsRevoked(context.Context, uuid.UUID) (bool, error) { return false, nil }

// RedisRevoker keeps revoked session IDs in Redis until the token would expire anyway.
type RedisRevoker struct {
	C *redis.Client
}

// NewRedisRevoker connects lazily to the Redis server at addr.
func NewRedisRevoker(addr string) *RedisRevoker {
	return &RedisRevoker{
		C: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func revokedKey(sessionID uuid.UUID) string { return "session:" + sessionID.String() + ":revoked" }

// Ping checks that Redis is reachable.
func (r *RedisRevoker) Ping(ctx context.Context) error {
	return r.C.Ping(ctx).Err()
}

// Close releases the client's connections.
func (r *RedisRevoker) Close() error {
	return r.C.Close()
}

// Revoke marks the session revoked for ttl. A non-positive ttl is a no-op,
// since Redis would otherwise keep the key forever.
func (r *RedisRevoker) Revoke(ctx context.Context, sessionID uuid.UUID, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.C.Set(ctx, revokedKey(sessionID), "1", ttl).Err()
}

// IsRevoked reports whether the session was revoked and has not yet expired.
func (r *RedisRevoker) IsRevoked(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	n, err := r.C.Exists(ctx, revokedKey(sessionID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
