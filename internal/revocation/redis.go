// Package revocation holds denylist stores for logged out bearer tokens.
// Every entry expires on its own once the token it names could no longer be
// accepted anyway.
package revocation

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces denylist keys in redis
const KeyPrefix = "blacklist:"

// RedisStore keeps the denylist in redis so every server process sees the same entries
type RedisStore struct {
	client redis.Cmdable
}

func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

// Revoke writes a placeholder under the token's key that expires after ttl
func (s *RedisStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, KeyPrefix+token, 0, ttl).Err()
}

// IsRevoked reports whether the token's key exists
func (s *RedisStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, KeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
