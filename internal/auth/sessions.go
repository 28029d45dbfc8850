// README: Redis-backed session store tracking live token IDs per account.
package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Castanheira1/leopardo-api/internal/types"
)

// SessionStore tracks which token IDs are still honoured for an account.
type SessionStore interface {
	Add(ctx context.Context, accountID types.ID, jti string, ttl time.Duration) error
	IsLive(ctx context.Context, accountID types.ID, jti string) (bool, error)
	RevokeAll(ctx context.Context, accountID types.ID) error
}

type RedisSessionStore struct {
	rdb *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

func sessionKey(accountID types.ID) string {
	return "sessions:" + string(accountID)
}

func (s *RedisSessionStore) Add(ctx context.Context, accountID types.ID, jti string, ttl time.Duration) error {
	key := sessionKey(accountID)
	if err := s.rdb.SAdd(ctx, key, jti).Err(); err != nil {
		return err
	}
	// Key expiry tracks the newest token; stale members fall out with the key.
	return s.rdb.Expire(ctx, key, ttl).Err()
}

func (s *RedisSessionStore) IsLive(ctx context.Context, accountID types.ID, jti string) (bool, error) {
	return s.rdb.SIsMember(ctx, sessionKey(accountID), jti).Result()
}

func (s *RedisSessionStore) RevokeAll(ctx context.Context, accountID types.ID) error {
	return s.rdb.Del(ctx, sessionKey(accountID)).Err()
}
