package sessions

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepository implements Repository with sessions stored as JSON under
// "<prefix><token>". The key TTL mirrors expires_at, so Redis drops stale
// sessions on its own; the expiry check in the authenticator still applies.
type RedisRepository struct {
	client *redis.Client
	prefix string
}

func NewRedisRepository(client *redis.Client, prefix string) *RedisRepository {
	if prefix == "" {
		prefix = "session:"
	}
	return &RedisRepository{client: client, prefix: prefix}
}

func (r *RedisRepository) key(token string) string {
	return r.prefix + token
}

func (r *RedisRepository) Create(ctx context.Context, s *Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Second
	}
	return r.client.Set(ctx, r.key(s.SessionToken), b, ttl).Err()
}

func (r *RedisRepository) GetByToken(ctx context.Context, token string) (*Session, error) {
	b, err := r.client.Get(ctx, r.key(token)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *RedisRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.key(token)).Err()
}
