package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists sessions as JSON values with a redis-side TTL,
// letting redis expire them without a janitor.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisStore(addr, password string, db int) *RedisStore {
	return &RedisStore{
		rdb:    redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
		prefix: "sess:",
	}
}

func (r *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	b, err := r.rdb.Get(ctx, r.prefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	if s.IsExpired() {
		_ = r.rdb.Del(ctx, r.prefix+token).Err()
		return nil, nil
	}
	return &s, nil
}

func (r *RedisStore) Set(ctx context.Context, token string, s *Session) error {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return r.Destroy(ctx, token)
	}
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, r.prefix+token, b, ttl).Err()
}

func (r *RedisStore) Destroy(ctx context.Context, token string) error {
	return r.rdb.Del(ctx, r.prefix+token).Err()
}

func (r *RedisStore) Close() error { return r.rdb.Close() }
