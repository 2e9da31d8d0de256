package session

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisTokenStore persists the token under a single Redis key. Useful for
// server-side deployments of the client that hold a session on behalf of a
// browser user, where several processes share one credential.
type RedisTokenStore struct {
	client redis.Cmdable
	key    string
}

// NewRedisTokenStore creates a Redis-backed token store. The key should be
// unique per end user, e.g. "flashlingo:token:<user>".
func NewRedisTokenStore(client redis.Cmdable, key string) *RedisTokenStore {
	return &RedisTokenStore{client: client, key: key}
}

func (s *RedisTokenStore) Load(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", errors.Join(ErrTokenStorage, err)
	}
	return token, nil
}

func (s *RedisTokenStore) Save(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, 0).Err(); err != nil {
		return errors.Join(ErrTokenStorage, err)
	}
	return nil
}

func (s *RedisTokenStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return errors.Join(ErrTokenStorage, err)
	}
	return nil
}
