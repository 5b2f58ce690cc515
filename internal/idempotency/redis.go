package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix    = "idempotency:"
	pendingValue = "pending"
)

// Response is a stored reply to a request made with an Idempotency-Key.
type Response struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *redisStore {
	return &redisStore{client: client, ttl: ttl}
}

// Reserve marks key as in progress. It returns false if the key is already taken.
func (s *redisStore) Reserve(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, keyPrefix+key, pendingValue, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to reserve key: %w", err)
	}
	return ok, nil
}

// Load returns the stored response. done is false while the first request
// with this key is still running or the key is unknown.
func (s *redisStore) Load(ctx context.Context, key string) (resp Response, done bool, err error) {
	value, err := s.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return Response{}, false, nil
	}
	if err != nil {
		return Response{}, false, fmt.Errorf("failed to load key: %w", err)
	}
	if value == pendingValue {
		return Response{}, false, nil
	}

	if err := json.Unmarshal([]byte(value), &resp); err != nil {
		return Response{}, false, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp, true, nil
}

func (s *redisStore) Save(ctx context.Context, key string, resp Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	return s.client.Set(ctx, keyPrefix+key, data, s.ttl).Err()
}

// Release drops the key so the request can be retried.
func (s *redisStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, keyPrefix+key).Err()
}
