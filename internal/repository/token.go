package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"mingle/internal/model"
)

const refreshTokenPrefix = "refresh:"

// redisTokenStore implements TokenStore on Redis. Tokens live under
// refresh:<sha256> with the user ID as value; the key TTL is the token
// lifetime, so expired tokens vanish without a sweeper.
type redisTokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{client: client}
}

func tokenKey(tokenHash string) string {
	return refreshTokenPrefix + tokenHash
}

func (s *redisTokenStore) Save(ctx context.Context, tokenHash string, userID int64, ttl time.Duration) error {
	err := s.client.Set(ctx, tokenKey(tokenHash), userID, ttl).Err()
	if err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

// Consume redeems a refresh token exactly once. GETDEL makes rotation safe
// under concurrent refresh attempts with the same token: one caller wins,
// the rest observe a missing token.
func (s *redisTokenStore) Consume(ctx context.Context, tokenHash string) (int64, error) {
	val, err := s.client.GetDel(ctx, tokenKey(tokenHash)).Result()
	if err == redis.Nil {
		return 0, model.ErrRefreshTokenNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("consume refresh token: %w", err)
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse refresh token value: %w", err)
	}
	return userID, nil
}
