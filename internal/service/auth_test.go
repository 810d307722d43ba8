package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"mingle/internal/config"
	"mingle/internal/model"
)

// mockTokenStore is an in-memory TokenStore with single-use consume
// semantics, matching the Redis GETDEL behavior it stands in for.
type mockTokenStore struct {
	tokens map[string]int64
}

func newMockTokenStore() *mockTokenStore {
	return &mockTokenStore{tokens: make(map[string]int64)}
}

func (m *mockTokenStore) Save(ctx context.Context, tokenHash string, userID int64, ttl time.Duration) error {
	m.tokens[tokenHash] = userID
	return nil
}

func (m *mockTokenStore) Consume(ctx context.Context, tokenHash string) (int64, error) {
	userID, ok := m.tokens[tokenHash]
	if !ok {
		return 0, model.ErrRefreshTokenNotFound
	}
	delete(m.tokens, tokenHash)
	return userID, nil
}

func authTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		AccessTokenMaxAge:  900,
		RefreshTokenMaxAge: 3600,
	}
}

func TestAuthService_GenerateTokenPair(t *testing.T) {
	store := newMockTokenStore()
	svc := NewAuthService(store, authTestConfig())

	pair, err := svc.GenerateTokenPair(context.Background(), 42)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if pair.RefreshToken == "" {
		t.Fatal("refresh token is empty")
	}
	if pair.ExpiresIn != 900 {
		t.Errorf("expires_in = %d, want 900", pair.ExpiresIn)
	}

	// The access token must carry the user ID and verify with the secret.
	token, err := jwt.Parse(pair.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("access token did not verify: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if int64(claims["user_id"].(float64)) != 42 {
		t.Errorf("user_id claim = %v, want 42", claims["user_id"])
	}

	// Only a hash of the refresh token is stored, never the raw value.
	if _, ok := store.tokens[pair.RefreshToken]; ok {
		t.Error("raw refresh token must not be a store key")
	}
	if len(store.tokens) != 1 {
		t.Errorf("stored tokens = %d, want 1", len(store.tokens))
	}
}

func TestAuthService_RefreshTokens_Rotation(t *testing.T) {
	store := newMockTokenStore()
	svc := NewAuthService(store, authTestConfig())

	pair, err := svc.GenerateTokenPair(context.Background(), 42)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	rotated, userID, err := svc.RefreshTokens(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if userID != 42 {
		t.Errorf("user ID = %d, want 42", userID)
	}
	if rotated.RefreshToken == pair.RefreshToken {
		t.Error("refresh must rotate to a new refresh token")
	}

	// The old token was consumed; replaying it fails.
	_, _, err = svc.RefreshTokens(context.Background(), pair.RefreshToken)
	if !errors.Is(err, model.ErrRefreshTokenNotFound) {
		t.Errorf("replayed refresh error = %v, want ErrRefreshTokenNotFound", err)
	}
}

func TestAuthService_RevokeRefreshToken(t *testing.T) {
	store := newMockTokenStore()
	svc := NewAuthService(store, authTestConfig())

	pair, err := svc.GenerateTokenPair(context.Background(), 42)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if err := svc.RevokeRefreshToken(context.Background(), pair.RefreshToken); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if len(store.tokens) != 0 {
		t.Errorf("stored tokens after revoke = %d, want 0", len(store.tokens))
	}

	_, _, err = svc.RefreshTokens(context.Background(), pair.RefreshToken)
	if !errors.Is(err, model.ErrRefreshTokenNotFound) {
		t.Errorf("refresh after revoke error = %v, want ErrRefreshTokenNotFound", err)
	}
}
