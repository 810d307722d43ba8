package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"mingle/internal/config"
	"mingle/internal/model"
	"mingle/internal/repository"
)

// AuthService issues short-lived access tokens and opaque, single-use
// refresh tokens. Refresh tokens are stored hashed with a TTL; redeeming
// one consumes it, so every refresh rotates the pair.
type AuthService struct {
	tokens repository.TokenStore
	config *config.Config
}

func NewAuthService(tokens repository.TokenStore, cfg *config.Config) *AuthService {
	return &AuthService{
		tokens: tokens,
		config: cfg,
	}
}

// GenerateTokenPair issues a new access token and persists a refresh token.
func (s *AuthService) GenerateTokenPair(ctx context.Context, userID int64) (*model.TokenPair, error) {
	accessToken, err := s.generateAccessToken(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshTokenRaw := uuid.New().String()
	ttl := time.Duration(s.config.RefreshTokenMaxAge) * time.Second

	if err := s.tokens.Save(ctx, hashToken(refreshTokenRaw), userID, ttl); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &model.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenRaw,
		ExpiresIn:    s.config.AccessTokenMaxAge,
	}, nil
}

// RefreshTokens redeems a refresh token and rotates a new pair. The old
// token is consumed atomically; a second redemption of the same token fails.
func (s *AuthService) RefreshTokens(ctx context.Context, refreshTokenRaw string) (*model.TokenPair, int64, error) {
	userID, err := s.tokens.Consume(ctx, hashToken(refreshTokenRaw))
	if err != nil {
		return nil, 0, err
	}

	pair, err := s.GenerateTokenPair(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return pair, userID, nil
}

// RevokeRefreshToken invalidates a refresh token on logout.
func (s *AuthService) RevokeRefreshToken(ctx context.Context, refreshTokenRaw string) error {
	_, err := s.tokens.Consume(ctx, hashToken(refreshTokenRaw))
	return err
}

func (s *AuthService) generateAccessToken(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(time.Duration(s.config.AccessTokenMaxAge) * time.Second).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// hashToken returns the hex SHA-256 of a raw refresh token. Only the hash
// ever reaches the store.
func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
