package model

import "errors"

// TokenPair is returned on login/refresh. The refresh token is an opaque
// value stored hashed server-side; only its SHA-256 digest is persisted.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// Auth errors
var (
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
)
