package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"mingle/internal/httputil"
	"mingle/internal/model"
	"mingle/internal/service"
)

type AuthHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

func NewAuthHandler(userService *service.UserService, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		authService: authService,
	}
}

type authResponse struct {
	User  *model.User      `json:"user"`
	Token *model.TokenPair `json:"token"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUsernameExists):
			httputil.WriteConflict(w, "Username already exists")
		case errors.Is(err, model.ErrEmailExists):
			httputil.WriteConflict(w, "Email already exists")
		default:
			httputil.WriteBadRequest(w, err.Error())
		}
		return
	}

	pair, err := h.authService.GenerateTokenPair(r.Context(), user.ID)
	if err != nil {
		log.Printf("[ERROR] Register handler: user=%d err=%v", user.ID, err)
		httputil.WriteInternalError(w, "Server error")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, authResponse{User: user, Token: pair})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			httputil.WriteUnauthorized(w, "Invalid credentials")
			return
		}
		log.Printf("[ERROR] Login handler: err=%v", err)
		httputil.WriteInternalError(w, "Server error")
		return
	}

	pair, err := h.authService.GenerateTokenPair(r.Context(), user.ID)
	if err != nil {
		log.Printf("[ERROR] Login handler: user=%d err=%v", user.ID, err)
		httputil.WriteInternalError(w, "Server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, authResponse{User: user, Token: pair})
}

// Refresh handles POST /auth/refresh
// Redeems a refresh token for a rotated pair; the old token is consumed.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		httputil.WriteBadRequest(w, "refresh_token is required")
		return
	}

	pair, _, err := h.authService.RefreshTokens(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, model.ErrRefreshTokenNotFound) {
			httputil.WriteUnauthorized(w, "Invalid or expired refresh token")
			return
		}
		log.Printf("[ERROR] Refresh handler: err=%v", err)
		httputil.WriteInternalError(w, "Server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, pair)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		httputil.WriteBadRequest(w, "refresh_token is required")
		return
	}

	if err := h.authService.RevokeRefreshToken(r.Context(), req.RefreshToken); err != nil {
		if errors.Is(err, model.ErrRefreshTokenNotFound) {
			httputil.WriteUnauthorized(w, "Invalid or expired refresh token")
			return
		}
		log.Printf("[ERROR] Logout handler: err=%v", err)
		httputil.WriteInternalError(w, "Server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Logged out successfully",
	})
}
