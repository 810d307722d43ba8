package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mingle/internal/httputil"
	"mingle/internal/model"
	"mingle/internal/service"
	"mingle/internal/transport/http/middleware"
)

type FollowHandler struct {
	followService *service.FollowService
}

func NewFollowHandler(followService *service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// Follow handles POST /api/users/{id}/follow
func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	followerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	followingID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	if err := h.followService.Follow(r.Context(), followerID, followingID); err != nil {
		switch {
		case errors.Is(err, model.ErrCannotFollowSelf):
			httputil.WriteBadRequest(w, "You cannot follow yourself")
		case errors.Is(err, model.ErrAlreadyFollowing):
			httputil.WriteBadRequest(w, "Already following this user")
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		default:
			log.Printf("[ERROR] Follow handler: follower=%d following=%d err=%v", followerID, followingID, err)
			httputil.WriteInternalError(w, "Server error")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Successfully followed user",
	})
}

// Unfollow handles DELETE /api/users/{id}/unfollow
// Removing an absent edge is a 400, matching unlike semantics.
func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	followerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	followingID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	if err := h.followService.Unfollow(r.Context(), followerID, followingID); err != nil {
		if errors.Is(err, model.ErrNotFollowing) {
			httputil.WriteBadRequest(w, "You are not following this user")
			return
		}
		log.Printf("[ERROR] Unfollow handler: follower=%d following=%d err=%v", followerID, followingID, err)
		httputil.WriteInternalError(w, "Server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Successfully unfollowed user",
	})
}

// GetFollowers handles GET /api/users/{id}/followers
func (h *FollowHandler) GetFollowers(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	users, err := h.followService.GetFollowers(r.Context(), userID)
	if err != nil {
		log.Printf("[ERROR] Get followers handler: user=%d err=%v", userID, err)
		httputil.WriteInternalError(w, "Server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, users)
}

// GetFollowing handles GET /api/users/{id}/following
func (h *FollowHandler) GetFollowing(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	users, err := h.followService.GetFollowing(r.Context(), userID)
	if err != nil {
		log.Printf("[ERROR] Get following handler: user=%d err=%v", userID, err)
		httputil.WriteInternalError(w, "Server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, users)
}
