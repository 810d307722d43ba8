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

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// Like handles POST /api/posts/{id}/like
// A duplicate like is reported as 400, the API's conflict class.
func (h *LikeHandler) Like(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	count, err := h.likeService.Like(r.Context(), postID, userID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w, "Post not found")
		case errors.Is(err, model.ErrAlreadyLiked):
			httputil.WriteBadRequest(w, "Post already liked")
		default:
			log.Printf("[ERROR] Like handler: user=%d post=%d err=%v", userID, postID, err)
			httputil.WriteInternalError(w, "Server error")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.LikeResponse{
		Message:    "Post liked successfully",
		LikesCount: count,
	})
}

// Unlike handles DELETE /api/posts/{id}/unlike
// Unliking a post that is not liked is a 400, not a no-op.
func (h *LikeHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	count, err := h.likeService.Unlike(r.Context(), postID, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotLiked) {
			httputil.WriteBadRequest(w, "Post not liked yet")
			return
		}
		log.Printf("[ERROR] Unlike handler: user=%d post=%d err=%v", userID, postID, err)
		httputil.WriteInternalError(w, "Server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.LikeResponse{
		Message:    "Post unliked successfully",
		LikesCount: count,
	})
}

// ListLikers handles GET /api/posts/{id}/likes
func (h *LikeHandler) ListLikers(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	likers, err := h.likeService.ListLikers(r.Context(), postID)
	if err != nil {
		log.Printf("[ERROR] List likers handler: post=%d err=%v", postID, err)
		httputil.WriteInternalError(w, "Server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, likers)
}
