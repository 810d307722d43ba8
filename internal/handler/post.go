package handler

import (
	"encoding/json"
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

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Feed handles GET /api/posts/feed
// Returns the global feed, newest first, offset-paginated.
func (h *PostHandler) Feed(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	posts, err := h.postService.ListFeed(r.Context(), page, limit)
	if err != nil {
		log.Printf("[ERROR] Feed handler: %v", err)
		httputil.WriteInternalError(w, "Server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, posts)
}

// GetByID handles GET /api/posts/{id}
func (h *PostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	post, err := h.postService.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			httputil.WriteNotFound(w, "Post not found")
			return
		}
		log.Printf("[ERROR] Get post handler: post=%d err=%v", postID, err)
		httputil.WriteInternalError(w, "Server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, post)
}

// Create handles POST /api/posts
// Creates a new post for the authenticated user.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	post, err := h.postService.Create(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, model.ErrEmptyPost) {
			httputil.WriteBadRequest(w, "Post must have content or an image")
			return
		}
		log.Printf("[ERROR] Create post handler: user=%d err=%v", userID, err)
		httputil.WriteInternalError(w, "Server error")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, post)
}

// Update handles PUT /api/posts/{id}
// Only the owner may update a post's content.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req model.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	post, err := h.postService.Update(r.Context(), postID, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w, "Post not found")
		case errors.Is(err, model.ErrNotPostOwner):
			httputil.WriteForbidden(w, "Not authorized to edit this post")
		default:
			log.Printf("[ERROR] Update post handler: user=%d post=%d err=%v", userID, postID, err)
			httputil.WriteInternalError(w, "Server error")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, post)
}

// Delete handles DELETE /api/posts/{id}
// Deletes a post along with its comments and likes (store cascade).
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.postService.Delete(r.Context(), postID, userID); err != nil {
		switch {
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w, "Post not found")
		case errors.Is(err, model.ErrNotPostOwner):
			httputil.WriteForbidden(w, "Not authorized to delete this post")
		default:
			log.Printf("[ERROR] Delete post handler: user=%d post=%d err=%v", userID, postID, err)
			httputil.WriteInternalError(w, "Server error")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Post deleted successfully",
	})
}

// GetUserPosts handles GET /api/users/{id}/posts
func (h *PostHandler) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	posts, err := h.postService.ListByUser(r.Context(), userID)
	if err != nil {
		log.Printf("[ERROR] Get user posts handler: user=%d err=%v", userID, err)
		httputil.WriteInternalError(w, "Server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, posts)
}
