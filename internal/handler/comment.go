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

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// ListByPost handles GET /api/comments/post/{postId}
// Public; an absent post yields an empty list.
func (h *CommentHandler) ListByPost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postId"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	comments, err := h.commentService.ListByPost(r.Context(), postID)
	if err != nil {
		log.Printf("[ERROR] List comments handler: post=%d err=%v", postID, err)
		httputil.WriteInternalError(w, "Server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, comments)
}

// Create handles POST /api/comments/post/{postId}
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "postId"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	var req model.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	comment, err := h.commentService.Create(r.Context(), postID, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrContentRequired):
			httputil.WriteBadRequest(w, "Comment content is required")
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w, "Post not found")
		default:
			log.Printf("[ERROR] Create comment handler: user=%d post=%d err=%v", userID, postID, err)
			httputil.WriteInternalError(w, "Server error")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, comment)
}

// Update handles PUT /api/comments/{id}
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	commentID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid comment ID")
		return
	}

	var req model.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	comment, err := h.commentService.Update(r.Context(), commentID, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrContentRequired):
			httputil.WriteBadRequest(w, "Comment content is required")
		case errors.Is(err, model.ErrCommentNotFound):
			httputil.WriteNotFound(w, "Comment not found")
		case errors.Is(err, model.ErrNotCommentOwner):
			httputil.WriteForbidden(w, "Not authorized to edit this comment")
		default:
			log.Printf("[ERROR] Update comment handler: user=%d comment=%d err=%v", userID, commentID, err)
			httputil.WriteInternalError(w, "Server error")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, comment)
}

// Delete handles DELETE /api/comments/{id}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	commentID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid comment ID")
		return
	}

	if err := h.commentService.Delete(r.Context(), commentID, userID); err != nil {
		switch {
		case errors.Is(err, model.ErrCommentNotFound):
			httputil.WriteNotFound(w, "Comment not found")
		case errors.Is(err, model.ErrNotCommentOwner):
			httputil.WriteForbidden(w, "Not authorized to delete this comment")
		default:
			log.Printf("[ERROR] Delete comment handler: user=%d comment=%d err=%v", userID, commentID, err)
			httputil.WriteInternalError(w, "Server error")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Comment deleted successfully",
	})
}
