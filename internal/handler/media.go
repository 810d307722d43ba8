package handler

import (
	"errors"
	"log"
	"net/http"

	"mingle/internal/httputil"
	"mingle/internal/model"
	"mingle/internal/service"
	"mingle/internal/transport/http/middleware"
)

type MediaHandler struct {
	mediaService *service.MediaService
}

func NewMediaHandler(mediaService *service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// UploadPostImage handles POST /api/media/posts
// Stores the image and returns the public URL the post-create call should
// reference. The content layer itself never sees file bytes.
func (h *MediaHandler) UploadPostImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	if err := r.ParseMultipartForm(model.MaxImageSizeBytes); err != nil {
		httputil.WriteBadRequest(w, "Please upload an image")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		httputil.WriteBadRequest(w, "Please upload an image")
		return
	}
	defer file.Close()

	result, err := h.mediaService.UploadPostImage(r.Context(), file, header)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrFileTooLarge):
			httputil.WriteBadRequest(w, "Image exceeds 10MB limit")
		case errors.Is(err, model.ErrInvalidImageType):
			httputil.WriteBadRequest(w, "Unsupported image type. Allowed: jpeg, png, gif, webp")
		default:
			log.Printf("[ERROR] Upload post image handler: user=%d err=%v", userID, err)
			httputil.WriteInternalError(w, "Server error")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, result)
}
