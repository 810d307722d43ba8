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

type UserHandler struct {
	userService  *service.UserService
	mediaService *service.MediaService
}

func NewUserHandler(userService *service.UserService, mediaService *service.MediaService) *UserHandler {
	return &UserHandler{
		userService:  userService,
		mediaService: mediaService,
	}
}

// GetMe handles GET /api/users/me
// Returns the caller's full record, private fields included.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	user, err := h.userService.GetSelf(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		log.Printf("[ERROR] Get me handler: user=%d err=%v", userID, err)
		httputil.WriteInternalError(w, "Server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, user)
}

// GetProfile handles GET /api/users/{id}
// Returns public profile fields plus live aggregate counts.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		log.Printf("[ERROR] Get profile handler: user=%d err=%v", userID, err)
		httputil.WriteInternalError(w, "Server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, profile)
}

// UpdateMe handles PUT /api/users/me
// Overwrites full_name and bio unconditionally.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		log.Printf("[ERROR] Update profile handler: user=%d err=%v", userID, err)
		httputil.WriteInternalError(w, "Server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, user)
}

// UpdateProfilePicture handles PUT /api/users/profile-picture
// Uploads the image, then records the final URL on the user row.
func (h *UserHandler) UpdateProfilePicture(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	if err := r.ParseMultipartForm(model.MaxImageSizeBytes); err != nil {
		httputil.WriteBadRequest(w, "Please upload an image")
		return
	}

	file, header, err := r.FormFile("profile_picture")
	if err != nil {
		httputil.WriteBadRequest(w, "Please upload an image")
		return
	}
	defer file.Close()

	result, err := h.mediaService.UploadAvatar(r.Context(), file, header)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrFileTooLarge):
			httputil.WriteBadRequest(w, "Image exceeds 10MB limit")
		case errors.Is(err, model.ErrInvalidImageType):
			httputil.WriteBadRequest(w, "Unsupported image type. Allowed: jpeg, png, gif, webp")
		default:
			log.Printf("[ERROR] Upload avatar handler: user=%d err=%v", userID, err)
			httputil.WriteInternalError(w, "Server error")
		}
		return
	}

	user, err := h.userService.UpdateAvatar(r.Context(), userID, result.URL)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		log.Printf("[ERROR] Update avatar handler: user=%d err=%v", userID, err)
		httputil.WriteInternalError(w, "Server error")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, user)
}
