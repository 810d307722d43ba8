package model

import "errors"

// UploadResult is the outcome of a media upload: the public URL handed to
// the content layer, and the storage key for later cleanup.
type UploadResult struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// Media constraints
const (
	MaxImageSizeBytes = 10 * 1024 * 1024 // 10MB

	PostImageFolder = "posts"
	AvatarFolder    = "profiles"

	// Avatars are normalized to a square, matching the original 400x400
	// fill crop applied at upload time.
	AvatarWidth  = 400
	AvatarHeight = 400

	ContentTypeJPEG = "image/jpeg"
)

// IsAllowedImageType reports whether the content type is an accepted upload.
func IsAllowedImageType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return true
	}
	return false
}

// Media errors
var (
	ErrFileTooLarge     = errors.New("file exceeds the maximum allowed size")
	ErrInvalidImageType = errors.New("unsupported image type")
)
