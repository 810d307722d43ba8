package model

import (
	"errors"
	"time"
)

// Post represents a user's post joined with its author's profile fields and
// live aggregate counts. The author fields and counts are a read-model
// projection computed per query; only the first six columns live in the
// posts table.
type Post struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Content   string    `db:"content" json:"content"`
	ImageURL  *string   `db:"image_url" json:"image_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	Username       string  `db:"username" json:"username"`
	FullName       *string `db:"full_name" json:"full_name"`
	ProfilePicture *string `db:"profile_picture" json:"profile_picture"`
	LikesCount     int     `db:"likes_count" json:"likes_count"`
	CommentsCount  int     `db:"comments_count" json:"comments_count"`
}

// CreatePostRequest is the request body for creating a post. Content may be
// empty only when an image URL is attached.
type CreatePostRequest struct {
	Content  string  `json:"content"`
	ImageURL *string `json:"image_url"`
}

// UpdatePostRequest is the request body for updating a post's content.
type UpdatePostRequest struct {
	Content string `json:"content"`
}

// Post errors
var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotPostOwner = errors.New("not the owner of this post")
	ErrEmptyPost    = errors.New("post must have content or an image")
)
