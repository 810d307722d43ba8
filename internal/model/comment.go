package model

import (
	"errors"
	"time"
)

// Comment represents a comment on a post, joined with the commenter's
// profile fields.
type Comment struct {
	ID        int64     `db:"id" json:"id"`
	PostID    int64     `db:"post_id" json:"post_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	Username       string  `db:"username" json:"username"`
	FullName       *string `db:"full_name" json:"full_name"`
	ProfilePicture *string `db:"profile_picture" json:"profile_picture"`
}

// CommentRequest is the request body for creating or updating a comment.
type CommentRequest struct {
	Content string `json:"content"`
}

// Comment errors
var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("not the owner of this comment")
	ErrContentRequired = errors.New("comment content is required")
)
