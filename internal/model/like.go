package model

import (
	"errors"
	"time"
)

// Liker is a user who liked a post, with the like's creation time.
type Liker struct {
	ID             int64     `db:"id" json:"id"`
	Username       string    `db:"username" json:"username"`
	FullName       *string   `db:"full_name" json:"full_name"`
	ProfilePicture *string   `db:"profile_picture" json:"profile_picture"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// LikeResponse carries the live like count after a like/unlike mutation.
type LikeResponse struct {
	Message    string `json:"message"`
	LikesCount int    `json:"likes_count"`
}

// Like errors. Unliking a post that is not liked is a client error, not a
// no-op: the relation transition is invalid.
var (
	ErrAlreadyLiked = errors.New("post already liked")
	ErrNotLiked     = errors.New("post not liked yet")
)
