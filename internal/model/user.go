package model

import (
	"errors"
	"time"
)

// User represents a user account. Password is the bcrypt hash and is never
// serialized.
type User struct {
	ID             int64     `db:"id" json:"id"`
	Username       string    `db:"username" json:"username"`
	Email          string    `db:"email" json:"email"`
	Password       string    `db:"password" json:"-"`
	FullName       *string   `db:"full_name" json:"full_name"`
	Bio            *string   `db:"bio" json:"bio"`
	ProfilePicture *string   `db:"profile_picture" json:"profile_picture"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"-"`
}

// Profile is the public view of a user enriched with live aggregate counts.
// The counts are computed from the posts/follows relations at read time,
// never stored.
type Profile struct {
	ID             int64     `db:"id" json:"id"`
	Username       string    `db:"username" json:"username"`
	FullName       *string   `db:"full_name" json:"full_name"`
	Bio            *string   `db:"bio" json:"bio"`
	ProfilePicture *string   `db:"profile_picture" json:"profile_picture"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	PostsCount     int       `db:"posts_count" json:"posts_count"`
	FollowersCount int       `db:"followers_count" json:"followers_count"`
	FollowingCount int       `db:"following_count" json:"following_count"`
}

// UserSummary is the profile projection joined onto likers and follow
// listings.
type UserSummary struct {
	ID             int64   `db:"id" json:"id"`
	Username       string  `db:"username" json:"username"`
	FullName       *string `db:"full_name" json:"full_name"`
	ProfilePicture *string `db:"profile_picture" json:"profile_picture"`
}

// RegisterRequest represents the data needed to register a new user
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// LoginRequest represents the data needed to log in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest overwrites full_name and bio unconditionally. Omitted
// fields are written as null; there is no partial-update merge.
type UpdateProfileRequest struct {
	FullName *string `json:"full_name"`
	Bio      *string `json:"bio"`
}

var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameExists is returned when attempting to create a user with a taken username
	ErrUsernameExists = errors.New("username already exists")

	// ErrEmailExists is returned when attempting to create a user with a taken email
	ErrEmailExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login credentials are incorrect
	ErrInvalidCredentials = errors.New("invalid credentials")
)
