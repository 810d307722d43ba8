package model

import "errors"

// Follow is a directed edge in the follow graph, uniquely keyed by its
// endpoint pair. follower_id != following_id always holds.
type Follow struct {
	FollowerID  int64 `db:"follower_id" json:"follower_id"`
	FollowingID int64 `db:"following_id" json:"following_id"`
}

var (
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("you are not following this user")
	ErrCannotFollowSelf = errors.New("you cannot follow yourself")
)
