package repository

import (
	"context"
	"time"

	"mingle/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// GetProfile returns the public profile with live posts/followers/following
	// counts, computed in a single snapshot read.
	GetProfile(ctx context.Context, id int64) (*model.Profile, error)
	UpdateProfile(ctx context.Context, id int64, fullName, bio *string) (*model.User, error)
	UpdateAvatar(ctx context.Context, id int64, pictureURL string) (*model.User, error)
}

type PostRepository interface {
	// Create inserts a post and returns its ID. The joined row is fetched
	// separately via GetByID.
	Create(ctx context.Context, userID int64, content string, imageURL *string) (int64, error)
	GetByID(ctx context.Context, postID int64) (*model.Post, error)
	// List returns posts ordered by creation time descending, offset-paginated.
	List(ctx context.Context, limit, offset int) ([]model.Post, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Post, error)
	GetOwnerID(ctx context.Context, postID int64) (int64, error)
	UpdateContent(ctx context.Context, postID int64, content string) error
	// Delete removes the post; dependent comments and likes are removed by
	// the store's cascade, not by application logic.
	Delete(ctx context.Context, postID int64) error
	Exists(ctx context.Context, postID int64) (bool, error)
}

type CommentRepository interface {
	Create(ctx context.Context, postID, userID int64, content string) (*model.Comment, error)
	GetByID(ctx context.Context, commentID int64) (*model.Comment, error)
	GetOwnerID(ctx context.Context, commentID int64) (int64, error)
	// ListByPost returns comments oldest-first (conversational order). An
	// absent post yields an empty slice, not an error.
	ListByPost(ctx context.Context, postID int64) ([]model.Comment, error)
	UpdateContent(ctx context.Context, commentID int64, content string) error
	Delete(ctx context.Context, commentID int64) error
}

type LikeRepository interface {
	Create(ctx context.Context, userID, postID int64) error
	Delete(ctx context.Context, userID, postID int64) error
	CountByPost(ctx context.Context, postID int64) (int, error)
	ListLikers(ctx context.Context, postID int64) ([]model.Liker, error)
}

type FollowRepository interface {
	Create(ctx context.Context, followerID, followingID int64) error
	Delete(ctx context.Context, followerID, followingID int64) error
	GetFollowers(ctx context.Context, userID int64) ([]model.UserSummary, error)
	GetFollowing(ctx context.Context, userID int64) ([]model.UserSummary, error)
}

// TokenStore persists refresh tokens keyed by their SHA-256 hash. Expiry is
// handled by the store's TTL; a missing hash means expired or never issued.
type TokenStore interface {
	Save(ctx context.Context, tokenHash string, userID int64, ttl time.Duration) error
	// Consume atomically fetches and deletes the token, so a refresh token
	// can be redeemed at most once.
	Consume(ctx context.Context, tokenHash string) (int64, error)
}
