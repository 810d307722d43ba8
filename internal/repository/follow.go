package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mingle/internal/model"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create inserts a follow edge. The primary key on (follower_id,
// following_id) resolves concurrent duplicate follows; the loser sees the
// same conflict as the pre-check.
func (r *followRepository) Create(ctx context.Context, followerID, followingID int64) error {
	query := `INSERT INTO follows (follower_id, following_id) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		if isUniqueViolation(err, "follows_pkey") {
			return model.ErrAlreadyFollowing
		}
		if isForeignKeyViolation(err, "") {
			return model.ErrUserNotFound
		}
		return fmt.Errorf("insert follow: %w", err)
	}
	return nil
}

// Delete removes a follow edge. Returns ErrNotFollowing if the edge does
// not exist.
func (r *followRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`
	result, err := r.db.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrNotFollowing
	}
	return nil
}

// GetFollowers retrieves the users who follow the specified user, most
// recent edge first.
func (r *followRepository) GetFollowers(ctx context.Context, userID int64) ([]model.UserSummary, error) {
	query := `
		SELECT u.id, u.username, u.full_name, u.profile_picture
		FROM users u
		INNER JOIN follows f ON u.id = f.follower_id
		WHERE f.following_id = $1
		ORDER BY f.created_at DESC
	`
	users := []model.UserSummary{}
	err := r.db.SelectContext(ctx, &users, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get followers: %w", err)
	}
	return users, nil
}

// GetFollowing retrieves the users that the specified user follows, most
// recent edge first.
func (r *followRepository) GetFollowing(ctx context.Context, userID int64) ([]model.UserSummary, error) {
	query := `
		SELECT u.id, u.username, u.full_name, u.profile_picture
		FROM users u
		INNER JOIN follows f ON u.id = f.following_id
		WHERE f.follower_id = $1
		ORDER BY f.created_at DESC
	`
	users := []model.UserSummary{}
	err := r.db.SelectContext(ctx, &users, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get following: %w", err)
	}
	return users, nil
}
