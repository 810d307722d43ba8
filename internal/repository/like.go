package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mingle/internal/model"
)

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create inserts a like record. The unique constraint on (user_id, post_id)
// is the authority: two concurrent likes from the same user race here, and
// the loser observes the same conflict as the application-level pre-check.
func (r *likeRepository) Create(ctx context.Context, userID, postID int64) error {
	query := `INSERT INTO likes (user_id, post_id) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		if isUniqueViolation(err, "likes_user_id_post_id_key") {
			return model.ErrAlreadyLiked
		}
		if isForeignKeyViolation(err, "likes_post_id_fkey") {
			return model.ErrPostNotFound
		}
		return fmt.Errorf("insert like: %w", err)
	}
	return nil
}

// Delete removes a like record. Returns ErrNotLiked if the pair does not
// exist; removal of an absent relation is a client error, not a no-op.
func (r *likeRepository) Delete(ctx context.Context, userID, postID int64) error {
	query := `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`
	result, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrNotLiked
	}
	return nil
}

// CountByPost returns the live like count for a post.
func (r *likeRepository) CountByPost(ctx context.Context, postID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM likes WHERE post_id = $1`, postID)
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return count, nil
}

// ListLikers returns the users who liked a post, most recent like first.
func (r *likeRepository) ListLikers(ctx context.Context, postID int64) ([]model.Liker, error) {
	query := `
		SELECT u.id, u.username, u.full_name, u.profile_picture, l.created_at
		FROM likes l
		INNER JOIN users u ON l.user_id = u.id
		WHERE l.post_id = $1
		ORDER BY l.created_at DESC
	`
	likers := []model.Liker{}
	err := r.db.SelectContext(ctx, &likers, query, postID)
	if err != nil {
		return nil, fmt.Errorf("list likers: %w", err)
	}
	return likers, nil
}
