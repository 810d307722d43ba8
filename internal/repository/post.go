package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mingle/internal/model"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// postColumns is the joined projection returned for every post read: the
// row itself, the author's profile fields, and the live aggregate counts
// computed in the same statement (a single consistent snapshot).
const postColumns = `
	p.id, p.user_id, p.content, p.image_url, p.created_at, p.updated_at,
	u.username, u.full_name, u.profile_picture,
	(SELECT COUNT(*) FROM likes WHERE post_id = p.id) AS likes_count,
	(SELECT COUNT(*) FROM comments WHERE post_id = p.id) AS comments_count`

// Create inserts a new post and returns its ID.
func (r *postRepository) Create(ctx context.Context, userID int64, content string, imageURL *string) (int64, error) {
	query := `
		INSERT INTO posts (user_id, content, image_url)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var postID int64
	err := r.db.GetContext(ctx, &postID, query, userID, content, imageURL)
	if err != nil {
		if isForeignKeyViolation(err, "posts_user_id_fkey") {
			return 0, model.ErrUserNotFound
		}
		return 0, fmt.Errorf("insert post: %w", err)
	}
	return postID, nil
}

// GetByID retrieves a single post joined with author fields and live counts.
func (r *postRepository) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		INNER JOIN users u ON p.user_id = u.id
		WHERE p.id = $1
	`
	var post model.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err == sql.ErrNoRows {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &post, nil
}

// List returns the global feed page: most recent posts first.
func (r *postRepository) List(ctx context.Context, limit, offset int) ([]model.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		INNER JOIN users u ON p.user_id = u.id
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2
	`
	posts := []model.Post{}
	err := r.db.SelectContext(ctx, &posts, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// ListByUser returns all posts by a user, most recent first.
func (r *postRepository) ListByUser(ctx context.Context, userID int64) ([]model.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		INNER JOIN users u ON p.user_id = u.id
		WHERE p.user_id = $1
		ORDER BY p.created_at DESC
	`
	posts := []model.Post{}
	err := r.db.SelectContext(ctx, &posts, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list user posts: %w", err)
	}
	return posts, nil
}

// GetOwnerID returns the author of a post (for ownership checks).
func (r *postRepository) GetOwnerID(ctx context.Context, postID int64) (int64, error) {
	var ownerID int64
	err := r.db.GetContext(ctx, &ownerID, `SELECT user_id FROM posts WHERE id = $1`, postID)
	if err == sql.ErrNoRows {
		return 0, model.ErrPostNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("get post owner: %w", err)
	}
	return ownerID, nil
}

// UpdateContent replaces the post's content and bumps the update timestamp.
func (r *postRepository) UpdateContent(ctx context.Context, postID int64, content string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE posts SET content = $1, updated_at = NOW() WHERE id = $2`, content, postID)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

// Delete removes the post row. Dependent comments and likes are removed
// atomically by the store's ON DELETE CASCADE.
func (r *postRepository) Delete(ctx context.Context, postID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

// Exists checks if a post exists.
func (r *postRepository) Exists(ctx context.Context, postID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, postID)
	if err != nil {
		return false, fmt.Errorf("check post exists: %w", err)
	}
	return exists, nil
}
