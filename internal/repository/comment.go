package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mingle/internal/model"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

const commentColumns = `
	c.id, c.post_id, c.user_id, c.content, c.created_at, c.updated_at,
	u.username, u.full_name, u.profile_picture`

// Create inserts a new comment and returns it joined with the commenter's
// profile fields. A foreign-key violation on post_id means the post was
// deleted concurrently; the caller sees the same not-found outcome as the
// pre-check, and the cascade guarantees no orphan row is ever left behind.
func (r *commentRepository) Create(ctx context.Context, postID, userID int64, content string) (*model.Comment, error) {
	query := `
		INSERT INTO comments (post_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var commentID int64
	err := r.db.GetContext(ctx, &commentID, query, postID, userID, content)
	if err != nil {
		if isForeignKeyViolation(err, "comments_post_id_fkey") {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return r.GetByID(ctx, commentID)
}

// GetByID retrieves a single comment joined with commenter fields.
func (r *commentRepository) GetByID(ctx context.Context, commentID int64) (*model.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments c
		INNER JOIN users u ON c.user_id = u.id
		WHERE c.id = $1
	`
	var comment model.Comment
	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err == sql.ErrNoRows {
		return nil, model.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &comment, nil
}

// GetOwnerID returns the author of a comment (for ownership checks).
func (r *commentRepository) GetOwnerID(ctx context.Context, commentID int64) (int64, error) {
	var ownerID int64
	err := r.db.GetContext(ctx, &ownerID, `SELECT user_id FROM comments WHERE id = $1`, commentID)
	if err == sql.ErrNoRows {
		return 0, model.ErrCommentNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("get comment owner: %w", err)
	}
	return ownerID, nil
}

// ListByPost returns comments for a post oldest-first. There is no existence
// check on the post; an absent post simply yields an empty slice.
func (r *commentRepository) ListByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments c
		INNER JOIN users u ON c.user_id = u.id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC
	`
	comments := []model.Comment{}
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// UpdateContent replaces the comment's content and bumps the update timestamp.
func (r *commentRepository) UpdateContent(ctx context.Context, commentID int64, content string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE comments SET content = $1, updated_at = NOW() WHERE id = $2`, content, commentID)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrCommentNotFound
	}
	return nil
}

// Delete hard-deletes the comment row.
func (r *commentRepository) Delete(ctx context.Context, commentID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, commentID)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrCommentNotFound
	}
	return nil
}
