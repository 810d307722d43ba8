package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"mingle/internal/model"
	"mingle/internal/repository"
)

// CommentService owns the comment lifecycle, scoped to an existing post.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// ListByPost returns comments for a post in conversational order (oldest
// first). An absent post yields an empty list, mirroring public read access.
func (s *CommentService) ListByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}

// Create adds a comment to an existing post. The existence pre-check gives
// the common-case error; the repository's foreign-key translation covers a
// post deleted between the check and the insert.
func (s *CommentService) Create(ctx context.Context, postID, userID int64, req model.CommentRequest) (*model.Comment, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, model.ErrContentRequired
	}

	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("check post exists: %w", err)
	}
	if !exists {
		return nil, model.ErrPostNotFound
	}

	comment, err := s.commentRepo.Create(ctx, postID, userID, req.Content)
	if err != nil {
		return nil, err
	}

	log.Printf("[CommentService] User %d commented on post %d", userID, postID)
	return comment, nil
}

// Update replaces a comment's content. Only the owner may update.
func (s *CommentService) Update(ctx context.Context, commentID, userID int64, req model.CommentRequest) (*model.Comment, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, model.ErrContentRequired
	}

	ownerID, err := s.commentRepo.GetOwnerID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if ownerID != userID {
		return nil, model.ErrNotCommentOwner
	}

	if err := s.commentRepo.UpdateContent(ctx, commentID, req.Content); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, commentID)
}

// Delete hard-deletes a comment. Only the owner may delete.
func (s *CommentService) Delete(ctx context.Context, commentID, userID int64) error {
	ownerID, err := s.commentRepo.GetOwnerID(ctx, commentID)
	if err != nil {
		return err
	}
	if ownerID != userID {
		return model.ErrNotCommentOwner
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return err
	}

	log.Printf("[CommentService] User %d deleted comment %d", userID, commentID)
	return nil
}
