package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"mingle/internal/model"
	"mingle/internal/repository"
)

// Feed pagination defaults, applied when parameters are absent or
// non-positive.
const (
	DefaultFeedPage  = 1
	DefaultFeedLimit = 20
)

// PostService owns the post lifecycle and the ownership checks guarding
// mutations.
type PostService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// Create inserts a new post. A post must carry text content, an image, or
// both; the image URL arrives already finalized from the media layer.
func (s *PostService) Create(ctx context.Context, userID int64, req model.CreatePostRequest) (*model.Post, error) {
	hasImage := req.ImageURL != nil && *req.ImageURL != ""
	if strings.TrimSpace(req.Content) == "" && !hasImage {
		return nil, model.ErrEmptyPost
	}

	var imageURL *string
	if hasImage {
		imageURL = req.ImageURL
	}

	postID, err := s.postRepo.Create(ctx, userID, req.Content, imageURL)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	log.Printf("[PostService] User %d created post %d", userID, postID)

	// Re-read the joined row; a fresh post has zero-valued counts.
	return s.postRepo.GetByID(ctx, postID)
}

// GetByID retrieves a single post with author fields and live counts.
func (s *PostService) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	return s.postRepo.GetByID(ctx, postID)
}

// ListFeed returns the global feed, most recent first, offset-paginated.
// There is no visibility filtering; every post is in the feed.
func (s *PostService) ListFeed(ctx context.Context, page, limit int) ([]model.Post, error) {
	if page <= 0 {
		page = DefaultFeedPage
	}
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	offset := (page - 1) * limit

	return s.postRepo.List(ctx, limit, offset)
}

// ListByUser returns all posts by a user, most recent first.
func (s *PostService) ListByUser(ctx context.Context, userID int64) ([]model.Post, error) {
	return s.postRepo.ListByUser(ctx, userID)
}

// Update replaces a post's content. Only the owner may update.
func (s *PostService) Update(ctx context.Context, postID, userID int64, req model.UpdatePostRequest) (*model.Post, error) {
	ownerID, err := s.postRepo.GetOwnerID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if ownerID != userID {
		return nil, model.ErrNotPostOwner
	}

	if err := s.postRepo.UpdateContent(ctx, postID, req.Content); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, postID)
}

// Delete removes a post. Only the owner may delete; the store cascades the
// deletion to the post's comments and likes.
func (s *PostService) Delete(ctx context.Context, postID, userID int64) error {
	ownerID, err := s.postRepo.GetOwnerID(ctx, postID)
	if err != nil {
		return err
	}
	if ownerID != userID {
		return model.ErrNotPostOwner
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	log.Printf("[PostService] User %d deleted post %d", userID, postID)
	return nil
}
