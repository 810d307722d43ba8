package service

import (
	"context"
	"fmt"
	"log"

	"mingle/internal/model"
	"mingle/internal/repository"
)

// LikeService owns the like relation between users and posts. The relation
// is uniquely keyed by (user, post); the count returned after a mutation is
// always computed live from the relation set.
type LikeService struct {
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
}

func NewLikeService(likeRepo repository.LikeRepository, postRepo repository.PostRepository) *LikeService {
	return &LikeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
	}
}

// Like inserts the (user, post) pair and returns the updated like count.
// A duplicate pair is a conflict whether it is caught by the pre-check or
// by the storage constraint under a concurrent race.
func (s *LikeService) Like(ctx context.Context, postID, userID int64) (int, error) {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return 0, fmt.Errorf("check post exists: %w", err)
	}
	if !exists {
		return 0, model.ErrPostNotFound
	}

	if err := s.likeRepo.Create(ctx, userID, postID); err != nil {
		return 0, err
	}

	log.Printf("[LikeService] User %d liked post %d", userID, postID)
	return s.likeRepo.CountByPost(ctx, postID)
}

// Unlike removes the (user, post) pair and returns the updated like count.
// Unliking a post that is not liked fails; the transition is invalid, not
// idempotent.
func (s *LikeService) Unlike(ctx context.Context, postID, userID int64) (int, error) {
	if err := s.likeRepo.Delete(ctx, userID, postID); err != nil {
		return 0, err
	}

	log.Printf("[LikeService] User %d unliked post %d", userID, postID)
	return s.likeRepo.CountByPost(ctx, postID)
}

// ListLikers returns the users who liked a post, most recent like first.
func (s *LikeService) ListLikers(ctx context.Context, postID int64) ([]model.Liker, error) {
	return s.likeRepo.ListLikers(ctx, postID)
}
