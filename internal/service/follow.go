package service

import (
	"context"
	"fmt"
	"log"

	"mingle/internal/model"
	"mingle/internal/repository"
)

// FollowService owns the follow graph. Edges are directed, uniquely keyed by
// (follower, following), and irreflexive.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow inserts a follow edge after checking the pair is distinct and the
// target exists. A duplicate edge is a conflict regardless of whether the
// pre-check or the storage constraint catches it.
func (s *FollowService) Follow(ctx context.Context, followerID, followingID int64) error {
	if followerID == followingID {
		return model.ErrCannotFollowSelf
	}

	exists, err := s.userRepo.ExistsByID(ctx, followingID)
	if err != nil {
		return fmt.Errorf("check user exists: %w", err)
	}
	if !exists {
		return model.ErrUserNotFound
	}

	if err := s.followRepo.Create(ctx, followerID, followingID); err != nil {
		return err
	}

	log.Printf("[FollowService] User %d followed user %d", followerID, followingID)
	return nil
}

// Unfollow removes a follow edge. Removing an absent edge fails; like
// unlike, it is an invalid transition rather than a no-op.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID int64) error {
	if err := s.followRepo.Delete(ctx, followerID, followingID); err != nil {
		return err
	}

	log.Printf("[FollowService] User %d unfollowed user %d", followerID, followingID)
	return nil
}

// GetFollowers returns the users following userID, most recent edge first.
func (s *FollowService) GetFollowers(ctx context.Context, userID int64) ([]model.UserSummary, error) {
	return s.followRepo.GetFollowers(ctx, userID)
}

// GetFollowing returns the users that userID follows, most recent edge first.
func (s *FollowService) GetFollowing(ctx context.Context, userID int64) ([]model.UserSummary, error) {
	return s.followRepo.GetFollowing(ctx, userID)
}
