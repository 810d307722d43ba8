package service

import (
	"context"
	"errors"
	"testing"

	"mingle/internal/model"
)

type mockFollowRepository struct {
	edges map[[2]int64]bool
}

func newMockFollowRepository() *mockFollowRepository {
	return &mockFollowRepository{edges: make(map[[2]int64]bool)}
}

func (m *mockFollowRepository) Create(ctx context.Context, followerID, followingID int64) error {
	key := [2]int64{followerID, followingID}
	if m.edges[key] {
		return model.ErrAlreadyFollowing
	}
	m.edges[key] = true
	return nil
}

func (m *mockFollowRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	key := [2]int64{followerID, followingID}
	if !m.edges[key] {
		return model.ErrNotFollowing
	}
	delete(m.edges, key)
	return nil
}

func (m *mockFollowRepository) GetFollowers(ctx context.Context, userID int64) ([]model.UserSummary, error) {
	return []model.UserSummary{}, nil
}

func (m *mockFollowRepository) GetFollowing(ctx context.Context, userID int64) ([]model.UserSummary, error) {
	return []model.UserSummary{}, nil
}

func TestFollowService_Follow_Self(t *testing.T) {
	follows := newMockFollowRepository()
	svc := NewFollowService(follows, &mockUserRepository{})

	err := svc.Follow(context.Background(), 1, 1)
	if !errors.Is(err, model.ErrCannotFollowSelf) {
		t.Errorf("self-follow error = %v, want ErrCannotFollowSelf", err)
	}
	if len(follows.edges) != 0 {
		t.Error("self-follow must not create an edge")
	}
}

func TestFollowService_Follow_TargetNotFound(t *testing.T) {
	svc := NewFollowService(newMockFollowRepository(), &mockUserRepository{
		existsByIDFn: func(ctx context.Context, id int64) (bool, error) {
			return false, nil
		},
	})

	err := svc.Follow(context.Background(), 1, 99)
	if !errors.Is(err, model.ErrUserNotFound) {
		t.Errorf("follow of missing user error = %v, want ErrUserNotFound", err)
	}
}

func TestFollowService_Follow_Duplicate(t *testing.T) {
	follows := newMockFollowRepository()
	svc := NewFollowService(follows, &mockUserRepository{
		existsByIDFn: func(ctx context.Context, id int64) (bool, error) {
			return true, nil
		},
	})

	if err := svc.Follow(context.Background(), 1, 2); err != nil {
		t.Fatalf("first follow failed: %v", err)
	}
	err := svc.Follow(context.Background(), 1, 2)
	if !errors.Is(err, model.ErrAlreadyFollowing) {
		t.Errorf("duplicate follow error = %v, want ErrAlreadyFollowing", err)
	}

	// The reverse edge is distinct and still allowed.
	if err := svc.Follow(context.Background(), 2, 1); err != nil {
		t.Errorf("reverse follow error = %v, want nil", err)
	}
}

func TestFollowService_Unfollow(t *testing.T) {
	follows := newMockFollowRepository()
	svc := NewFollowService(follows, &mockUserRepository{
		existsByIDFn: func(ctx context.Context, id int64) (bool, error) {
			return true, nil
		},
	})

	if err := svc.Follow(context.Background(), 1, 2); err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	if err := svc.Unfollow(context.Background(), 1, 2); err != nil {
		t.Fatalf("unfollow failed: %v", err)
	}

	err := svc.Unfollow(context.Background(), 1, 2)
	if !errors.Is(err, model.ErrNotFollowing) {
		t.Errorf("repeat unfollow error = %v, want ErrNotFollowing", err)
	}
}
