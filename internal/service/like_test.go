package service

import (
	"context"
	"errors"
	"testing"

	"mingle/internal/model"
)

// mockLikeRepository keeps an in-memory like set so conflict and count
// behavior can be exercised exactly as the unique constraint enforces it.
type mockLikeRepository struct {
	likes   map[[2]int64]bool
	listers func(ctx context.Context, postID int64) ([]model.Liker, error)
}

func newMockLikeRepository() *mockLikeRepository {
	return &mockLikeRepository{likes: make(map[[2]int64]bool)}
}

func (m *mockLikeRepository) Create(ctx context.Context, userID, postID int64) error {
	key := [2]int64{userID, postID}
	if m.likes[key] {
		return model.ErrAlreadyLiked
	}
	m.likes[key] = true
	return nil
}

func (m *mockLikeRepository) Delete(ctx context.Context, userID, postID int64) error {
	key := [2]int64{userID, postID}
	if !m.likes[key] {
		return model.ErrNotLiked
	}
	delete(m.likes, key)
	return nil
}

func (m *mockLikeRepository) CountByPost(ctx context.Context, postID int64) (int, error) {
	count := 0
	for key := range m.likes {
		if key[1] == postID {
			count++
		}
	}
	return count, nil
}

func (m *mockLikeRepository) ListLikers(ctx context.Context, postID int64) ([]model.Liker, error) {
	if m.listers != nil {
		return m.listers(ctx, postID)
	}
	return []model.Liker{}, nil
}

func existingPostRepo() *mockPostRepository {
	return &mockPostRepository{
		existsFn: func(ctx context.Context, postID int64) (bool, error) {
			return true, nil
		},
	}
}

func TestLikeService_Like_ReturnsLiveCount(t *testing.T) {
	likes := newMockLikeRepository()
	svc := NewLikeService(likes, existingPostRepo())

	count, err := svc.Like(context.Background(), 10, 1)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if count != 1 {
		t.Errorf("count after first like = %d, want 1", count)
	}

	count, err = svc.Like(context.Background(), 10, 2)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if count != 2 {
		t.Errorf("count after second liker = %d, want 2", count)
	}
}

func TestLikeService_Like_Duplicate(t *testing.T) {
	likes := newMockLikeRepository()
	svc := NewLikeService(likes, existingPostRepo())

	if _, err := svc.Like(context.Background(), 10, 1); err != nil {
		t.Fatalf("first like failed: %v", err)
	}
	_, err := svc.Like(context.Background(), 10, 1)
	if !errors.Is(err, model.ErrAlreadyLiked) {
		t.Errorf("duplicate like error = %v, want ErrAlreadyLiked", err)
	}
	if n, _ := likes.CountByPost(context.Background(), 10); n != 1 {
		t.Errorf("like count after rejected duplicate = %d, want 1", n)
	}
}

func TestLikeService_Like_PostNotFound(t *testing.T) {
	svc := NewLikeService(newMockLikeRepository(), &mockPostRepository{
		existsFn: func(ctx context.Context, postID int64) (bool, error) {
			return false, nil
		},
	})

	_, err := svc.Like(context.Background(), 99, 1)
	if !errors.Is(err, model.ErrPostNotFound) {
		t.Errorf("like on missing post error = %v, want ErrPostNotFound", err)
	}
}

func TestLikeService_Unlike_RoundTrip(t *testing.T) {
	likes := newMockLikeRepository()
	svc := NewLikeService(likes, existingPostRepo())

	if _, err := svc.Like(context.Background(), 10, 1); err != nil {
		t.Fatalf("like failed: %v", err)
	}
	count, err := svc.Unlike(context.Background(), 10, 1)
	if err != nil {
		t.Fatalf("unlike failed: %v", err)
	}
	if count != 0 {
		t.Errorf("count after unlike = %d, want 0", count)
	}

	// A second unlike is an invalid transition, not a no-op.
	_, err = svc.Unlike(context.Background(), 10, 1)
	if !errors.Is(err, model.ErrNotLiked) {
		t.Errorf("second unlike error = %v, want ErrNotLiked", err)
	}
}

func TestLikeService_Unlike_NeverLiked(t *testing.T) {
	svc := NewLikeService(newMockLikeRepository(), existingPostRepo())

	_, err := svc.Unlike(context.Background(), 10, 1)
	if !errors.Is(err, model.ErrNotLiked) {
		t.Errorf("unlike without prior like error = %v, want ErrNotLiked", err)
	}
}
