package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"mingle/internal/model"
)

// mockPostRepository implements repository.PostRepository with per-test
// function fields, so each test controls exactly the behavior it needs.
type mockPostRepository struct {
	createFn        func(ctx context.Context, userID int64, content string, imageURL *string) (int64, error)
	getByIDFn       func(ctx context.Context, postID int64) (*model.Post, error)
	listFn          func(ctx context.Context, limit, offset int) ([]model.Post, error)
	listByUserFn    func(ctx context.Context, userID int64) ([]model.Post, error)
	getOwnerIDFn    func(ctx context.Context, postID int64) (int64, error)
	updateContentFn func(ctx context.Context, postID int64, content string) error
	deleteFn        func(ctx context.Context, postID int64) error
	existsFn        func(ctx context.Context, postID int64) (bool, error)

	deleteCalls []int64
}

func (m *mockPostRepository) Create(ctx context.Context, userID int64, content string, imageURL *string) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, content, imageURL)
	}
	return 1, nil
}

func (m *mockPostRepository) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, postID)
	}
	return &model.Post{ID: postID, CreatedAt: time.Now(), UpdatedAt: time.Now()}, nil
}

func (m *mockPostRepository) List(ctx context.Context, limit, offset int) ([]model.Post, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit, offset)
	}
	return []model.Post{}, nil
}

func (m *mockPostRepository) ListByUser(ctx context.Context, userID int64) ([]model.Post, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return []model.Post{}, nil
}

func (m *mockPostRepository) GetOwnerID(ctx context.Context, postID int64) (int64, error) {
	if m.getOwnerIDFn != nil {
		return m.getOwnerIDFn(ctx, postID)
	}
	return 0, model.ErrPostNotFound
}

func (m *mockPostRepository) UpdateContent(ctx context.Context, postID int64, content string) error {
	if m.updateContentFn != nil {
		return m.updateContentFn(ctx, postID, content)
	}
	return nil
}

func (m *mockPostRepository) Delete(ctx context.Context, postID int64) error {
	m.deleteCalls = append(m.deleteCalls, postID)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, postID)
	}
	return nil
}

func (m *mockPostRepository) Exists(ctx context.Context, postID int64) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, postID)
	}
	return false, nil
}

func TestPostService_Create_RequiresContentOrImage(t *testing.T) {
	created := false
	mockRepo := &mockPostRepository{
		createFn: func(ctx context.Context, userID int64, content string, imageURL *string) (int64, error) {
			created = true
			return 1, nil
		},
	}
	svc := NewPostService(mockRepo)

	cases := []model.CreatePostRequest{
		{Content: ""},
		{Content: "   "},
		{Content: "", ImageURL: strPtr("")},
	}
	for _, req := range cases {
		_, err := svc.Create(context.Background(), 1, req)
		if !errors.Is(err, model.ErrEmptyPost) {
			t.Errorf("Create(%+v) error = %v, want ErrEmptyPost", req, err)
		}
	}
	if created {
		t.Error("repository Create should not be called for empty posts")
	}
}

func TestPostService_Create_ImageOnly(t *testing.T) {
	var gotContent string
	var gotImage *string
	mockRepo := &mockPostRepository{
		createFn: func(ctx context.Context, userID int64, content string, imageURL *string) (int64, error) {
			gotContent = content
			gotImage = imageURL
			return 42, nil
		},
		getByIDFn: func(ctx context.Context, postID int64) (*model.Post, error) {
			return &model.Post{ID: postID, UserID: 1, LikesCount: 0, CommentsCount: 0}, nil
		},
	}
	svc := NewPostService(mockRepo)

	url := "https://cdn.example.com/posts/abc.jpg"
	post, err := svc.Create(context.Background(), 1, model.CreatePostRequest{Content: "", ImageURL: &url})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if post.ID != 42 {
		t.Errorf("post ID = %d, want 42", post.ID)
	}
	if gotContent != "" {
		t.Errorf("content = %q, want empty", gotContent)
	}
	if gotImage == nil || *gotImage != url {
		t.Errorf("image URL = %v, want %q", gotImage, url)
	}
	if post.LikesCount != 0 || post.CommentsCount != 0 {
		t.Errorf("fresh post counts = %d/%d, want 0/0", post.LikesCount, post.CommentsCount)
	}
}

func TestPostService_ListFeed_Defaults(t *testing.T) {
	var gotLimit, gotOffset int
	mockRepo := &mockPostRepository{
		listFn: func(ctx context.Context, limit, offset int) ([]model.Post, error) {
			gotLimit, gotOffset = limit, offset
			return []model.Post{}, nil
		},
	}
	svc := NewPostService(mockRepo)

	// Absent/non-positive parameters fall back to page 1, limit 20.
	if _, err := svc.ListFeed(context.Background(), 0, 0); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if gotLimit != 20 || gotOffset != 0 {
		t.Errorf("limit/offset = %d/%d, want 20/0", gotLimit, gotOffset)
	}

	if _, err := svc.ListFeed(context.Background(), 3, 10); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if gotLimit != 10 || gotOffset != 20 {
		t.Errorf("limit/offset = %d/%d, want 10/20", gotLimit, gotOffset)
	}

	if _, err := svc.ListFeed(context.Background(), -1, -5); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if gotLimit != 20 || gotOffset != 0 {
		t.Errorf("limit/offset = %d/%d, want 20/0", gotLimit, gotOffset)
	}
}

func TestPostService_Update_OwnershipCheck(t *testing.T) {
	mockRepo := &mockPostRepository{
		getOwnerIDFn: func(ctx context.Context, postID int64) (int64, error) {
			return 1, nil // owned by user 1
		},
	}
	svc := NewPostService(mockRepo)

	_, err := svc.Update(context.Background(), 10, 2, model.UpdatePostRequest{Content: "edited"})
	if !errors.Is(err, model.ErrNotPostOwner) {
		t.Errorf("Update by non-owner error = %v, want ErrNotPostOwner", err)
	}

	_, err = svc.Update(context.Background(), 10, 1, model.UpdatePostRequest{Content: "edited"})
	if err != nil {
		t.Errorf("Update by owner error = %v, want nil", err)
	}
}

func TestPostService_Update_NotFound(t *testing.T) {
	svc := NewPostService(&mockPostRepository{}) // GetOwnerID defaults to not found

	_, err := svc.Update(context.Background(), 99, 1, model.UpdatePostRequest{Content: "x"})
	if !errors.Is(err, model.ErrPostNotFound) {
		t.Errorf("Update of missing post error = %v, want ErrPostNotFound", err)
	}
}

func TestPostService_Delete_OwnershipCheck(t *testing.T) {
	mockRepo := &mockPostRepository{
		getOwnerIDFn: func(ctx context.Context, postID int64) (int64, error) {
			return 1, nil
		},
	}
	svc := NewPostService(mockRepo)

	if err := svc.Delete(context.Background(), 10, 2); !errors.Is(err, model.ErrNotPostOwner) {
		t.Errorf("Delete by non-owner error = %v, want ErrNotPostOwner", err)
	}
	if len(mockRepo.deleteCalls) != 0 {
		t.Error("repository Delete should not be called when ownership check fails")
	}

	if err := svc.Delete(context.Background(), 10, 1); err != nil {
		t.Errorf("Delete by owner error = %v, want nil", err)
	}
	if len(mockRepo.deleteCalls) != 1 || mockRepo.deleteCalls[0] != 10 {
		t.Errorf("Delete calls = %v, want [10]", mockRepo.deleteCalls)
	}
}

func strPtr(s string) *string {
	return &s
}
