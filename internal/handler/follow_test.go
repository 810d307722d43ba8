package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"mingle/internal/model"
	"mingle/internal/service"
	"mingle/internal/transport/http/middleware"
)

type stubFollowRepository struct {
	edges map[[2]int64]bool
}

func (s *stubFollowRepository) Create(ctx context.Context, followerID, followingID int64) error {
	key := [2]int64{followerID, followingID}
	if s.edges[key] {
		return model.ErrAlreadyFollowing
	}
	s.edges[key] = true
	return nil
}

func (s *stubFollowRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	key := [2]int64{followerID, followingID}
	if !s.edges[key] {
		return model.ErrNotFollowing
	}
	delete(s.edges, key)
	return nil
}

func (s *stubFollowRepository) GetFollowers(ctx context.Context, userID int64) ([]model.UserSummary, error) {
	return []model.UserSummary{}, nil
}

func (s *stubFollowRepository) GetFollowing(ctx context.Context, userID int64) ([]model.UserSummary, error) {
	return []model.UserSummary{}, nil
}

type stubUserRepository struct {
	existingID int64
}

func (s *stubUserRepository) Create(ctx context.Context, user *model.User) error { return nil }

func (s *stubUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return nil, model.ErrUserNotFound
}

func (s *stubUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, model.ErrUserNotFound
}

func (s *stubUserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return id == s.existingID, nil
}

func (s *stubUserRepository) GetProfile(ctx context.Context, id int64) (*model.Profile, error) {
	return nil, model.ErrUserNotFound
}

func (s *stubUserRepository) UpdateProfile(ctx context.Context, id int64, fullName, bio *string) (*model.User, error) {
	return nil, model.ErrUserNotFound
}

func (s *stubUserRepository) UpdateAvatar(ctx context.Context, id int64, pictureURL string) (*model.User, error) {
	return nil, model.ErrUserNotFound
}

func newFollowTestHandler() *FollowHandler {
	followRepo := &stubFollowRepository{edges: make(map[[2]int64]bool)}
	userRepo := &stubUserRepository{existingID: 2}
	return NewFollowHandler(service.NewFollowService(followRepo, userRepo))
}

func doFollow(h *FollowHandler, method, path string, userID int64) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Post("/api/users/{id}/follow", h.Follow)
	r.Delete("/api/users/{id}/unfollow", h.Unfollow)

	req := httptest.NewRequest(method, path, nil)
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req.WithContext(ctx))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestFollowHandler_FollowUnfollowContract(t *testing.T) {
	h := newFollowTestHandler()

	rec := doFollow(h, http.MethodPost, "/api/users/2/follow", 1)
	if rec.Code != http.StatusOK {
		t.Fatalf("follow status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if msg := decodeBody(t, rec)["message"]; msg != "Successfully followed user" {
		t.Errorf("message = %q, want %q", msg, "Successfully followed user")
	}

	rec = doFollow(h, http.MethodDelete, "/api/users/2/unfollow", 1)
	if rec.Code != http.StatusOK {
		t.Fatalf("unfollow status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if msg := decodeBody(t, rec)["message"]; msg != "Successfully unfollowed user" {
		t.Errorf("message = %q, want %q", msg, "Successfully unfollowed user")
	}
}

func TestFollowHandler_SelfFollowIs400(t *testing.T) {
	h := newFollowTestHandler()

	rec := doFollow(h, http.MethodPost, "/api/users/1/follow", 1)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("self-follow status = %d, want 400", rec.Code)
	}
	if msg := decodeBody(t, rec)["error"]; msg != "You cannot follow yourself" {
		t.Errorf("error = %q, want %q", msg, "You cannot follow yourself")
	}
}

func TestFollowHandler_DuplicateFollowIs400(t *testing.T) {
	h := newFollowTestHandler()

	if rec := doFollow(h, http.MethodPost, "/api/users/2/follow", 1); rec.Code != http.StatusOK {
		t.Fatalf("setup follow failed with status %d", rec.Code)
	}
	rec := doFollow(h, http.MethodPost, "/api/users/2/follow", 1)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate follow status = %d, want 400", rec.Code)
	}
	if msg := decodeBody(t, rec)["error"]; msg != "Already following this user" {
		t.Errorf("error = %q, want %q", msg, "Already following this user")
	}
}

func TestFollowHandler_FollowMissingUserIs404(t *testing.T) {
	h := newFollowTestHandler()

	rec := doFollow(h, http.MethodPost, "/api/users/99/follow", 1)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("follow missing user status = %d, want 404", rec.Code)
	}
	if msg := decodeBody(t, rec)["error"]; msg != "User not found" {
		t.Errorf("error = %q, want %q", msg, "User not found")
	}
}

func TestFollowHandler_UnfollowAbsentEdgeIs400(t *testing.T) {
	h := newFollowTestHandler()

	rec := doFollow(h, http.MethodDelete, "/api/users/2/unfollow", 1)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unfollow absent edge status = %d, want 400", rec.Code)
	}
	if msg := decodeBody(t, rec)["error"]; msg != "You are not following this user" {
		t.Errorf("error = %q, want %q", msg, "You are not following this user")
	}
}
