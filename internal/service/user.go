package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"mingle/internal/model"
	"mingle/internal/repository"
)

// UserService handles business logic for user accounts and profiles.
type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new user account.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, fmt.Errorf("username is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("email is required")
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, fmt.Errorf("password is required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
	}
	if req.FullName != "" {
		user.FullName = &req.FullName
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates a user with email and password.
func (s *UserService) Login(ctx context.Context, req *model.LoginRequest) (*model.User, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Don't reveal whether the email exists or not
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return user, nil
}

// GetSelf returns the caller's own full record, private fields included.
// The account can vanish mid-session if removed administratively, so a
// not-found here is a real outcome, not a bug.
func (s *UserService) GetSelf(ctx context.Context, userID int64) (*model.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// GetProfile returns a user's public profile with live aggregate counts.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*model.Profile, error) {
	return s.repo.GetProfile(ctx, userID)
}

// UpdateProfile unconditionally overwrites full_name and bio. Omitted
// fields are written as null; this is a direct-overwrite contract, not a
// merge.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req model.UpdateProfileRequest) (*model.User, error) {
	return s.repo.UpdateProfile(ctx, userID, req.FullName, req.Bio)
}

// UpdateAvatar overwrites the profile picture URL. The upload itself is the
// media layer's job; this only records the final URL.
func (s *UserService) UpdateAvatar(ctx context.Context, userID int64, pictureURL string) (*model.User, error) {
	return s.repo.UpdateAvatar(ctx, userID, pictureURL)
}
