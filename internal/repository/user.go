package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mingle/internal/model"
)

// userRepository implements UserRepository using sqlx
type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO users (username, email, password, full_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query, u.Username, u.Email, u.Password, u.FullName).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "users_username_key") {
			return model.ErrUsernameExists
		}
		if isUniqueViolation(err, "users_email_key") {
			return model.ErrEmailExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `
		SELECT id, username, email, password, full_name, bio, profile_picture, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var u model.User
	err := r.db.GetContext(ctx, &u, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &u, nil
}

// GetByEmail retrieves a user by their email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, username, email, password, full_name, bio, profile_picture, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var u model.User
	err := r.db.GetContext(ctx, &u, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &u, nil
}

// ExistsByID checks whether a user with the given ID exists
func (r *userRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}

// GetProfile returns the public profile with live aggregate counts. The
// counts are computed from the posts/follows relations in the same statement
// so the row is a consistent snapshot.
func (r *userRepository) GetProfile(ctx context.Context, id int64) (*model.Profile, error) {
	query := `
		SELECT u.id, u.username, u.full_name, u.bio, u.profile_picture, u.created_at,
		       (SELECT COUNT(*) FROM posts WHERE user_id = u.id) AS posts_count,
		       (SELECT COUNT(*) FROM follows WHERE following_id = u.id) AS followers_count,
		       (SELECT COUNT(*) FROM follows WHERE follower_id = u.id) AS following_count
		FROM users u
		WHERE u.id = $1
	`

	var p model.Profile
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &p, nil
}

// UpdateProfile unconditionally overwrites full_name and bio. A nil value
// writes NULL; there is no partial-update merge.
func (r *userRepository) UpdateProfile(ctx context.Context, id int64, fullName, bio *string) (*model.User, error) {
	query := `
		UPDATE users
		SET full_name = $1, bio = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, username, email, password, full_name, bio, profile_picture, created_at, updated_at
	`

	var u model.User
	err := r.db.GetContext(ctx, &u, query, fullName, bio, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &u, nil
}

// UpdateAvatar overwrites the profile picture URL.
func (r *userRepository) UpdateAvatar(ctx context.Context, id int64, pictureURL string) (*model.User, error) {
	query := `
		UPDATE users
		SET profile_picture = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, username, email, password, full_name, bio, profile_picture, created_at, updated_at
	`

	var u model.User
	err := r.db.GetContext(ctx, &u, query, pictureURL, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update avatar: %w", err)
	}

	return &u, nil
}
