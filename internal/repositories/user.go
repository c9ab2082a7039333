package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/moodtrack/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user including the password hash, for credential checks.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `
		SELECT id, name, email, password_hash, dark_mode, notifications, created_at
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)
	logQuery(query, []any{email}, user.UserID, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user without the password hash.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	const query = `
		SELECT id, name, email, dark_mode, notifications, created_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, userID)
	logQuery(query, []any{userID}, user.Email, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user. A taken email yields models.ErrConflict.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, dark_mode, notifications, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`
	args := []any{user.UserID, user.Name, user.Email, user.PasswordHash, user.DarkMode, user.Notifications}

	err := r.db.GetContext(ctx, &user.CreatedAt, query, args...)
	logQuery(query, []any{user.UserID, user.Name, user.Email}, user.CreatedAt, err)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email %q: %w", user.Email, models.ErrConflict)
		}
		return err
	}
	return nil
}

// UpdatePreferences stores the preference flags of a user.
func (r *UserWriteRepository) UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs models.Preferences) error {
	query := `
		UPDATE users
		SET dark_mode = $2, notifications = $3
		WHERE id = $1
	`
	args := []any{userID, prefs.DarkMode, prefs.Notifications}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
