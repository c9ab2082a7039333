package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/moodtrack/internal/models"
)

// AffirmationWriteRepository handles affirmation write operations.
// Statements run inside the request transaction when one is present.
type AffirmationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAffirmationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AffirmationWriteRepository {
	return &AffirmationWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new affirmation.
func (r *AffirmationWriteRepository) Save(ctx context.Context, a *models.Affirmation) error {
	query := `
		INSERT INTO affirmations (id, user_id, content, favorite, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`
	args := []any{a.AffirmationID, a.UserID, a.Content, a.Favorite}

	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &a.CreatedAt, query, args...)
	logQuery(query, args, a.CreatedAt, err)

	return err
}

// GetByIDForUpdate loads an affirmation and locks the row until the transaction ends.
func (r *AffirmationWriteRepository) GetByIDForUpdate(ctx context.Context, affirmationID uuid.UUID) (*models.Affirmation, error) {
	const query = `
		SELECT id, user_id, content, favorite, created_at
		FROM affirmations
		WHERE id = $1
		FOR UPDATE
	`

	var a models.Affirmation
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &a, query, affirmationID)
	logQuery(query, []any{affirmationID}, a.UserID, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// SetFavorite stores the favorite flag of an affirmation.
func (r *AffirmationWriteRepository) SetFavorite(ctx context.Context, affirmationID uuid.UUID, favorite bool) error {
	query := `
		UPDATE affirmations
		SET favorite = $2
		WHERE id = $1
	`
	args := []any{affirmationID, favorite}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
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

// AffirmationReadRepository handles affirmation read operations
type AffirmationReadRepository struct {
	db *sqlx.DB
}

func NewAffirmationReadRepository(db *sqlx.DB) *AffirmationReadRepository {
	return &AffirmationReadRepository{db: db}
}

// ListByUserID returns the user's affirmations, newest first.
func (r *AffirmationReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Affirmation, error) {
	const query = `
		SELECT id, user_id, content, favorite, created_at
		FROM affirmations
		WHERE user_id = $1
		ORDER BY created_at DESC, id
	`

	affirmations := []models.Affirmation{}
	err := r.db.SelectContext(ctx, &affirmations, query, userID)
	logQuery(query, []any{userID}, len(affirmations), err)

	if err != nil {
		return nil, err
	}
	return affirmations, nil
}

// CountByUserID returns how many affirmations the user saved.
func (r *AffirmationReadRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM affirmations WHERE user_id = $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID)
	logQuery(query, []any{userID}, count, err)

	return count, err
}

// GetByUserIDAtOffset returns the affirmation at the given position of the
// user's stable ordering, or models.ErrNotFound when the offset is past the end.
func (r *AffirmationReadRepository) GetByUserIDAtOffset(ctx context.Context, userID uuid.UUID, offset int) (*models.Affirmation, error) {
	const query = `
		SELECT id, user_id, content, favorite, created_at
		FROM affirmations
		WHERE user_id = $1
		ORDER BY created_at, id
		OFFSET $2
		LIMIT 1
	`

	var a models.Affirmation
	err := r.db.GetContext(ctx, &a, query, userID, offset)
	logQuery(query, []any{userID, offset}, a.AffirmationID, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
