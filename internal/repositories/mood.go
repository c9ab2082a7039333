package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sbilibin2017/moodtrack/internal/models"
)

const moodColumns = `id, user_id, date, mood, intensity, activities, note, created_at, updated_at`

// MoodWriteRepository handles mood write operations
type MoodWriteRepository struct {
	db *sqlx.DB
}

func NewMoodWriteRepository(db *sqlx.DB) *MoodWriteRepository {
	return &MoodWriteRepository{db: db}
}

// Save inserts a mood entry and fills in the timestamps assigned by the database.
func (r *MoodWriteRepository) Save(ctx context.Context, mood *models.Mood) error {
	query := `
		INSERT INTO moods (id, user_id, date, mood, intensity, activities, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	if mood.Activities == nil {
		mood.Activities = pq.StringArray{}
	}
	args := []any{mood.MoodID, mood.UserID, mood.Date, mood.Mood, mood.Intensity, mood.Activities, mood.Note}

	row := r.db.QueryRowxContext(ctx, query, args...)
	err := row.Scan(&mood.CreatedAt, &mood.UpdatedAt)
	logQuery(query, args, mood.CreatedAt, err)

	return err
}

// MoodReadRepository handles mood read operations
type MoodReadRepository struct {
	db *sqlx.DB
}

func NewMoodReadRepository(db *sqlx.DB) *MoodReadRepository {
	return &MoodReadRepository{db: db}
}

// ListByUserID returns all moods of a user ordered by date.
func (r *MoodReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID, order models.SortOrder) ([]models.Mood, error) {
	query := `SELECT ` + moodColumns + ` FROM moods WHERE user_id = $1 ORDER BY date ASC, created_at ASC`
	if order == models.SortDesc {
		query = `SELECT ` + moodColumns + ` FROM moods WHERE user_id = $1 ORDER BY date DESC, created_at DESC`
	}

	moods := []models.Mood{}
	err := r.db.SelectContext(ctx, &moods, query, userID)
	logQuery(query, []any{userID}, len(moods), err)

	if err != nil {
		return nil, err
	}
	return moods, nil
}

// ListRecentByUserID returns the newest moods of a user, at most limit rows.
func (r *MoodReadRepository) ListRecentByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.Mood, error) {
	const query = `
		SELECT ` + moodColumns + `
		FROM moods
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2
	`

	moods := []models.Mood{}
	err := r.db.SelectContext(ctx, &moods, query, userID, limit)
	logQuery(query, []any{userID, limit}, len(moods), err)

	if err != nil {
		return nil, err
	}
	return moods, nil
}

// GetByID returns a single mood.
func (r *MoodReadRepository) GetByID(ctx context.Context, moodID uuid.UUID) (*models.Mood, error) {
	const query = `SELECT ` + moodColumns + ` FROM moods WHERE id = $1`

	var mood models.Mood
	err := r.db.GetContext(ctx, &mood, query, moodID)
	logQuery(query, []any{moodID}, mood.UserID, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &mood, nil
}
