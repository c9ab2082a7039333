package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/moodtrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var affirmationColumnNames = []string{"id", "user_id", "content", "favorite", "created_at"}

type txKey struct{}

func txFromTestContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx
}

func TestAffirmationWriteRepository_Mock(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("GetByIDForUpdate locks the row inside the transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		userID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(`FOR UPDATE`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(affirmationColumnNames).
				AddRow(id.String(), userID.String(), "I am enough", false, time.Now()))
		mock.ExpectExec(`UPDATE affirmations`).
			WithArgs(id, true).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Beginx()
		require.NoError(t, err)
		txCtx := context.WithValue(ctx, txKey{}, tx)

		repo := NewAffirmationWriteRepository(db, txFromTestContext)
		a, err := repo.GetByIDForUpdate(txCtx, id)
		require.NoError(t, err)
		assert.Equal(t, userID, a.UserID)
		require.NoError(t, repo.SetFavorite(txCtx, id, !a.Favorite))
		require.NoError(t, tx.Commit())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetByIDForUpdate not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`FOR UPDATE`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(affirmationColumnNames))

		a, err := NewAffirmationWriteRepository(db, nil).GetByIDForUpdate(ctx, id)
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Nil(t, a)
	})

	t.Run("SetFavorite on missing row", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE affirmations`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewAffirmationWriteRepository(db, txFromTestContext).SetFavorite(ctx, id, true)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestAffirmationReadRepository_Mock(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("offset past the end", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`OFFSET`).
			WithArgs(userID, 3).
			WillReturnRows(sqlmock.NewRows(affirmationColumnNames))

		a, err := NewAffirmationReadRepository(db).GetByUserIDAtOffset(ctx, userID, 3)
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Nil(t, a)
	})

	t.Run("count", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT COUNT`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

		count, err := NewAffirmationReadRepository(db).CountByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})
}

func TestAffirmationRepositories_Postgres(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	owner := newTestUser("affirm@example.com")
	require.NoError(t, NewUserWriteRepository(db).Save(ctx, owner))

	writeRepo := NewAffirmationWriteRepository(db, txFromTestContext)
	readRepo := NewAffirmationReadRepository(db)

	contents := []string{"I am capable", "I choose calm", "Today is mine"}
	saved := make([]*models.Affirmation, 0, len(contents))
	for _, c := range contents {
		a := &models.Affirmation{AffirmationID: uuid.New(), UserID: owner.UserID, Content: c}
		require.NoError(t, writeRepo.Save(ctx, a))
		saved = append(saved, a)
	}

	t.Run("list and count", func(t *testing.T) {
		list, err := readRepo.ListByUserID(ctx, owner.UserID)
		require.NoError(t, err)
		assert.Len(t, list, 3)

		count, err := readRepo.CountByUserID(ctx, owner.UserID)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("every offset resolves to an owned row", func(t *testing.T) {
		seen := map[uuid.UUID]bool{}
		for i := 0; i < len(contents); i++ {
			a, err := readRepo.GetByUserIDAtOffset(ctx, owner.UserID, i)
			require.NoError(t, err)
			assert.Equal(t, owner.UserID, a.UserID)
			seen[a.AffirmationID] = true
		}
		assert.Len(t, seen, 3)

		_, err := readRepo.GetByUserIDAtOffset(ctx, owner.UserID, len(contents))
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("toggle favorite in a transaction", func(t *testing.T) {
		tx, err := db.Beginx()
		require.NoError(t, err)
		txCtx := context.WithValue(ctx, txKey{}, tx)

		a, err := writeRepo.GetByIDForUpdate(txCtx, saved[0].AffirmationID)
		require.NoError(t, err)
		require.NoError(t, writeRepo.SetFavorite(txCtx, a.AffirmationID, !a.Favorite))
		require.NoError(t, tx.Commit())

		a, err = writeRepo.GetByIDForUpdate(ctx, saved[0].AffirmationID)
		require.NoError(t, err)
		assert.True(t, a.Favorite)
	})

	t.Run("rolled back toggle is discarded", func(t *testing.T) {
		tx, err := db.Beginx()
		require.NoError(t, err)
		txCtx := context.WithValue(ctx, txKey{}, tx)

		require.NoError(t, writeRepo.SetFavorite(txCtx, saved[1].AffirmationID, true))
		require.NoError(t, tx.Rollback())

		a, err := writeRepo.GetByIDForUpdate(ctx, saved[1].AffirmationID)
		require.NoError(t, err)
		assert.False(t, a.Favorite)
	})
}
