package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/moodtrack/internal/models"
	"github.com/sbilibin2017/moodtrack/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAffirmationService(t *testing.T) (*services.AffirmationService, *services.MockAffirmationWriter, *services.MockAffirmationReader) {
	ctrl := gomock.NewController(t)
	writer := services.NewMockAffirmationWriter(ctrl)
	reader := services.NewMockAffirmationReader(ctrl)
	return services.NewAffirmationService(writer, reader), writer, reader
}

func TestAffirmationService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		svc, writer, _ := newAffirmationService(t)
		writer.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *models.Affirmation) error {
				assert.Equal(t, userID, a.UserID)
				assert.Equal(t, "I am calm", a.Content)
				assert.False(t, a.Favorite)
				return nil
			})

		a, err := svc.Create(ctx, userID, models.AffirmationRequest{Content: "  I am <em>calm</em> "})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, a.AffirmationID)
	})

	for name, content := range map[string]string{
		"empty":    "   ",
		"too long": strings.Repeat("x", models.MaxAffirmationLength+1),
	} {
		t.Run(name, func(t *testing.T) {
			svc, _, _ := newAffirmationService(t)
			_, err := svc.Create(ctx, userID, models.AffirmationRequest{Content: content})
			var verr *services.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestAffirmationService_ToggleFavorite(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	affID := uuid.New()

	tests := []struct {
		name      string
		existing  *models.Affirmation
		getErr    error
		expectSet bool
		setErr    error
		wantErr   error
		wantFav   bool
	}{
		{
			name:      "marks as favorite",
			existing:  &models.Affirmation{AffirmationID: affID, UserID: userID, Favorite: false},
			expectSet: true,
			wantFav:   true,
		},
		{
			name:      "unmarks favorite",
			existing:  &models.Affirmation{AffirmationID: affID, UserID: userID, Favorite: true},
			expectSet: true,
			wantFav:   false,
		},
		{
			name:    "not found",
			getErr:  models.ErrNotFound,
			wantErr: services.ErrNotFound,
		},
		{
			name:     "foreign affirmation is left untouched",
			existing: &models.Affirmation{AffirmationID: affID, UserID: uuid.New()},
			wantErr:  services.ErrUnauthorized,
		},
		{
			name:      "update error",
			existing:  &models.Affirmation{AffirmationID: affID, UserID: userID},
			expectSet: true,
			setErr:    errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, writer, _ := newAffirmationService(t)
			writer.EXPECT().GetByIDForUpdate(gomock.Any(), affID).Return(tt.existing, tt.getErr)
			if tt.expectSet {
				writer.EXPECT().SetFavorite(gomock.Any(), affID, !tt.existing.Favorite).Return(tt.setErr)
			}

			got, err := svc.ToggleFavorite(ctx, userID, affID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFav, got.Favorite)
		})
	}
}

func TestAffirmationService_Random(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("no affirmations returns nil", func(t *testing.T) {
		svc, _, reader := newAffirmationService(t)
		reader.EXPECT().CountByUserID(gomock.Any(), userID).Return(0, nil)

		got, err := svc.Random(ctx, userID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("offset within range", func(t *testing.T) {
		svc, _, reader := newAffirmationService(t)
		const count = 3
		reader.EXPECT().CountByUserID(gomock.Any(), userID).Return(count, nil).Times(20)
		reader.EXPECT().GetByUserIDAtOffset(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, offset int) (*models.Affirmation, error) {
				assert.GreaterOrEqual(t, offset, 0)
				assert.Less(t, offset, count)
				return &models.Affirmation{UserID: userID, Content: "ok"}, nil
			}).Times(20)

		for i := 0; i < 20; i++ {
			got, err := svc.Random(ctx, userID)
			require.NoError(t, err)
			assert.Equal(t, "ok", got.Content)
		}
	})

	t.Run("row vanished between count and fetch", func(t *testing.T) {
		svc, _, reader := newAffirmationService(t)
		reader.EXPECT().CountByUserID(gomock.Any(), userID).Return(1, nil)
		reader.EXPECT().GetByUserIDAtOffset(gomock.Any(), userID, 0).Return(nil, models.ErrNotFound)

		got, err := svc.Random(ctx, userID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("count error", func(t *testing.T) {
		svc, _, reader := newAffirmationService(t)
		reader.EXPECT().CountByUserID(gomock.Any(), userID).Return(0, errors.New("db error"))

		_, err := svc.Random(ctx, userID)
		assert.Error(t, err)
	})
}

func TestAffirmationService_List(t *testing.T) {
	svc, _, reader := newAffirmationService(t)
	userID := uuid.New()
	reader.EXPECT().ListByUserID(gomock.Any(), userID).Return([]models.Affirmation{{Content: "a"}, {Content: "b"}}, nil)

	got, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
