package services

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sbilibin2017/moodtrack/internal/logger"
	"github.com/sbilibin2017/moodtrack/internal/models"
)

//go:generate mockgen -source=affirmation.go -destination=affirmation_mock.go -package=services

// AffirmationWriter defines the write side. GetByIDForUpdate locks the row
// for the surrounding transaction.
type AffirmationWriter interface {
	Save(ctx context.Context, a *models.Affirmation) error
	GetByIDForUpdate(ctx context.Context, affirmationID uuid.UUID) (*models.Affirmation, error)
	SetFavorite(ctx context.Context, affirmationID uuid.UUID, favorite bool) error
}

// AffirmationReader defines the read side.
type AffirmationReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Affirmation, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int, error)
	GetByUserIDAtOffset(ctx context.Context, userID uuid.UUID, offset int) (*models.Affirmation, error)
}

// AffirmationService manages the affirmations a user saved.
type AffirmationService struct {
	writeRepo AffirmationWriter
	readRepo  AffirmationReader
}

func NewAffirmationService(writeRepo AffirmationWriter, readRepo AffirmationReader) *AffirmationService {
	return &AffirmationService{
		writeRepo: writeRepo,
		readRepo:  readRepo,
	}
}

// List returns the user's affirmations, newest first.
func (s *AffirmationService) List(ctx context.Context, userID uuid.UUID) ([]models.Affirmation, error) {
	affirmations, err := s.readRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list affirmations", "userID", userID, "error", err)
		return nil, err
	}
	return affirmations, nil
}

// Create validates and stores an affirmation for the user.
func (s *AffirmationService) Create(ctx context.Context, userID uuid.UUID, req models.AffirmationRequest) (*models.Affirmation, error) {
	req.Content = sanitize(req.Content)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	a := &models.Affirmation{
		AffirmationID: uuid.New(),
		UserID:        userID,
		Content:       req.Content,
	}
	if err := s.writeRepo.Save(ctx, a); err != nil {
		logger.Log.Errorw("failed to save affirmation", "userID", userID, "error", err)
		return nil, err
	}
	return a, nil
}

// ToggleFavorite flips the favorite flag. Must run inside a transaction so the
// row lock taken by the read holds until the update commits.
func (s *AffirmationService) ToggleFavorite(ctx context.Context, userID, affirmationID uuid.UUID) (*models.Affirmation, error) {
	a, err := s.writeRepo.GetByIDForUpdate(ctx, affirmationID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrNotFound
		}
		logger.Log.Errorw("failed to load affirmation", "affirmationID", affirmationID, "error", err)
		return nil, err
	}

	if a.UserID != userID {
		logger.Log.Warnw("favorite toggle by non owner", "affirmationID", affirmationID, "userID", userID)
		return nil, ErrUnauthorized
	}

	if err := s.writeRepo.SetFavorite(ctx, affirmationID, !a.Favorite); err != nil {
		logger.Log.Errorw("failed to toggle favorite", "affirmationID", affirmationID, "error", err)
		return nil, err
	}

	a.Favorite = !a.Favorite
	return a, nil
}

// Random returns a uniformly chosen affirmation of the user, or nil when there is none.
func (s *AffirmationService) Random(ctx context.Context, userID uuid.UUID) (*models.Affirmation, error) {
	count, err := s.readRepo.CountByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count affirmations", "userID", userID, "error", err)
		return nil, err
	}
	if count <= 0 {
		return nil, nil
	}

	a, err := s.readRepo.GetByUserIDAtOffset(ctx, userID, rand.IntN(count))
	if err != nil {
		// deleted between count and fetch
		if errors.Is(err, models.ErrNotFound) {
			return nil, nil
		}
		logger.Log.Errorw("failed to get random affirmation", "userID", userID, "error", err)
		return nil, err
	}
	return a, nil
}
