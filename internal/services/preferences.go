package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/moodtrack/internal/logger"
	"github.com/sbilibin2017/moodtrack/internal/models"
)

//go:generate mockgen -source=preferences.go -destination=preferences_mock.go -package=services

// PreferencesWriter stores user preference flags.
type PreferencesWriter interface {
	UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs models.Preferences) error
}

// PreferencesService updates the settings of a user.
type PreferencesService struct {
	writer PreferencesWriter
}

func NewPreferencesService(writer PreferencesWriter) *PreferencesService {
	return &PreferencesService{writer: writer}
}

// Update replaces both preference flags of the user.
func (s *PreferencesService) Update(ctx context.Context, userID uuid.UUID, req models.PreferencesRequest) (models.Preferences, error) {
	prefs := models.Preferences{
		DarkMode:      req.DarkMode,
		Notifications: req.Notifications,
	}

	if err := s.writer.UpdatePreferences(ctx, userID, prefs); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.Preferences{}, ErrNotFound
		}
		logger.Log.Errorw("failed to update preferences", "userID", userID, "error", err)
		return models.Preferences{}, err
	}
	return prefs, nil
}
