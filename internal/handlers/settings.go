package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/moodtrack/internal/models"
	"github.com/sbilibin2017/moodtrack/internal/services"
	"github.com/sbilibin2017/moodtrack/internal/views"
)

//go:generate mockgen -source=settings.go -destination=settings_mock.go -package=handlers

// PreferencesUpdater stores the preference flags of a user.
type PreferencesUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, req models.PreferencesRequest) (models.Preferences, error)
}

// NewSettingsHandler renders the preferences form.
func NewSettingsHandler(p *Responder) http.HandlerFunc {
	return WithUser(func(w http.ResponseWriter, r *http.Request, user *models.User) {
		p.Page(w, r, http.StatusOK, "settings", "Settings", views.Map{
			"Saved": r.URL.Query().Get("saved") == "1",
		})
	})
}

// NewSettingsUpdateHandler stores the submitted preferences.
// @Summary Update preferences
// @Description Replaces the dark_mode and notifications flags. Forms are redirected to /settings?saved=1.
// @Tags settings
// @Accept json
// @Produce json
// @Param preferencesRequest body models.PreferencesRequest true "Preferences"
// @Success 200 {object} models.Preferences "Stored preferences"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /settings [post]
func NewSettingsUpdateHandler(p *Responder, svc PreferencesUpdater) http.HandlerFunc {
	return WithUser(func(w http.ResponseWriter, r *http.Request, user *models.User) {
		req, err := decodeBody(r, func(form map[string][]string) (models.PreferencesRequest, error) {
			return models.PreferencesRequest{
				DarkMode:      isChecked(formValue(form, "dark_mode")),
				Notifications: isChecked(formValue(form, "notifications")),
			}, nil
		})
		if err != nil {
			p.FormError(w, r, http.StatusBadRequest, "settings", "Settings", "Invalid request", nil)
			return
		}

		prefs, err := svc.Update(r.Context(), user.UserID, req)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				p.Error(w, r, http.StatusNotFound, err)
				return
			}
			p.ServerError(w, r, err)
			return
		}

		if wantsJSON(r) {
			p.JSON(w, http.StatusOK, prefs)
			return
		}
		http.Redirect(w, r, "/settings?saved=1", http.StatusSeeOther)
	})
}

func isChecked(v string) bool {
	switch v {
	case "true", "on", "1":
		return true
	}
	return false
}
