package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/moodtrack/internal/logger"
	"github.com/sbilibin2017/moodtrack/internal/models"
	"github.com/sbilibin2017/moodtrack/internal/services"
	"github.com/sbilibin2017/moodtrack/internal/views"
)

//go:generate mockgen -source=affirmation.go -destination=affirmation_mock.go -package=handlers

// AffirmationLister lists the user's affirmations.
type AffirmationLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Affirmation, error)
}

// AffirmationCreator stores a new affirmation.
type AffirmationCreator interface {
	Create(ctx context.Context, userID uuid.UUID, req models.AffirmationRequest) (*models.Affirmation, error)
}

// FavoriteToggler flips the favorite flag of an owned affirmation.
type FavoriteToggler interface {
	ToggleFavorite(ctx context.Context, userID, affirmationID uuid.UUID) (*models.Affirmation, error)
}

// RandomAffirmer picks a random affirmation of the user.
type RandomAffirmer interface {
	Random(ctx context.Context, userID uuid.UUID) (*models.Affirmation, error)
}

// NewAffirmationListHandler renders the user's affirmations and today's one.
func NewAffirmationListHandler(p *Responder, svc AffirmationLister) http.HandlerFunc {
	return WithUser(func(w http.ResponseWriter, r *http.Request, user *models.User) {
		affirmations, err := svc.List(r.Context(), user.UserID)
		if err != nil {
			p.ServerError(w, r, err)
			return
		}
		p.Page(w, r, http.StatusOK, "affirmations/index", "Affirmations", views.Map{
			"Affirmations": affirmations,
			"Today":        models.TodayAffirmation(time.Now()),
		})
	})
}

// NewAffirmationFormHandler renders the new affirmation form.
func NewAffirmationFormHandler(p *Responder) http.HandlerFunc {
	return WithUser(func(w http.ResponseWriter, r *http.Request, user *models.User) {
		p.Page(w, r, http.StatusOK, "affirmations/new", "New affirmation", nil)
	})
}

// NewAffirmationCreateHandler stores an affirmation submitted as a form or JSON.
// @Summary Save an affirmation
// @Description Stores an affirmation for the signed-in user. Forms are redirected to /affirmations.
// @Tags affirmations
// @Accept json
// @Produce json
// @Param affirmationRequest body models.AffirmationRequest true "Affirmation"
// @Success 201 {object} models.Affirmation "Created affirmation"
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /affirmations [post]
func NewAffirmationCreateHandler(p *Responder, svc AffirmationCreator) http.HandlerFunc {
	return WithUser(func(w http.ResponseWriter, r *http.Request, user *models.User) {
		req, err := decodeBody(r, func(form map[string][]string) (models.AffirmationRequest, error) {
			return models.AffirmationRequest{Content: formValue(form, "content")}, nil
		})
		data := views.Map{"Content": req.Content}
		if err != nil {
			p.FormError(w, r, http.StatusBadRequest, "affirmations/new", "New affirmation", "Invalid request", data)
			return
		}

		a, err := svc.Create(r.Context(), user.UserID, req)
		if err != nil {
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				p.FormError(w, r, http.StatusBadRequest, "affirmations/new", "New affirmation", verr.Message, data)
				return
			}
			p.ServerError(w, r, err)
			return
		}

		if wantsJSON(r) {
			p.JSON(w, http.StatusCreated, a)
			return
		}
		http.Redirect(w, r, "/affirmations", http.StatusSeeOther)
	})
}

// NewFavoriteHandler toggles the favorite flag. It must run inside TxMiddleware.
// @Summary Toggle favorite
// @Description Flips the favorite flag of an affirmation owned by the signed-in user
// @Tags affirmations
// @Produce json
// @Param id path string true "Affirmation ID"
// @Success 200 {object} models.Affirmation "Updated affirmation"
// @Failure 401 {object} models.MessageResponse "User not authorized"
// @Failure 404 {object} models.MessageResponse "Affirmation not found"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /affirmations/{id}/favorite [put]
func NewFavoriteHandler(p *Responder, svc FavoriteToggler) http.HandlerFunc {
	return WithUser(func(w http.ResponseWriter, r *http.Request, user *models.User) {
		affirmationID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			p.JSON(w, http.StatusNotFound, models.MessageResponse{Message: "Affirmation not found"})
			return
		}

		a, err := svc.ToggleFavorite(r.Context(), user.UserID, affirmationID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				p.JSON(w, http.StatusNotFound, models.MessageResponse{Message: "Affirmation not found"})
			case errors.Is(err, services.ErrUnauthorized):
				p.JSON(w, http.StatusUnauthorized, models.MessageResponse{Message: "User not authorized"})
			default:
				logger.Log.Errorw("failed to toggle favorite", "affirmationID", affirmationID, "err", err)
				p.JSON(w, http.StatusInternalServerError, models.MessageResponse{Message: "Internal server error"})
			}
			return
		}

		if r.Method == http.MethodPost && !wantsJSON(r) {
			http.Redirect(w, r, "/affirmations", http.StatusSeeOther)
			return
		}
		p.JSON(w, http.StatusOK, a)
	})
}

// NewRandomAffirmationHandler returns a random affirmation of the user, or null.
// @Summary Random affirmation
// @Description Picks one of the signed-in user's affirmations uniformly; null when there are none
// @Tags affirmations
// @Produce json
// @Success 200 {object} models.Affirmation "Affirmation or null"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /affirmations/random [get]
func NewRandomAffirmationHandler(p *Responder, svc RandomAffirmer) http.HandlerFunc {
	return WithUser(func(w http.ResponseWriter, r *http.Request, user *models.User) {
		a, err := svc.Random(r.Context(), user.UserID)
		if err != nil {
			logger.Log.Errorw("failed to pick random affirmation", "userID", user.UserID, "err", err)
			p.JSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
			return
		}
		p.JSON(w, http.StatusOK, a)
	})
}

// NewTodayAffirmationHandler renders the daily affirmation.
func NewTodayAffirmationHandler(p *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Page(w, r, http.StatusOK, "affirmations/today", "Today's affirmation", views.Map{
			"Affirmation": models.TodayAffirmation(time.Now()),
		})
	}
}
