package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/moodtrack/internal/models"
	"github.com/sbilibin2017/moodtrack/internal/services"
	"github.com/sbilibin2017/moodtrack/internal/views"
)

//go:generate mockgen -source=mood.go -destination=mood_mock.go -package=handlers

// MoodLister lists the moods of a user, newest first.
type MoodLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Mood, error)
}

// MoodCreator stores a new mood.
type MoodCreator interface {
	Create(ctx context.Context, userID uuid.UUID, req models.MoodRequest) (*models.Mood, error)
}

// MoodGetter loads a single mood owned by the user.
type MoodGetter interface {
	Get(ctx context.Context, userID, moodID uuid.UUID) (*models.Mood, error)
}

// AnalyticsGetter summarises the mood history of a user.
type AnalyticsGetter interface {
	Analytics(ctx context.Context, userID uuid.UUID) (*models.MoodAnalytics, error)
}

// NewMoodListHandler renders the user's moods.
func NewMoodListHandler(p *Responder, svc MoodLister) http.HandlerFunc {
	return WithUser(func(w http.ResponseWriter, r *http.Request, user *models.User) {
		moods, err := svc.List(r.Context(), user.UserID)
		if err != nil {
			p.ServerError(w, r, err)
			return
		}
		p.Page(w, r, http.StatusOK, "moods/index", "Your moods", views.Map{"Moods": moods})
	})
}

// NewMoodFormHandler renders the new mood form.
func NewMoodFormHandler(p *Responder) http.HandlerFunc {
	return WithUser(func(w http.ResponseWriter, r *http.Request, user *models.User) {
		p.Page(w, r, http.StatusOK, "moods/new", "Record mood", moodFormData(models.MoodRequest{}))
	})
}

func moodFormData(req models.MoodRequest) views.Map {
	return views.Map{
		"MoodOptions": models.MoodLabels,
		"Form":        req,
	}
}

// NewMoodCreateHandler stores a mood submitted as a form or JSON.
// @Summary Record a mood
// @Description Stores a mood for the signed-in user. Forms are redirected to /moods.
// @Tags moods
// @Accept json
// @Produce json
// @Param moodRequest body models.MoodRequest true "Mood entry"
// @Success 201 {object} models.Mood "Created mood"
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /moods [post]
func NewMoodCreateHandler(p *Responder, svc MoodCreator) http.HandlerFunc {
	return WithUser(func(w http.ResponseWriter, r *http.Request, user *models.User) {
		req, err := decodeBody(r, moodRequestFromForm)
		if err != nil {
			message := "Invalid request"
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				message = verr.Message
			}
			p.FormError(w, r, http.StatusBadRequest, "moods/new", "Record mood", message, moodFormData(req))
			return
		}

		mood, err := svc.Create(r.Context(), user.UserID, req)
		if err != nil {
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				p.FormError(w, r, http.StatusBadRequest, "moods/new", "Record mood", verr.Message, moodFormData(req))
				return
			}
			p.ServerError(w, r, err)
			return
		}

		if wantsJSON(r) {
			p.JSON(w, http.StatusCreated, mood)
			return
		}
		http.Redirect(w, r, "/moods", http.StatusSeeOther)
	})
}

func moodRequestFromForm(form map[string][]string) (models.MoodRequest, error) {
	req := models.MoodRequest{
		Mood: strings.TrimSpace(formValue(form, "mood")),
		Note: formValue(form, "note"),
	}

	// an unparsable intensity stays 0 and fails validation as missing
	req.Intensity, _ = strconv.Atoi(strings.TrimSpace(formValue(form, "intensity")))

	for _, v := range form["activities"] {
		for _, a := range strings.Split(v, ",") {
			if a = strings.TrimSpace(a); a != "" {
				req.Activities = append(req.Activities, a)
			}
		}
	}

	if raw := strings.TrimSpace(formValue(form, "date")); raw != "" {
		date, err := parseMoodDate(raw)
		if err != nil {
			return req, &services.ValidationError{Message: "date must be formatted as YYYY-MM-DD", Err: err}
		}
		req.Date = &date
	}
	return req, nil
}

func parseMoodDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}

// NewMoodViewHandler renders one mood. Unknown ids and moods of other users are 404.
func NewMoodViewHandler(p *Responder, svc MoodGetter) http.HandlerFunc {
	return WithUser(func(w http.ResponseWriter, r *http.Request, user *models.User) {
		moodID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			p.Error(w, r, http.StatusNotFound, nil)
			return
		}

		mood, err := svc.Get(r.Context(), user.UserID, moodID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				p.Error(w, r, http.StatusNotFound, nil)
				return
			}
			p.ServerError(w, r, err)
			return
		}

		p.Page(w, r, http.StatusOK, "moods/view", mood.Mood, views.Map{"Mood": mood})
	})
}

// NewMoodAnalyticsHandler renders the mood summary, or returns it as JSON with ?format=json.
// @Summary Mood analytics
// @Description Average intensity, chronological series and activity frequencies of the signed-in user
// @Tags moods
// @Produce json
// @Param format query string false "json for a JSON response"
// @Success 200 {object} models.MoodAnalytics "Summary"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /moods/analytics [get]
func NewMoodAnalyticsHandler(p *Responder, svc AnalyticsGetter) http.HandlerFunc {
	return WithUser(func(w http.ResponseWriter, r *http.Request, user *models.User) {
		analytics, err := svc.Analytics(r.Context(), user.UserID)
		if err != nil {
			p.ServerError(w, r, err)
			return
		}

		if r.URL.Query().Get("format") == "json" {
			p.JSON(w, http.StatusOK, analytics)
			return
		}
		p.Page(w, r, http.StatusOK, "moods/analytics", "Mood analytics", views.Map{"Analytics": analytics})
	})
}
