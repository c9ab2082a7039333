package handlers

import (
	"net/http"
	"time"

	"github.com/sbilibin2017/moodtrack/internal/middlewares"
	"github.com/sbilibin2017/moodtrack/internal/models"
	"github.com/sbilibin2017/moodtrack/internal/views"
)

// NewHomeHandler renders the landing page, greeting the signed-in user or defaultUser.
func NewHomeHandler(p *Responder, defaultUser string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := defaultUser
		if user, ok := middlewares.UserFromContext(r.Context()); ok {
			name = user.Name
		}
		p.Page(w, r, http.StatusOK, "index", "Home", views.Map{
			"Name":        name,
			"Affirmation": models.TodayAffirmation(time.Now()),
		})
	}
}

// NewAboutHandler renders the about page.
func NewAboutHandler(p *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Page(w, r, http.StatusOK, "about", "About", nil)
	}
}
