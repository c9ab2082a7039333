package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/moodtrack/internal/models"
	"github.com/sbilibin2017/moodtrack/internal/views"
)

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=handlers

// DashboardGetter collects the dashboard content of a user.
type DashboardGetter interface {
	Dashboard(ctx context.Context, userID uuid.UUID, now time.Time) (*models.Dashboard, error)
}

// NewDashboardHandler renders the summary, recent moods and today's affirmation.
func NewDashboardHandler(p *Responder, svc DashboardGetter) http.HandlerFunc {
	return WithUser(func(w http.ResponseWriter, r *http.Request, user *models.User) {
		dashboard, err := svc.Dashboard(r.Context(), user.UserID, time.Now())
		if err != nil {
			p.ServerError(w, r, err)
			return
		}
		p.Page(w, r, http.StatusOK, "dashboard", "Dashboard", views.Map{"Dashboard": dashboard})
	})
}
