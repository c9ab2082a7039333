package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/moodtrack/internal/models"
)

//go:generate mockgen -source=status.go -destination=status_mock.go -package=handlers

// StatusReporter builds the health payload.
type StatusReporter interface {
	Status(ctx context.Context) models.StatusResponse
}

// NewStatusHandler reports server and database health.
// @Summary Server status
// @Description Reports the environment and probes the database
// @Tags status
// @Produce json
// @Success 200 {object} models.StatusResponse "Status"
// @Router /api/status [get]
func NewStatusHandler(p *Responder, svc StatusReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.JSON(w, http.StatusOK, svc.Status(r.Context()))
	}
}

// NewTestHandler is a plain liveness probe.
func NewTestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is running correctly"))
	}
}
