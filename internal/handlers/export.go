package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/moodtrack/internal/models"
	"github.com/sbilibin2017/moodtrack/internal/services"
)

//go:generate mockgen -source=export.go -destination=export_mock.go -package=handlers

// MoodHistoryGetter returns the moods of a user in chronological order.
type MoodHistoryGetter interface {
	History(ctx context.Context, userID uuid.UUID) ([]models.Mood, error)
}

// NewMoodExportHandler streams the user's moods as a CSV or JSON attachment.
// @Summary Export moods
// @Description Downloads the mood history as moodtrack-export-YYYY-MM-DD.csv or .json
// @Tags moods
// @Produce text/csv
// @Produce json
// @Param format query string false "csv (default) or json"
// @Success 200 {array} models.Mood "Mood history"
// @Failure 400 {object} models.ErrorResponse "Unsupported format"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /moods/export [get]
func NewMoodExportHandler(p *Responder, svc MoodHistoryGetter) http.HandlerFunc {
	return WithUser(func(w http.ResponseWriter, r *http.Request, user *models.User) {
		format, err := services.ParseExportFormat(r.URL.Query().Get("format"))
		if err != nil {
			p.Error(w, r, http.StatusBadRequest, err)
			return
		}

		moods, err := svc.History(r.Context(), user.UserID)
		if err != nil {
			p.ServerError(w, r, err)
			return
		}

		data, err := services.ExportMoods(moods, format)
		if err != nil {
			p.ServerError(w, r, err)
			return
		}

		filename := services.ExportFilename(format, time.Now())
		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	})
}
