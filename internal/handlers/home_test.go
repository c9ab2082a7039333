package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/moodtrack/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestHomeHandler(t *testing.T) {
	p := newTestResponder(t)
	handler := NewHomeHandler(p, "Friend")

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Welcome, Friend!")
		assert.Contains(t, body, `href="/register"`)
		assert.Contains(t, body, models.TodayAffirmation(time.Now()))
	})

	t.Run("signed in", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, withTestUser(httptest.NewRequest(http.MethodGet, "/", nil), testUser()))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Welcome, Alice!")
		assert.Contains(t, body, `href="/logout"`)
	})
}

func TestAboutHandler(t *testing.T) {
	p := newTestResponder(t)

	w := httptest.NewRecorder()
	NewAboutHandler(p).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/about", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "About MoodTrack")
}

func TestDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDashboardGetter(ctrl)
	p := newTestResponder(t)
	user := testUser()

	t.Run("renders summary", func(t *testing.T) {
		mockSvc.EXPECT().Dashboard(gomock.Any(), user.UserID, gomock.Any()).Return(&models.Dashboard{
			Analytics: models.MoodAnalytics{AverageDisplay: "6.5", TotalEntries: 2},
			RecentMoods: []models.Mood{
				{MoodID: uuid.New(), Mood: models.MoodEnergetic, Intensity: 9, Date: time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)},
			},
			Affirmation: models.DailyAffirmations[0],
		}, nil)

		w := httptest.NewRecorder()
		req := withTestUser(httptest.NewRequest(http.MethodGet, "/dashboard", nil), user)
		NewDashboardHandler(p, mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "6.5")
		assert.Contains(t, body, "Energetic (9/10)")
		assert.Contains(t, body, models.DailyAffirmations[0])
	})

	t.Run("empty history", func(t *testing.T) {
		mockSvc.EXPECT().Dashboard(gomock.Any(), user.UserID, gomock.Any()).Return(&models.Dashboard{
			Analytics: models.MoodAnalytics{AverageDisplay: "0"},
		}, nil)

		w := httptest.NewRecorder()
		req := withTestUser(httptest.NewRequest(http.MethodGet, "/dashboard", nil), user)
		NewDashboardHandler(p, mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "No moods yet.")
	})

	t.Run("error", func(t *testing.T) {
		mockSvc.EXPECT().Dashboard(gomock.Any(), user.UserID, gomock.Any()).Return(nil, errors.New("boom"))

		w := httptest.NewRecorder()
		req := withTestUser(httptest.NewRequest(http.MethodGet, "/dashboard", nil), user)
		NewDashboardHandler(p, mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "boom")
	})
}
