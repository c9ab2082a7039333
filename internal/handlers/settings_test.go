package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/moodtrack/internal/models"
	"github.com/sbilibin2017/moodtrack/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsHandler(t *testing.T) {
	p := newTestResponder(t)
	user := testUser()
	user.DarkMode = true

	t.Run("form reflects preferences", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := withTestUser(httptest.NewRequest(http.MethodGet, "/settings", nil), user)
		NewSettingsHandler(p).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `name="dark_mode" value="true" checked`)
		assert.NotContains(t, body, `name="notifications" value="true" checked`)
		assert.Contains(t, body, `data-theme="dark"`)
		assert.NotContains(t, body, "Preferences saved.")
	})

	t.Run("saved notice", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := withTestUser(httptest.NewRequest(http.MethodGet, "/settings?saved=1", nil), user)
		NewSettingsHandler(p).ServeHTTP(w, req)

		assert.Contains(t, w.Body.String(), "Preferences saved.")
	})
}

func TestSettingsUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPreferencesUpdater(ctrl)
	p := newTestResponder(t)
	user := testUser()
	handler := NewSettingsUpdateHandler(p, mockSvc)

	t.Run("checkbox form", func(t *testing.T) {
		mockSvc.EXPECT().
			Update(gomock.Any(), user.UserID, models.PreferencesRequest{DarkMode: true, Notifications: false}).
			Return(models.Preferences{DarkMode: true}, nil)

		req := formRequest(http.MethodPost, "/settings", url.Values{"dark_mode": {"on"}})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, withTestUser(req, user))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/settings?saved=1", w.Header().Get("Location"))
	})

	t.Run("json", func(t *testing.T) {
		mockSvc.EXPECT().
			Update(gomock.Any(), user.UserID, models.PreferencesRequest{DarkMode: false, Notifications: true}).
			Return(models.Preferences{Notifications: true}, nil)

		body, _ := json.Marshal(models.PreferencesRequest{Notifications: true})
		req := httptest.NewRequest(http.MethodPost, "/settings", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, withTestUser(req, user))

		assert.Equal(t, http.StatusOK, w.Code)
		var got models.Preferences
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, models.Preferences{Notifications: true}, got)
	})

	t.Run("user gone", func(t *testing.T) {
		mockSvc.EXPECT().
			Update(gomock.Any(), user.UserID, gomock.Any()).
			Return(models.Preferences{}, services.ErrNotFound)

		req := formRequest(http.MethodPost, "/settings", url.Values{})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, withTestUser(req, user))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("store error", func(t *testing.T) {
		mockSvc.EXPECT().
			Update(gomock.Any(), user.UserID, gomock.Any()).
			Return(models.Preferences{}, errors.New("update failed"))

		req := formRequest(http.MethodPost, "/settings", url.Values{})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, withTestUser(req, user))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestIsChecked(t *testing.T) {
	for _, v := range []string{"true", "on", "1"} {
		assert.True(t, isChecked(v), v)
	}
	for _, v := range []string{"", "false", "off", "yes"} {
		assert.False(t, isChecked(v), v)
	}
}
