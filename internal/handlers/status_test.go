package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/moodtrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockStatusReporter(ctrl)
	p := newTestResponder(t)

	want := models.StatusResponse{
		Status:      "ok",
		Message:     "API is working",
		Timestamp:   "2025-06-07T16:49:54Z",
		DBStatus:    "Disconnected",
		Environment: "test",
	}
	mockSvc.EXPECT().Status(gomock.Any()).Return(want)

	w := httptest.NewRecorder()
	NewStatusHandler(p, mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var got models.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestTestHandler(t *testing.T) {
	w := httptest.NewRecorder()
	NewTestHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "Server is running correctly", w.Body.String())
}
