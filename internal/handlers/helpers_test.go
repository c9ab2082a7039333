package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/moodtrack/internal/middlewares"
	"github.com/sbilibin2017/moodtrack/internal/models"
	"github.com/sbilibin2017/moodtrack/internal/views"
	"github.com/stretchr/testify/require"
)

var testCookie = CookieSettings{Name: "token", MaxAge: 24 * time.Hour}

func newTestResponder(t *testing.T) *Responder {
	t.Helper()
	renderer, err := views.New()
	require.NoError(t, err)
	return NewResponder(renderer, "development")
}

func testUser() *models.User {
	return &models.User{
		UserID: uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Name:   "Alice",
		Email:  "alice@example.com",
	}
}

func withTestUser(r *http.Request, user *models.User) *http.Request {
	return r.WithContext(middlewares.ContextWithUser(r.Context(), user))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
