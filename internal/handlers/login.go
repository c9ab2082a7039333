package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/moodtrack/internal/logger"
	"github.com/sbilibin2017/moodtrack/internal/models"
	"github.com/sbilibin2017/moodtrack/internal/services"
	"github.com/sbilibin2017/moodtrack/internal/views"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, req models.LoginRequest) (string, error)
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token, also set as the auth cookie
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewLoginFormHandler renders the login form.
func NewLoginFormHandler(p *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Page(w, r, http.StatusOK, "login", "Login", nil)
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates by email and password and sets the auth cookie. Forms are redirected to the dashboard.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "JWT token returned"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Router /login [post]
func NewLoginHandler(p *Responder, svc Loginer, cookie CookieSettings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeBody(r, func(form map[string][]string) (models.LoginRequest, error) {
			return models.LoginRequest{
				Email:    formValue(form, "email"),
				Password: formValue(form, "password"),
			}, nil
		})
		data := views.Map{"Email": req.Email}
		if err != nil {
			p.FormError(w, r, http.StatusBadRequest, "login", "Login", "Invalid request", data)
			return
		}

		token, err := svc.Login(r.Context(), req)
		if err != nil {
			var verr *services.ValidationError
			switch {
			case errors.As(err, &verr):
				p.FormError(w, r, http.StatusBadRequest, "login", "Login", verr.Message, data)
			case errors.Is(err, services.ErrInvalidCredentials):
				p.FormError(w, r, http.StatusUnauthorized, "login", "Login", "Invalid credentials", data)
			default:
				logger.Log.Errorw("login failed", "err", err)
				p.FormError(w, r, http.StatusInternalServerError, "login", "Login", "Server error", data)
			}
			return
		}

		setAuthCookie(w, cookie, token)

		if wantsJSON(r) {
			p.JSON(w, http.StatusOK, LoginResponse{Token: token})
			return
		}
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

// NewLogoutHandler expires the auth cookie and returns to the home page.
func NewLogoutHandler(cookie CookieSettings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clearAuthCookie(w, cookie)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
