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

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, req models.RegisterRequest) (string, error)
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`
}

// NewRegisterFormHandler renders the registration form.
func NewRegisterFormHandler(p *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Page(w, r, http.StatusOK, "register", "Register", nil)
	}
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an account and sets the auth cookie. Accepts a form or JSON; forms are redirected to the dashboard.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "Email already exists"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Server error"
// @Router /register [post]
func NewRegisterHandler(p *Responder, svc Registerer, cookie CookieSettings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeBody(r, func(form map[string][]string) (models.RegisterRequest, error) {
			return models.RegisterRequest{
				Name:     formValue(form, "name"),
				Email:    formValue(form, "email"),
				Password: formValue(form, "password"),
			}, nil
		})
		data := views.Map{"Name": req.Name, "Email": req.Email}
		if err != nil {
			p.FormError(w, r, http.StatusBadRequest, "register", "Register", "Invalid request", data)
			return
		}

		token, err := svc.Register(r.Context(), req)
		if err != nil {
			var verr *services.ValidationError
			switch {
			case errors.As(err, &verr):
				p.FormError(w, r, http.StatusBadRequest, "register", "Register", verr.Message, data)
			case errors.Is(err, services.ErrEmailAlreadyExists):
				p.FormError(w, r, http.StatusConflict, "register", "Register", "Email already exists", data)
			default:
				logger.Log.Errorw("registration failed", "err", err)
				p.FormError(w, r, http.StatusInternalServerError, "register", "Register", "Server error", data)
			}
			return
		}

		setAuthCookie(w, cookie, token)

		if wantsJSON(r) {
			p.JSON(w, http.StatusCreated, RegisterResponse{Message: "User registered successfully"})
			return
		}
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}
