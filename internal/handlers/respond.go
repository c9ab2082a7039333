package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sbilibin2017/moodtrack/internal/logger"
	"github.com/sbilibin2017/moodtrack/internal/middlewares"
	"github.com/sbilibin2017/moodtrack/internal/models"
	"github.com/sbilibin2017/moodtrack/internal/views"
)

//go:generate mockgen -source=respond.go -destination=respond_mock.go -package=handlers

// Renderer renders a named page template.
type Renderer interface {
	Render(w io.Writer, name string, data views.Map) error
}

// Responder writes pages, JSON bodies and error responses.
type Responder struct {
	renderer    Renderer
	showDetails bool
}

// NewResponder creates a Responder. Error details are exposed outside production only.
func NewResponder(renderer Renderer, env string) *Responder {
	return &Responder{
		renderer:    renderer,
		showDetails: env != "production",
	}
}

// Page renders a template inside the layout with the common bindings.
func (p *Responder) Page(w http.ResponseWriter, r *http.Request, status int, name, title string, data views.Map) {
	binding := views.Map{
		"Title": title,
		"Year":  time.Now().Year(),
	}
	if user, ok := middlewares.UserFromContext(r.Context()); ok {
		binding["User"] = user
		binding["DarkMode"] = user.DarkMode
		binding["Notifications"] = user.Notifications
	}
	for k, v := range data {
		binding[k] = v
	}

	var buf bytes.Buffer
	if err := p.renderer.Render(&buf, name, binding); err != nil {
		logger.Log.Errorw("failed to render page", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// JSON writes v with the given status.
func (p *Responder) JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusNotFound:            "Not found",
	http.StatusConflict:            "Conflict",
	http.StatusInternalServerError: "Internal server error",
}

// Error answers with the error page, or an ErrorResponse for JSON clients.
// err is only shown outside production.
func (p *Responder) Error(w http.ResponseWriter, r *http.Request, status int, err error) {
	message, ok := errorMessages[status]
	if !ok {
		message = http.StatusText(status)
	}

	details := ""
	if err != nil && p.showDetails {
		details = err.Error()
	}

	if wantsJSON(r) {
		p.JSON(w, status, models.ErrorResponse{Error: message, Details: details})
		return
	}

	if status == http.StatusNotFound {
		message = "Page not found"
	}
	p.Page(w, r, status, "error", message, views.Map{
		"Status":  status,
		"Message": message,
		"Details": details,
	})
}

// ServerError logs err and answers 500.
func (p *Responder) ServerError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Log.Errorw("internal server error",
		"request_id", middlewares.RequestIDFromContext(r.Context()),
		"uri", r.RequestURI,
		"err", err,
	)
	p.Error(w, r, http.StatusInternalServerError, err)
}

// FormError re-renders a form page with message, or answers JSON clients
// with an ErrorResponse.
func (p *Responder) FormError(w http.ResponseWriter, r *http.Request, status int, name, title, message string, data views.Map) {
	if wantsJSON(r) {
		p.JSON(w, status, models.ErrorResponse{Error: message})
		return
	}
	if data == nil {
		data = views.Map{}
	}
	data["Error"] = message
	p.Page(w, r, status, name, title, data)
}

// WithUser adapts a handler that needs the authenticated user.
func WithUser(fn func(w http.ResponseWriter, r *http.Request, user *models.User)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middlewares.UserFromContext(r.Context())
		if !ok {
			middlewares.Unauthorized(w, r)
			return
		}
		fn(w, r, user)
	}
}

func isJSONBody(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// wantsJSON reports whether the client sent or asked for JSON.
// Success and error responses both follow it.
func wantsJSON(r *http.Request) bool {
	return isJSONBody(r) || middlewares.IsJSONRequest(r)
}

// decodeBody reads a JSON body, or the submitted form through fromForm.
func decodeBody[T any](r *http.Request, fromForm func(form map[string][]string) (T, error)) (T, error) {
	var v T
	if isJSONBody(r) {
		err := json.NewDecoder(r.Body).Decode(&v)
		return v, err
	}
	if err := r.ParseForm(); err != nil {
		return v, err
	}
	return fromForm(r.PostForm)
}

func formValue(form map[string][]string, key string) string {
	if vs := form[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}
