package handlers

import (
	"net/http"

	"github.com/sbilibin2017/moodtrack/internal/middlewares"
)

// NewNotFoundHandler answers unknown routes.
func NewNotFoundHandler(p *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Error(w, r, http.StatusNotFound, nil)
	}
}

// NewServerErrorHandler answers requests whose handler panicked.
func NewServerErrorHandler(p *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Error(w, r, http.StatusInternalServerError, middlewares.PanicFromContext(r.Context()))
	}
}
