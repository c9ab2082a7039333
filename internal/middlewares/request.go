package middlewares

import (
	"net/http"
	"strings"
)

// IsJSONRequest reports whether the client expects a JSON answer rather than a page.
func IsJSONRequest(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return true
	}
	if r.Header.Get("X-Requested-With") != "" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
