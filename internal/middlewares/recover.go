package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/sbilibin2017/moodtrack/internal/logger"
)

type panicKey struct{}

// PanicFromContext returns the recovered panic value described as an error,
// when the request is being served by the Recoverer fallback.
func PanicFromContext(ctx context.Context) error {
	err, _ := ctx.Value(panicKey{}).(error)
	return err
}

// Recoverer turns a panic in next into a call to fallback, which renders the
// generic server error response.
func Recoverer(fallback http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Log.Errorw("panic recovered",
					"panic", rec,
					"method", r.Method,
					"uri", r.RequestURI,
					"stack", string(debug.Stack()),
				)

				ctx := context.WithValue(r.Context(), panicKey{}, fmt.Errorf("panic: %v", rec))
				fallback.ServeHTTP(w, r.WithContext(ctx))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
