package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/moodtrack/internal/jwt"
	"github.com/sbilibin2017/moodtrack/internal/logger"
	"github.com/sbilibin2017/moodtrack/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// LoginPath is where page requests without a valid session are sent.
const LoginPath = "/login"

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserGetter loads the user a token belongs to, without the password hash.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

type userContextKey struct{}

// UserFromContext returns the authenticated user stored by the auth middlewares.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(*models.User)
	return user, ok && user != nil
}

// ContextWithUser stores user in ctx.
func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// AuthMiddleware returns a middleware that requires a valid token cookie
// and a live user behind it.
func AuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := authenticate(r, tokener, users)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err, "uri", r.RequestURI)
				Unauthorized(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
		})
	}
}

// OptionalAuthMiddleware resolves the user when a valid token is present and
// lets every request through.
func OptionalAuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := authenticate(r, tokener, users)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
		})
	}
}

func authenticate(r *http.Request, tokener Tokener, users UserGetter) (*models.User, error) {
	ctx := r.Context()

	tokenString, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	claims, err := tokener.GetClaims(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	return users.GetByID(ctx, claims.UserID)
}

// Unauthorized sends pages to the login form and answers JSON clients with 401.
func Unauthorized(w http.ResponseWriter, r *http.Request) {
	if IsJSONRequest(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Unauthorized"})
		return
	}
	http.Redirect(w, r, LoginPath, http.StatusSeeOther)
}
