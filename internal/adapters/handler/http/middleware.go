package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/vncsmyrnk/blog/internal/core/domain"
	"github.com/vncsmyrnk/blog/internal/core/ports"
	"github.com/vncsmyrnk/blog/internal/logger"
)

type contextKey string

const UserKey contextKey = "user"

// UserFromContext returns the authenticated user stored by the auth middleware.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserKey).(*domain.User)
	return user, ok && user != nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(auth ports.AuthService, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeError(w, r, log, domain.ErrInvalidToken)
				return
			}

			user, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				writeError(w, r, log, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), UserKey, user)))
		})
	}
}

// OptionalAuth attaches the user when a bearer token is present. A token
// that is present but invalid is still rejected.
func OptionalAuth(auth ports.AuthService, log *logger.Logger) func(http.Handler) http.Handler {
	required := RequireAuth(auth, log)
	return func(next http.Handler) http.Handler {
		withAuth := required(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				next.ServeHTTP(w, r)
				return
			}
			withAuth.ServeHTTP(w, r)
		})
	}
}
