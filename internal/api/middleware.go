package api

// Middleware for resolving the session cookie into an explicit identity.

import (
	"context"
	"net/http"

	"github.com/kien091/movie-system/internal/models"
)

// contextKey is a private type to prevent collisions with other context keys.
type contextKey string

const userContextKey = contextKey("user")

// SessionMiddleware resolves the session cookie, if any, into the current
// user and injects it into the request context. Anonymous requests pass
// through with no user; catalog pages render for everyone, they just show
// the login call-to-action when no identity is present.
func (s *Server) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session_token")
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		user, err := s.store.GetUserFromSession(cookie.Value)
		if err != nil {
			// Invalid or expired token: continue anonymously.
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUserMiddleware rejects requests that carry no authenticated user.
// It must be chained *after* SessionMiddleware.
func (s *Server) RequireUserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if getUserFromContext(r) == nil {
			RespondWithError(w, http.StatusUnauthorized, "Unauthorized: Login required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// getUserFromContext is a helper function to safely retrieve the user object
// from the request context. It returns nil if the user is not found.
func getUserFromContext(r *http.Request) *models.User {
	user, ok := r.Context().Value(userContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}
