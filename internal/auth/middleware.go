package auth

import (
	"net/http"
	"strings"

	"github.com/norbert15/CostTracker2Backend/internal/apperrors"
	"github.com/norbert15/CostTracker2Backend/internal/identity"
	"github.com/norbert15/CostTracker2Backend/internal/rest"
)

const loginPath = "/api/login"

// Middleware verifies the bearer token of every route except login and places
// the verified subject in the request context. A request that carries an
// Authorization header must pass verification or it is rejected before any
// domain logic runs. A request with no Authorization header at all is passed
// through with no identity; domain services then fail with "no active user"
// when they resolve the principal.
func Middleware(tokens *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == loginPath {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				rest.RespondErrorMessage(w, http.StatusUnauthorized, apperrors.CodeAuthenticationFailed, "Invalid token format")
				return
			}

			subject, err := tokens.Verify(tokenString)
			if err != nil {
				rest.RespondErrorMessage(w, http.StatusUnauthorized, apperrors.CodeAuthenticationFailed, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(identity.WithSubject(r.Context(), subject)))
		})
	}
}
