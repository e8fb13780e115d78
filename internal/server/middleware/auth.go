// Package middleware provides HTTP middleware for admin authentication.
package middleware

import (
	"net/http"
	"strings"
)

// TokenValidator validates a bearer token. It is an interface so the
// middleware does not depend on a concrete JWT implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) error
}

// RequireAuth wraps a handler so it only runs with a valid bearer token.
func RequireAuth(validator TokenValidator, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		// Case-insensitive "Bearer" prefix.
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		if err := validator.ValidateToken(strings.TrimSpace(parts[1])); err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
