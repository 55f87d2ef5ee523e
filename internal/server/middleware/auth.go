// Package middleware provides HTTP middleware for authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

const companyKey ContextKey = "company"

// CompanyClaims identifies the authenticated company.
type CompanyClaims interface {
	GetCompanyKey() string
	GetCompanyName() string
}

// TokenValidator validates a bearer token and returns the company claims.
// The interface keeps the middleware independent of the JWT service.
type TokenValidator interface {
	ValidateToken(tokenString string) (CompanyClaims, error)
}

// identity is the value stored in the request context.
type identity struct {
	Key  string
	Name string
}

// Auth creates middleware that validates bearer tokens and stores the
// authenticated company in the request context.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := validator.ValidateToken(strings.TrimSpace(parts[1]))
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), companyKey, identity{
				Key:  claims.GetCompanyKey(),
				Name: claims.GetCompanyName(),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Company extracts the authenticated company key and name from the
// request context.
func Company(r *http.Request) (key, name string, err error) {
	id, ok := r.Context().Value(companyKey).(identity)
	if !ok {
		return "", "", fmt.Errorf("company not found in request context")
	}
	return id.Key, id.Name, nil
}
