package http

import (
	"context"
	"net/http"
	"strings"

	"coldrent-backend/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "company_claims"

// AuthMiddleware validates the Bearer token on every request it wraps and
// stashes the resolved company claims in the request context.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing authorization header"})
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authorization header must use Bearer scheme"})
			return
		}

		claims, err := m.tokens.ValidateToken(tokenString)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid or expired token"})
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext returns the claims placed by the middleware, or nil for
// requests that skipped authentication.
func ClaimsFromContext(ctx context.Context) *security.CompanyClaims {
	claims, _ := ctx.Value(claimsContextKey).(*security.CompanyClaims)
	return claims
}
