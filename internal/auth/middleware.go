package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/pebbleway/pebbleway-api/internal/config"
)

type contextKey string

const userClaimsKey contextKey = "user_claims"

var ErrUnauthenticated = errors.New("user not authenticated")

// AuthMiddleware is the session gate: requests without a valid session
// token never reach the repositories behind it.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromRequest(r)
		if token == "" {
			config.JSONError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		claims, err := ValidateJWT(token)
		if err != nil {
			config.WithContext(r.Context()).WithError(err).Warn("Rejected session token")
			config.JSONError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), userClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func GetUserClaimsFromContext(ctx context.Context) (*UserClaims, error) {
	claims, ok := ctx.Value(userClaimsKey).(*UserClaims)
	if !ok || claims == nil {
		return nil, ErrUnauthenticated
	}
	return claims, nil
}
